package repository

import (
	"time"

	"uqifeed/internal/models"

	"gorm.io/gorm"
)

type NutritionTargetRepository interface {
	Create(target *models.NutritionTarget) error
	FindByID(id uint) (*models.NutritionTarget, error)
	FindActiveByUserID(userID uint, at time.Time) (*models.NutritionTarget, error)
	FindHistoryByUserID(userID uint, limit int) ([]models.NutritionTarget, error)
}

type nutritionTargetRepository struct {
	db *gorm.DB
}

func NewNutritionTargetRepository(db *gorm.DB) NutritionTargetRepository {
	return &nutritionTargetRepository{db: db}
}

func (r *nutritionTargetRepository) Create(target *models.NutritionTarget) error {
	return r.db.Create(target).Error
}

func (r *nutritionTargetRepository) FindByID(id uint) (*models.NutritionTarget, error) {
	var target models.NutritionTarget
	if err := r.db.First(&target, id).Error; err != nil {
		return nil, err
	}
	return &target, nil
}

// FindActiveByUserID returns the latest target whose effective_from is not
// after the given moment. Recalculations insert new versions, so the newest
// applicable row is the active one.
func (r *nutritionTargetRepository) FindActiveByUserID(userID uint, at time.Time) (*models.NutritionTarget, error) {
	var target models.NutritionTarget
	err := r.db.Where("user_id = ? AND effective_from <= ?", userID, at).
		Order("effective_from DESC").
		First(&target).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *nutritionTargetRepository) FindHistoryByUserID(userID uint, limit int) ([]models.NutritionTarget, error) {
	if limit <= 0 {
		limit = 10
	}
	var targets []models.NutritionTarget
	err := r.db.Where("user_id = ?", userID).
		Order("effective_from DESC").
		Limit(limit).
		Find(&targets).Error
	return targets, err
}
