package repository

import (
	"uqifeed/internal/models"

	"gorm.io/gorm"
)

type ComparisonRepository interface {
	Create(comparison *models.Comparison) error
	FindByID(id uint) (*models.Comparison, error)
	FindByFoodEntryID(entryID uint) ([]models.Comparison, error)
}

type comparisonRepository struct {
	db *gorm.DB
}

func NewComparisonRepository(db *gorm.DB) ComparisonRepository {
	return &comparisonRepository{db: db}
}

func (r *comparisonRepository) Create(comparison *models.Comparison) error {
	return r.db.Create(comparison).Error
}

func (r *comparisonRepository) FindByID(id uint) (*models.Comparison, error) {
	var comparison models.Comparison
	if err := r.db.First(&comparison, id).Error; err != nil {
		return nil, err
	}
	return &comparison, nil
}

func (r *comparisonRepository) FindByFoodEntryID(entryID uint) ([]models.Comparison, error) {
	var comparisons []models.Comparison
	err := r.db.Where("food_entry_id = ?", entryID).
		Order("created_at DESC").
		Find(&comparisons).Error
	return comparisons, err
}
