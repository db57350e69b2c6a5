package repository

import (
	"time"

	"uqifeed/internal/models"

	"gorm.io/gorm"
)

type FoodEntryRepository interface {
	Create(entry *models.FoodEntry) error
	FindByID(id uint) (*models.FoodEntry, error)
	FindByUserIDAndRange(userID uint, start, end time.Time) ([]models.FoodEntry, error)
	ReplaceIngredients(entryID uint, ingredients []models.Ingredient) (*models.FoodEntry, error)
	Delete(id uint) error
}

type foodEntryRepository struct {
	db *gorm.DB
}

func NewFoodEntryRepository(db *gorm.DB) FoodEntryRepository {
	return &foodEntryRepository{db: db}
}

// Create stores the entry with its ingredients, recomputing the cached
// totals inside the same transaction.
func (r *foodEntryRepository) Create(entry *models.FoodEntry) error {
	entry.RecomputeTotals()
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
}

func (r *foodEntryRepository) FindByID(id uint) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	if err := r.db.Preload("Ingredients").First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByUserIDAndRange returns the user's entries consumed in [start, end).
func (r *foodEntryRepository) FindByUserIDAndRange(userID uint, start, end time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := r.db.Preload("Ingredients").
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Order("consumed_at ASC").
		Find(&entries).Error
	return entries, err
}

// ReplaceIngredients swaps the entry's ingredient list and recomputes the
// cached totals transactionally, so no reader can observe stale totals.
func (r *foodEntryRepository) ReplaceIngredients(entryID uint, ingredients []models.Ingredient) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Ingredients").First(&entry, entryID).Error; err != nil {
			return err
		}
		if err := tx.Where("food_entry_id = ?", entryID).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].ID = 0
			ingredients[i].FoodEntryID = entryID
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		entry.Ingredients = ingredients
		entry.RecomputeTotals()
		return tx.Save(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *foodEntryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_entry_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.FoodEntry{}, id).Error
	})
}
