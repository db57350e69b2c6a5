package database

import (
	"log"

	"uqifeed/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.NutritionTarget{},
		&models.FoodEntry{},
		&models.Ingredient{},
		&models.Comparison{},
		&models.DailyReport{},
		&models.WeeklyReport{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
