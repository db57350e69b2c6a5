package utils

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"uqifeed/database"
	"uqifeed/internal/models"
	"uqifeed/internal/nutrition"
	"uqifeed/internal/repository"
)

// DefaultNumUsers is the seeder's default batch size.
const DefaultNumUsers = 10

// DefaultNumDays is how many days of food entries each seeded user gets.
const DefaultNumDays = 14

var seedIngredients = []models.Ingredient{
	{Name: "oatmeal", Quantity: 60, Unit: "g", Nutrients: models.NutrientVector{
		models.NutrientCalories: 389, models.NutrientProtein: 16.9, models.NutrientCarbs: 66.3,
		models.NutrientFat: 6.9, models.NutrientFiber: 10.6,
	}},
	{Name: "whole milk", Quantity: 200, Unit: "ml", Nutrients: models.NutrientVector{
		models.NutrientCalories: 61, models.NutrientProtein: 3.2, models.NutrientCarbs: 4.8,
		models.NutrientFat: 3.3, models.NutrientFiber: 0, models.NutrientSugar: 5.1,
	}},
	{Name: "chicken breast", Quantity: 150, Unit: "g", Nutrients: models.NutrientVector{
		models.NutrientCalories: 165, models.NutrientProtein: 31, models.NutrientCarbs: 0,
		models.NutrientFat: 3.6, models.NutrientFiber: 0,
	}},
	{Name: "white rice", Quantity: 180, Unit: "g", Nutrients: models.NutrientVector{
		models.NutrientCalories: 130, models.NutrientProtein: 2.7, models.NutrientCarbs: 28.2,
		models.NutrientFat: 0.3, models.NutrientFiber: 0.4,
	}},
	{Name: "broccoli", Quantity: 100, Unit: "g", Nutrients: models.NutrientVector{
		models.NutrientCalories: 34, models.NutrientProtein: 2.8, models.NutrientCarbs: 6.6,
		models.NutrientFat: 0.4, models.NutrientFiber: 2.6,
	}},
	{Name: "salmon", Quantity: 120, Unit: "g", Nutrients: models.NutrientVector{
		models.NutrientCalories: 208, models.NutrientProtein: 20, models.NutrientCarbs: 0,
		models.NutrientFat: 13, models.NutrientFiber: 0,
	}},
	{Name: "banana", Quantity: 118, Unit: "g", Nutrients: models.NutrientVector{
		models.NutrientCalories: 89, models.NutrientProtein: 1.1, models.NutrientCarbs: 22.8,
		models.NutrientFat: 0.3, models.NutrientFiber: 2.6, models.NutrientSugar: 12.2,
	}},
	{Name: "greek yogurt", Quantity: 150, Unit: "g", Nutrients: models.NutrientVector{
		models.NutrientCalories: 59, models.NutrientProtein: 10, models.NutrientCarbs: 3.6,
		models.NutrientFat: 0.4, models.NutrientFiber: 0, models.NutrientSugar: 3.2,
	}},
}

var seedMeals = []struct {
	mealType string
	name     string
	hour     int
}{
	{models.MealBreakfast, "Oatmeal with milk", 8},
	{models.MealLunch, "Chicken rice bowl", 12},
	{models.MealSnack, "Fruit snack", 16},
	{models.MealDinner, "Salmon with vegetables", 19},
}

// SeedUsers creates demo users with profiles, derived targets and a couple
// weeks of food entries each. Emails are deterministic so reruns are easy
// to clean up.
func SeedUsers(numUsers, numDays int) error {
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	targetRepo := repository.NewNutritionTargetRepository(database.DB)
	entryRepo := repository.NewFoodEntryRepository(database.DB)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	for i := 0; i < numUsers; i++ {
		user := &models.User{
			Name:     fmt.Sprintf("Demo User %d", i+1),
			Email:    fmt.Sprintf("demo.user%d@uqifeed.test", i+1),
			Timezone: "UTC",
		}
		if err := userRepo.Create(user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Email, err)
		}

		profile := &models.UserProfile{
			UserID:        user.ID,
			Gender:        []string{models.GenderMale, models.GenderFemale}[i%2],
			BirthDate:     now.AddDate(-25-rng.Intn(30), 0, 0),
			HeightCm:      155 + float64(rng.Intn(35)),
			WeightKg:      50 + float64(rng.Intn(40)),
			ActivityLevel: []string{models.ActivitySedentary, models.ActivityLight, models.ActivityModerate, models.ActivityActive}[rng.Intn(4)],
			Goal:          []string{models.GoalLose, models.GoalMaintain, models.GoalGain}[rng.Intn(3)],
		}
		if err := profileRepo.Upsert(profile); err != nil {
			return fmt.Errorf("failed to create profile for %s: %w", user.Email, err)
		}

		target, err := nutrition.ComputeTarget(profile, now)
		if err != nil {
			return fmt.Errorf("failed to derive target for %s: %w", user.Email, err)
		}
		target.EffectiveFrom = now.AddDate(0, 0, -numDays)
		if err := targetRepo.Create(target); err != nil {
			return fmt.Errorf("failed to store target for %s: %w", user.Email, err)
		}

		if err := seedEntries(entryRepo, user.ID, numDays, rng, now); err != nil {
			return fmt.Errorf("failed to seed entries for %s: %w", user.Email, err)
		}

		log.Printf("Seeded user %s (id=%d) with %d days of entries", user.Email, user.ID, numDays)
	}

	return nil
}

func seedEntries(entryRepo repository.FoodEntryRepository, userID uint, numDays int, rng *rand.Rand, now time.Time) error {
	for day := 1; day <= numDays; day++ {
		date := now.AddDate(0, 0, -day)
		for _, meal := range seedMeals {
			// Skip some meals so the data has realistic gaps.
			if rng.Float64() < 0.15 {
				continue
			}
			count := 1 + rng.Intn(2)
			ingredients := make([]models.Ingredient, 0, count)
			for j := 0; j < count; j++ {
				base := seedIngredients[rng.Intn(len(seedIngredients))]
				ingredients = append(ingredients, models.Ingredient{
					Name:      base.Name,
					Quantity:  base.Quantity * (0.8 + rng.Float64()*0.4),
					Unit:      base.Unit,
					Nutrients: base.Nutrients.Clone(),
				})
			}

			entry := &models.FoodEntry{
				UserID:   userID,
				Name:     meal.name,
				MealType: meal.mealType,
				ConsumedAt: time.Date(date.Year(), date.Month(), date.Day(),
					meal.hour, rng.Intn(60), 0, 0, time.UTC),
				Ingredients: ingredients,
			}
			if err := entryRepo.Create(entry); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeleteSeededUsers removes demo users by their deterministic emails along
// with their data.
func DeleteSeededUsers(numUsers int) error {
	for i := 0; i < numUsers; i++ {
		email := fmt.Sprintf("demo.user%d@uqifeed.test", i+1)
		var user models.User
		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			continue
		}

		if err := database.DB.Where("user_id = ?", user.ID).Delete(&models.FoodEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete entries for %s: %w", email, err)
		}
		database.DB.Where("user_id = ?", user.ID).Delete(&models.NutritionTarget{})
		database.DB.Where("user_id = ?", user.ID).Delete(&models.UserProfile{})
		database.DB.Where("user_id = ?", user.ID).Delete(&models.DailyReport{})
		database.DB.Where("user_id = ?", user.ID).Delete(&models.WeeklyReport{})
		database.DB.Where("user_id = ?", user.ID).Delete(&models.Comparison{})
		if err := database.DB.Delete(&user).Error; err != nil {
			return fmt.Errorf("failed to delete user %s: %w", email, err)
		}
		log.Printf("Deleted seeded user %s", email)
	}
	return nil
}
