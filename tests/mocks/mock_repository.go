package mocks

import (
	"context"
	"time"

	"uqifeed/internal/models"
	"uqifeed/internal/recognition"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) Create(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Update(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) Upsert(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockNutritionTargetRepository
type MockNutritionTargetRepository struct {
	mock.Mock
}

func (m *MockNutritionTargetRepository) Create(target *models.NutritionTarget) error {
	args := m.Called(target)
	return args.Error(0)
}

func (m *MockNutritionTargetRepository) FindByID(id uint) (*models.NutritionTarget, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionTarget), args.Error(1)
}

func (m *MockNutritionTargetRepository) FindActiveByUserID(userID uint, at time.Time) (*models.NutritionTarget, error) {
	args := m.Called(userID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionTarget), args.Error(1)
}

func (m *MockNutritionTargetRepository) FindHistoryByUserID(userID uint, limit int) ([]models.NutritionTarget, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.NutritionTarget), args.Error(1)
}

// Shared MockFoodEntryRepository
type MockFoodEntryRepository struct {
	mock.Mock
}

func (m *MockFoodEntryRepository) Create(entry *models.FoodEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockFoodEntryRepository) FindByID(id uint) (*models.FoodEntry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodEntry), args.Error(1)
}

func (m *MockFoodEntryRepository) FindByUserIDAndRange(userID uint, start, end time.Time) ([]models.FoodEntry, error) {
	args := m.Called(userID, start, end)
	return args.Get(0).([]models.FoodEntry), args.Error(1)
}

func (m *MockFoodEntryRepository) ReplaceIngredients(entryID uint, ingredients []models.Ingredient) (*models.FoodEntry, error) {
	args := m.Called(entryID, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodEntry), args.Error(1)
}

func (m *MockFoodEntryRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockComparisonRepository
type MockComparisonRepository struct {
	mock.Mock
}

func (m *MockComparisonRepository) Create(comparison *models.Comparison) error {
	args := m.Called(comparison)
	return args.Error(0)
}

func (m *MockComparisonRepository) FindByID(id uint) (*models.Comparison, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comparison), args.Error(1)
}

func (m *MockComparisonRepository) FindByFoodEntryID(entryID uint) ([]models.Comparison, error) {
	args := m.Called(entryID)
	return args.Get(0).([]models.Comparison), args.Error(1)
}

// Shared MockReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) UpsertDaily(report *models.DailyReport) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportRepository) FindDaily(userID uint, reportDate string) (*models.DailyReport, error) {
	args := m.Called(userID, reportDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyReport), args.Error(1)
}

func (m *MockReportRepository) FindDailyRange(userID uint, startDate, endDate string) ([]models.DailyReport, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.DailyReport), args.Error(1)
}

func (m *MockReportRepository) UpsertWeekly(report *models.WeeklyReport) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportRepository) FindWeekly(userID uint, weekStartDate string) (*models.WeeklyReport, error) {
	args := m.Called(userID, weekStartDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeeklyReport), args.Error(1)
}

// MockReportScheduler stands in for the background report worker.
type MockReportScheduler struct {
	mock.Mock
}

func (m *MockReportScheduler) NotifyEntryChanged(userID uint, date time.Time, loc *time.Location) {
	m.Called(userID, date, loc)
}

// MockDishRecognizer stands in for the recognition service client.
type MockDishRecognizer struct {
	mock.Mock
}

func (m *MockDishRecognizer) RecognizeDish(ctx context.Context, description string) (string, []recognition.RecognizedIngredient, recognition.TokenUsage, error) {
	args := m.Called(ctx, description)
	var ingredients []recognition.RecognizedIngredient
	if args.Get(1) != nil {
		ingredients = args.Get(1).([]recognition.RecognizedIngredient)
	}
	return args.String(0), ingredients, args.Get(2).(recognition.TokenUsage), args.Error(3)
}

func (m *MockDishRecognizer) RecognizeDishImage(ctx context.Context, imageURL, description string) (string, []recognition.RecognizedIngredient, recognition.TokenUsage, error) {
	args := m.Called(ctx, imageURL, description)
	var ingredients []recognition.RecognizedIngredient
	if args.Get(1) != nil {
		ingredients = args.Get(1).([]recognition.RecognizedIngredient)
	}
	return args.String(0), ingredients, args.Get(2).(recognition.TokenUsage), args.Error(3)
}

// MockAdviceTextGenerator stands in for the advice text client.
type MockAdviceTextGenerator struct {
	mock.Mock
}

func (m *MockAdviceTextGenerator) GenerateAdviceText(ctx context.Context, categories []models.AdviceCategory) (string, recognition.TokenUsage, error) {
	args := m.Called(ctx, categories)
	return args.String(0), args.Get(1).(recognition.TokenUsage), args.Error(2)
}
