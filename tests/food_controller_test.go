package tests

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"uqifeed/internal/controllers"
	"uqifeed/internal/models"
	"uqifeed/internal/recognition"
	"uqifeed/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type foodControllerMocks struct {
	entryRepo      *mocks.MockFoodEntryRepository
	comparisonRepo *mocks.MockComparisonRepository
	targetRepo     *mocks.MockNutritionTargetRepository
	userRepo       *mocks.MockUserRepository
	recognizer     *mocks.MockDishRecognizer
	scheduler      *mocks.MockReportScheduler
}

func setupFoodController() (*controllers.FoodController, *foodControllerMocks) {
	m := &foodControllerMocks{
		entryRepo:      new(mocks.MockFoodEntryRepository),
		comparisonRepo: new(mocks.MockComparisonRepository),
		targetRepo:     new(mocks.MockNutritionTargetRepository),
		userRepo:       new(mocks.MockUserRepository),
		recognizer:     new(mocks.MockDishRecognizer),
		scheduler:      new(mocks.MockReportScheduler),
	}
	controller := controllers.NewFoodController(
		m.entryRepo, m.comparisonRepo, m.targetRepo, m.userRepo, m.recognizer, m.scheduler,
	)
	return controller, m
}

func validEntryBody() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Grilled chicken salad",
		"meal_type":   "lunch",
		"consumed_at": "2024-03-10T12:30:00Z",
		"ingredients": []map[string]interface{}{
			{
				"name":     "chicken breast",
				"quantity": 150,
				"unit":     "g",
				"nutrients": map[string]float64{
					"calories": 165, "protein_g": 31, "fat_g": 3.6,
				},
			},
		},
	}
}

func storedEntry(id, userID uint) *models.FoodEntry {
	entry := &models.FoodEntry{
		ID:         id,
		UserID:     userID,
		Name:       "Grilled chicken salad",
		MealType:   models.MealLunch,
		ConsumedAt: time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC),
		Ingredients: []models.Ingredient{
			{Name: "chicken breast", Quantity: 150, Unit: "g", Nutrients: models.NutrientVector{
				models.NutrientCalories: 165, models.NutrientProtein: 31, models.NutrientFat: 3.6,
			}},
		},
	}
	entry.RecomputeTotals()
	return entry
}

func TestCreateFoodEntry(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*foodControllerMocks)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful creation",
			requestBody: validEntryBody(),
			setupMock: func(m *foodControllerMocks) {
				m.entryRepo.On("Create", mock.AnythingOfType("*models.FoodEntry")).Return(nil)
				m.userRepo.On("FindByID", uint(1)).Return(&models.User{Timezone: "UTC"}, nil)
				m.scheduler.On("NotifyEntryChanged", uint(1), mock.AnythingOfType("time.Time"), mock.Anything).Return()
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Food entry created successfully",
		},
		{
			name: "unknown meal type",
			requestBody: func() map[string]interface{} {
				b := validEntryBody()
				b["meal_type"] = "brunch"
				return b
			}(),
			setupMock:      func(m *foodControllerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid entry data",
		},
		{
			name: "missing consumed_at",
			requestBody: func() map[string]interface{} {
				b := validEntryBody()
				delete(b, "consumed_at")
				return b
			}(),
			setupMock:      func(m *foodControllerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid entry data",
		},
		{
			name: "non-positive ingredient quantity",
			requestBody: func() map[string]interface{} {
				b := validEntryBody()
				b["ingredients"] = []map[string]interface{}{
					{"name": "chicken breast", "quantity": 0, "unit": "g"},
				}
				return b
			}(),
			setupMock:      func(m *foodControllerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid entry data",
		},
		{
			name:        "repository error",
			requestBody: validEntryBody(),
			setupMock: func(m *foodControllerMocks) {
				m.entryRepo.On("Create", mock.AnythingOfType("*models.FoodEntry")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create food entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupFoodController()
			tt.setupMock(m)

			router := setupTestRouter()
			router.POST("/food", addAuthMiddleware(1), controller.CreateFoodEntry)

			w := performRequest(router, http.MethodPost, "/food", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := parseResponse(t, w)
			assert.Equal(t, tt.expectedMsg, response["message"])
			m.entryRepo.AssertExpectations(t)
			m.scheduler.AssertExpectations(t)
		})
	}
}

func TestGetFoodEntryOwnership(t *testing.T) {
	controller, m := setupFoodController()
	// Entry belongs to user 2, requester is user 1.
	m.entryRepo.On("FindByID", uint(5)).Return(storedEntry(5, 2), nil)

	router := setupTestRouter()
	router.GET("/food/:id", addAuthMiddleware(1), controller.GetFoodEntry)

	w := performRequest(router, http.MethodGet, "/food/5", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFoodEntry(t *testing.T) {
	controller, m := setupFoodController()
	m.entryRepo.On("FindByID", uint(5)).Return(storedEntry(5, 1), nil)

	router := setupTestRouter()
	router.GET("/food/:id", addAuthMiddleware(1), controller.GetFoodEntry)

	w := performRequest(router, http.MethodGet, "/food/5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	assert.Equal(t, "Food entry retrieved successfully", response["message"])
}

func TestDeleteFoodEntrySchedulesRebuild(t *testing.T) {
	controller, m := setupFoodController()
	m.entryRepo.On("FindByID", uint(5)).Return(storedEntry(5, 1), nil)
	m.entryRepo.On("Delete", uint(5)).Return(nil)
	m.userRepo.On("FindByID", uint(1)).Return(&models.User{Timezone: "UTC"}, nil)
	m.scheduler.On("NotifyEntryChanged", uint(1), mock.AnythingOfType("time.Time"), mock.Anything).Return()

	router := setupTestRouter()
	router.DELETE("/food/:id", addAuthMiddleware(1), controller.DeleteFoodEntry)

	w := performRequest(router, http.MethodDelete, "/food/5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	m.scheduler.AssertCalled(t, "NotifyEntryChanged", uint(1), mock.AnythingOfType("time.Time"), mock.Anything)
}

func TestCompareFoodEntry(t *testing.T) {
	t.Run("successful comparison", func(t *testing.T) {
		controller, m := setupFoodController()
		m.entryRepo.On("FindByID", uint(5)).Return(storedEntry(5, 1), nil)
		m.targetRepo.On("FindActiveByUserID", uint(1), mock.AnythingOfType("time.Time")).Return(&models.NutritionTarget{
			ID: 3, UserID: 1, Calories: 2000, ProteinG: 96, CarbsG: 250, FatG: 67, FiberG: 25,
		}, nil)

		var created *models.Comparison
		m.comparisonRepo.On("Create", mock.AnythingOfType("*models.Comparison")).
			Run(func(args mock.Arguments) {
				created = args.Get(0).(*models.Comparison)
			}).Return(nil)

		router := setupTestRouter()
		router.POST("/food/:id/comparison", addAuthMiddleware(1), controller.CompareFoodEntry)

		w := performRequest(router, http.MethodPost, "/food/5/comparison", nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotNil(t, created)
		assert.Equal(t, uint(3), created.TargetID)
		assert.NotNil(t, created.FoodEntryID)
		assert.Equal(t, uint(5), *created.FoodEntryID)
		assert.NotEmpty(t, created.Result.Items)
	})

	t.Run("no active target", func(t *testing.T) {
		controller, m := setupFoodController()
		m.entryRepo.On("FindByID", uint(5)).Return(storedEntry(5, 1), nil)
		m.targetRepo.On("FindActiveByUserID", uint(1), mock.AnythingOfType("time.Time")).
			Return(nil, errors.New("record not found"))

		router := setupTestRouter()
		router.POST("/food/:id/comparison", addAuthMiddleware(1), controller.CompareFoodEntry)

		w := performRequest(router, http.MethodPost, "/food/5/comparison", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("negative scale rejected", func(t *testing.T) {
		controller, m := setupFoodController()
		m.entryRepo.On("FindByID", uint(5)).Return(storedEntry(5, 1), nil)

		router := setupTestRouter()
		router.POST("/food/:id/comparison", addAuthMiddleware(1), controller.CompareFoodEntry)

		w := performRequest(router, http.MethodPost, "/food/5/comparison?scale=-1", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRecognizeDish(t *testing.T) {
	t.Run("successful recognition", func(t *testing.T) {
		controller, m := setupFoodController()
		m.recognizer.On("RecognizeDish", mock.Anything, "two scrambled eggs").Return(
			"Scrambled eggs",
			[]recognition.RecognizedIngredient{
				{Name: "egg", Quantity: 100, Unit: "g", Nutrients: models.NutrientVector{
					models.NutrientCalories: 155, models.NutrientProtein: 13,
				}},
			},
			recognition.TokenUsage{TotalTokens: 150},
			nil,
		)

		router := setupTestRouter()
		router.POST("/food/recognize", addAuthMiddleware(1), controller.RecognizeDish)

		w := performRequest(router, http.MethodPost, "/food/recognize", map[string]interface{}{
			"description": "two scrambled eggs",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		response := parseResponse(t, w)
		assert.Equal(t, "Dish recognized successfully", response["message"])
	})

	t.Run("image recognition", func(t *testing.T) {
		controller, m := setupFoodController()
		m.recognizer.On("RecognizeDishImage", mock.Anything, "https://cdn.example.com/meals/123.jpg", "").Return(
			"Margherita pizza",
			[]recognition.RecognizedIngredient{
				{Name: "pizza margherita", Quantity: 300, Unit: "g", Nutrients: models.NutrientVector{
					models.NutrientCalories: 266, models.NutrientProtein: 11,
				}},
			},
			recognition.TokenUsage{TotalTokens: 420},
			nil,
		)

		router := setupTestRouter()
		router.POST("/food/recognize", addAuthMiddleware(1), controller.RecognizeDish)

		w := performRequest(router, http.MethodPost, "/food/recognize", map[string]interface{}{
			"image_url": "https://cdn.example.com/meals/123.jpg",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		m.recognizer.AssertCalled(t, "RecognizeDishImage", mock.Anything, "https://cdn.example.com/meals/123.jpg", "")
	})

	t.Run("empty description", func(t *testing.T) {
		controller, _ := setupFoodController()

		router := setupTestRouter()
		router.POST("/food/recognize", addAuthMiddleware(1), controller.RecognizeDish)

		w := performRequest(router, http.MethodPost, "/food/recognize", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("recognition service failure", func(t *testing.T) {
		controller, m := setupFoodController()
		m.recognizer.On("RecognizeDish", mock.Anything, "mystery dish").Return(
			"", nil, recognition.TokenUsage{}, errors.New("upstream timeout"),
		)

		router := setupTestRouter()
		router.POST("/food/recognize", addAuthMiddleware(1), controller.RecognizeDish)

		w := performRequest(router, http.MethodPost, "/food/recognize", map[string]interface{}{
			"description": "mystery dish",
		})

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestReplaceIngredients(t *testing.T) {
	controller, m := setupFoodController()
	m.entryRepo.On("FindByID", uint(5)).Return(storedEntry(5, 1), nil)

	updated := storedEntry(5, 1)
	updated.Ingredients[0].Quantity = 200
	updated.RecomputeTotals()
	m.entryRepo.On("ReplaceIngredients", uint(5), mock.AnythingOfType("[]models.Ingredient")).Return(updated, nil)
	m.userRepo.On("FindByID", uint(1)).Return(&models.User{Timezone: "UTC"}, nil)
	m.scheduler.On("NotifyEntryChanged", uint(1), mock.AnythingOfType("time.Time"), mock.Anything).Return()

	router := setupTestRouter()
	router.PUT("/food/:id/ingredients", addAuthMiddleware(1), controller.ReplaceIngredients)

	body := []map[string]interface{}{
		{
			"name":     "chicken breast",
			"quantity": 200,
			"unit":     "g",
			"nutrients": map[string]float64{
				"calories": 165, "protein_g": 31,
			},
		},
	}
	w := performRequest(router, http.MethodPut, "/food/5/ingredients", body)

	assert.Equal(t, http.StatusOK, w.Code)
	m.scheduler.AssertExpectations(t)
}

func TestGetFoodEntriesByDate(t *testing.T) {
	t.Run("includes remaining budget when a target is active", func(t *testing.T) {
		controller, m := setupFoodController()

		entry := storedEntry(5, 1)
		m.entryRepo.On("FindByUserIDAndRange", uint(1), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]models.FoodEntry{*entry}, nil)
		m.targetRepo.On("FindActiveByUserID", uint(1), mock.AnythingOfType("time.Time")).Return(&models.NutritionTarget{
			ID: 3, UserID: 1, Calories: 2000, ProteinG: 40, CarbsG: 250, FatG: 67, FiberG: 25,
		}, nil)

		router := setupTestRouter()
		router.GET("/food/date/:date", addAuthMiddleware(1), controller.GetFoodEntriesByDate)

		w := performRequest(router, http.MethodGet, "/food/date/2024-03-10", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := parseResponse(t, w)
		data := response["data"].(map[string]interface{})
		remaining := data["remaining"].(map[string]interface{})

		// 150g chicken breast: 247.5 kcal, 46.5g protein. Protein overshoots
		// the 40g target and must read as zero remaining.
		assert.InDelta(t, 1752.5, remaining["calories"], 0.01)
		assert.Equal(t, 0.0, remaining["protein_g"])
	})

	t.Run("omits remaining budget without a target", func(t *testing.T) {
		controller, m := setupFoodController()

		m.entryRepo.On("FindByUserIDAndRange", uint(1), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]models.FoodEntry{}, nil)
		m.targetRepo.On("FindActiveByUserID", uint(1), mock.AnythingOfType("time.Time")).
			Return(nil, errors.New("record not found"))

		router := setupTestRouter()
		router.GET("/food/date/:date", addAuthMiddleware(1), controller.GetFoodEntriesByDate)

		w := performRequest(router, http.MethodGet, "/food/date/2024-03-10", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := parseResponse(t, w)
		data := response["data"].(map[string]interface{})
		_, ok := data["remaining"]
		assert.False(t, ok)
	})
}
