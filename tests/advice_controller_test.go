package tests

import (
	"errors"
	"net/http"
	"testing"

	"uqifeed/internal/controllers"
	"uqifeed/internal/models"
	"uqifeed/internal/recognition"
	"uqifeed/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func overEatenComparison(id, userID uint) *models.Comparison {
	return &models.Comparison{
		ID:     id,
		UserID: userID,
		Result: models.ComparisonResult{
			Scale: 1.0,
			Items: []models.NutrientComparison{
				{Nutrient: models.NutrientCalories, Actual: 2600, Target: 2000, Delta: 600, DeltaPct: 30, Category: models.CategoryOver},
				{Nutrient: models.NutrientFiber, Actual: 10, Target: 25, Delta: -15, DeltaPct: -60, Category: models.CategoryUnder},
				{Nutrient: models.NutrientProtein, Actual: 95, Target: 96, Delta: -1, DeltaPct: -1.04, Category: models.CategoryOnTarget},
			},
			Score: 62,
		},
	}
}

func TestGetAdviceCategories(t *testing.T) {
	comparisonRepo := new(mocks.MockComparisonRepository)
	generator := new(mocks.MockAdviceTextGenerator)
	comparisonRepo.On("FindByID", uint(9)).Return(overEatenComparison(9, 1), nil)

	controller := controllers.NewAdviceController(comparisonRepo, generator)
	router := setupTestRouter()
	router.GET("/advice/:comparison_id", addAuthMiddleware(1), controller.GetAdvice)

	w := performRequest(router, http.MethodGet, "/advice/9", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	categories := data["categories"].([]interface{})
	assert.Contains(t, categories, string(models.AdviceReduceCalories))
	assert.Contains(t, categories, string(models.AdviceIncreaseFiber))
	assert.NotContains(t, categories, string(models.AdviceBalancedGoodJob))
	// Without text=true the generator must not be called.
	generator.AssertNotCalled(t, "GenerateAdviceText", mock.Anything, mock.Anything)
}

func TestGetAdviceWithText(t *testing.T) {
	comparisonRepo := new(mocks.MockComparisonRepository)
	generator := new(mocks.MockAdviceTextGenerator)
	comparisonRepo.On("FindByID", uint(9)).Return(overEatenComparison(9, 1), nil)
	generator.On("GenerateAdviceText", mock.Anything, mock.AnythingOfType("[]models.AdviceCategory")).
		Return("You went a bit over on calories today. Adding more fiber-rich vegetables would help.", recognition.TokenUsage{TotalTokens: 90}, nil)

	controller := controllers.NewAdviceController(comparisonRepo, generator)
	router := setupTestRouter()
	router.GET("/advice/:comparison_id", addAuthMiddleware(1), controller.GetAdvice)

	w := performRequest(router, http.MethodGet, "/advice/9?text=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["text"])
	generator.AssertExpectations(t)
}

func TestGetAdviceTextFailureKeepsCategories(t *testing.T) {
	comparisonRepo := new(mocks.MockComparisonRepository)
	generator := new(mocks.MockAdviceTextGenerator)
	comparisonRepo.On("FindByID", uint(9)).Return(overEatenComparison(9, 1), nil)
	generator.On("GenerateAdviceText", mock.Anything, mock.AnythingOfType("[]models.AdviceCategory")).
		Return("", recognition.TokenUsage{}, errors.New("upstream timeout"))

	controller := controllers.NewAdviceController(comparisonRepo, generator)
	router := setupTestRouter()
	router.GET("/advice/:comparison_id", addAuthMiddleware(1), controller.GetAdvice)

	w := performRequest(router, http.MethodGet, "/advice/9?text=true", nil)

	// Categories alone are a complete answer; generation failures degrade.
	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["categories"])
	assert.NotEmpty(t, data["text_error"])
	_, hasText := data["text"]
	assert.False(t, hasText)
}

func TestGetAdviceOwnership(t *testing.T) {
	comparisonRepo := new(mocks.MockComparisonRepository)
	generator := new(mocks.MockAdviceTextGenerator)
	// Comparison belongs to user 2, requester is user 1.
	comparisonRepo.On("FindByID", uint(9)).Return(overEatenComparison(9, 2), nil)

	controller := controllers.NewAdviceController(comparisonRepo, generator)
	router := setupTestRouter()
	router.GET("/advice/:comparison_id", addAuthMiddleware(1), controller.GetAdvice)

	w := performRequest(router, http.MethodGet, "/advice/9", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAdviceNotFound(t *testing.T) {
	comparisonRepo := new(mocks.MockComparisonRepository)
	generator := new(mocks.MockAdviceTextGenerator)
	comparisonRepo.On("FindByID", uint(404)).Return(nil, errors.New("record not found"))

	controller := controllers.NewAdviceController(comparisonRepo, generator)
	router := setupTestRouter()
	router.GET("/advice/:comparison_id", addAuthMiddleware(1), controller.GetAdvice)

	w := performRequest(router, http.MethodGet, "/advice/404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAdviceInvalidID(t *testing.T) {
	comparisonRepo := new(mocks.MockComparisonRepository)
	generator := new(mocks.MockAdviceTextGenerator)

	controller := controllers.NewAdviceController(comparisonRepo, generator)
	router := setupTestRouter()
	router.GET("/advice/:comparison_id", addAuthMiddleware(1), controller.GetAdvice)

	w := performRequest(router, http.MethodGet, "/advice/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
