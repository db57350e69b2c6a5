package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"uqifeed/internal/controllers"
	"uqifeed/internal/models"
	"uqifeed/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func addAuthMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func validProfileBody() map[string]interface{} {
	return map[string]interface{}{
		"gender":         "female",
		"birth_date":     "1995-04-12",
		"height_cm":      165,
		"weight_kg":      60,
		"activity_level": "moderate",
		"goal":           "maintain",
	}
}

func TestSaveProfile(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockUserProfileRepository, *mocks.MockNutritionTargetRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful save",
			requestBody: validProfileBody(),
			setupMock: func(p *mocks.MockUserProfileRepository, tr *mocks.MockNutritionTargetRepository) {
				p.On("Upsert", mock.AnythingOfType("*models.UserProfile")).Return(nil)
				tr.On("Create", mock.AnythingOfType("*models.NutritionTarget")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Profile saved successfully",
		},
		{
			name: "invalid gender",
			requestBody: func() map[string]interface{} {
				b := validProfileBody()
				b["gender"] = "other"
				return b
			}(),
			setupMock:      func(p *mocks.MockUserProfileRepository, tr *mocks.MockNutritionTargetRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid profile data",
		},
		{
			name: "malformed birth date",
			requestBody: func() map[string]interface{} {
				b := validProfileBody()
				b["birth_date"] = "12/04/1995"
				return b
			}(),
			setupMock:      func(p *mocks.MockUserProfileRepository, tr *mocks.MockNutritionTargetRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid profile data",
		},
		{
			name: "non-positive weight",
			requestBody: func() map[string]interface{} {
				b := validProfileBody()
				b["weight_kg"] = 0
				return b
			}(),
			setupMock:      func(p *mocks.MockUserProfileRepository, tr *mocks.MockNutritionTargetRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid profile data",
		},
		{
			name:        "repository error",
			requestBody: validProfileBody(),
			setupMock: func(p *mocks.MockUserProfileRepository, tr *mocks.MockNutritionTargetRepository) {
				p.On("Upsert", mock.AnythingOfType("*models.UserProfile")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to save profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := new(mocks.MockUserProfileRepository)
			targetRepo := new(mocks.MockNutritionTargetRepository)
			tt.setupMock(profileRepo, targetRepo)

			controller := controllers.NewUserProfileController(profileRepo, targetRepo)
			router := setupTestRouter()
			router.PUT("/profile", addAuthMiddleware(1), controller.SaveProfile)

			w := performRequest(router, http.MethodPut, "/profile", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := parseResponse(t, w)
			assert.Equal(t, tt.expectedMsg, response["message"])
			profileRepo.AssertExpectations(t)
			targetRepo.AssertExpectations(t)
		})
	}
}

func TestSaveProfileDerivesTarget(t *testing.T) {
	profileRepo := new(mocks.MockUserProfileRepository)
	targetRepo := new(mocks.MockNutritionTargetRepository)

	profileRepo.On("Upsert", mock.AnythingOfType("*models.UserProfile")).Return(nil)

	var created *models.NutritionTarget
	targetRepo.On("Create", mock.AnythingOfType("*models.NutritionTarget")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.NutritionTarget)
		}).Return(nil)

	controller := controllers.NewUserProfileController(profileRepo, targetRepo)
	router := setupTestRouter()
	router.PUT("/profile", addAuthMiddleware(7), controller.SaveProfile)

	w := performRequest(router, http.MethodPut, "/profile", validProfileBody())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, created)
	assert.Equal(t, uint(7), created.UserID)
	assert.False(t, created.EffectiveFrom.IsZero())
	assert.Greater(t, created.Calories, 0.0)
	assert.Greater(t, created.ProteinG, 0.0)
	assert.Greater(t, created.FiberG, 0.0)
	assert.InEpsilon(t, created.Calories, 4*created.ProteinG+4*created.CarbsG+9*created.FatG, 0.05)
}

func TestGetProfile(t *testing.T) {
	t.Run("profile found", func(t *testing.T) {
		profileRepo := new(mocks.MockUserProfileRepository)
		targetRepo := new(mocks.MockNutritionTargetRepository)
		profileRepo.On("FindByUserID", uint(1)).Return(&models.UserProfile{
			UserID: 1, Gender: models.GenderFemale, HeightCm: 165, WeightKg: 60,
		}, nil)

		controller := controllers.NewUserProfileController(profileRepo, targetRepo)
		router := setupTestRouter()
		router.GET("/profile", addAuthMiddleware(1), controller.GetProfile)

		w := performRequest(router, http.MethodGet, "/profile", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := parseResponse(t, w)
		assert.Equal(t, "Profile retrieved successfully", response["message"])

		data := response["data"].(map[string]interface{})
		assert.Equal(t, 22.0, data["bmi"])
		assert.Equal(t, "Normal weight", data["bmi_category"])
	})

	t.Run("profile missing", func(t *testing.T) {
		profileRepo := new(mocks.MockUserProfileRepository)
		targetRepo := new(mocks.MockNutritionTargetRepository)
		profileRepo.On("FindByUserID", uint(1)).Return(nil, errors.New("record not found"))

		controller := controllers.NewUserProfileController(profileRepo, targetRepo)
		router := setupTestRouter()
		router.GET("/profile", addAuthMiddleware(1), controller.GetProfile)

		w := performRequest(router, http.MethodGet, "/profile", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSaveProfileRequiresAuth(t *testing.T) {
	profileRepo := new(mocks.MockUserProfileRepository)
	targetRepo := new(mocks.MockNutritionTargetRepository)

	controller := controllers.NewUserProfileController(profileRepo, targetRepo)
	router := setupTestRouter()
	router.PUT("/profile", controller.SaveProfile)

	w := performRequest(router, http.MethodPut, "/profile", validProfileBody())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetWeightProjection(t *testing.T) {
	t.Run("successful projection", func(t *testing.T) {
		profileRepo := new(mocks.MockUserProfileRepository)
		targetRepo := new(mocks.MockNutritionTargetRepository)
		profileRepo.On("FindByUserID", uint(1)).Return(&models.UserProfile{
			UserID: 1, HeightCm: 180, WeightKg: 80,
		}, nil)

		controller := controllers.NewUserProfileController(profileRepo, targetRepo)
		router := setupTestRouter()
		router.GET("/profile/projection", addAuthMiddleware(1), controller.GetWeightProjection)

		w := performRequest(router, http.MethodGet, "/profile/projection?desired_weight=74&weeks=12", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := parseResponse(t, w)
		data := response["data"].(map[string]interface{})
		assert.Equal(t, -0.5, data["weekly_change_kg"])
		checkpoints := data["weekly_projections"].([]interface{})
		assert.Len(t, checkpoints, 13)
		last := checkpoints[12].(map[string]interface{})
		assert.Equal(t, 74.0, last["weight_kg"])
	})

	t.Run("non-positive weeks rejected", func(t *testing.T) {
		profileRepo := new(mocks.MockUserProfileRepository)
		targetRepo := new(mocks.MockNutritionTargetRepository)
		profileRepo.On("FindByUserID", uint(1)).Return(&models.UserProfile{
			UserID: 1, WeightKg: 80,
		}, nil)

		controller := controllers.NewUserProfileController(profileRepo, targetRepo)
		router := setupTestRouter()
		router.GET("/profile/projection", addAuthMiddleware(1), controller.GetWeightProjection)

		w := performRequest(router, http.MethodGet, "/profile/projection?desired_weight=74&weeks=0", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing profile", func(t *testing.T) {
		profileRepo := new(mocks.MockUserProfileRepository)
		targetRepo := new(mocks.MockNutritionTargetRepository)
		profileRepo.On("FindByUserID", uint(1)).Return(nil, errors.New("record not found"))

		controller := controllers.NewUserProfileController(profileRepo, targetRepo)
		router := setupTestRouter()
		router.GET("/profile/projection", addAuthMiddleware(1), controller.GetWeightProjection)

		w := performRequest(router, http.MethodGet, "/profile/projection?desired_weight=74&weeks=12", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
