package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"uqifeed/internal/models"
	"uqifeed/internal/nutrition"
	"uqifeed/internal/recognition"
	"uqifeed/internal/repository"
	"uqifeed/internal/services"

	"github.com/gin-gonic/gin"
)

// DishRecognizer is the recognition-service slice the food controller
// depends on, so tests can substitute a mock.
type DishRecognizer interface {
	RecognizeDish(ctx context.Context, description string) (string, []recognition.RecognizedIngredient, recognition.TokenUsage, error)
	RecognizeDishImage(ctx context.Context, imageURL, description string) (string, []recognition.RecognizedIngredient, recognition.TokenUsage, error)
}

type FoodController struct {
	entryRepo      repository.FoodEntryRepository
	comparisonRepo repository.ComparisonRepository
	targetRepo     repository.NutritionTargetRepository
	userRepo       repository.UserRepository
	recognizer     DishRecognizer
	scheduler      services.ReportScheduler
}

func NewFoodController(
	entryRepo repository.FoodEntryRepository,
	comparisonRepo repository.ComparisonRepository,
	targetRepo repository.NutritionTargetRepository,
	userRepo repository.UserRepository,
	recognizer DishRecognizer,
	scheduler services.ReportScheduler,
) *FoodController {
	return &FoodController{
		entryRepo:      entryRepo,
		comparisonRepo: comparisonRepo,
		targetRepo:     targetRepo,
		userRepo:       userRepo,
		recognizer:     recognizer,
		scheduler:      scheduler,
	}
}

type ingredientRequest struct {
	Name      string             `json:"name" example:"chicken breast"`
	Quantity  float64            `json:"quantity" example:"150"`
	Unit      string             `json:"unit" example:"g"`
	Nutrients map[string]float64 `json:"nutrients"`
}

type foodEntryRequest struct {
	Name        string              `json:"name" example:"Grilled chicken salad"`
	MealType    string              `json:"meal_type" example:"lunch"`
	ConsumedAt  time.Time           `json:"consumed_at" example:"2023-01-01T12:30:00Z"`
	Ingredients []ingredientRequest `json:"ingredients"`
}

type recognizeRequest struct {
	Description string `json:"description" example:"two scrambled eggs with a slice of toast"`
	ImageURL    string `json:"image_url,omitempty" example:"https://cdn.example.com/meals/123.jpg"`
}

var validMealTypes = map[string]bool{
	models.MealBreakfast: true,
	models.MealLunch:     true,
	models.MealDinner:    true,
	models.MealSnack:     true,
	models.MealLightMeal: true,
	models.MealDrinks:    true,
}

func buildIngredients(requests []ingredientRequest) ([]models.Ingredient, string) {
	ingredients := make([]models.Ingredient, 0, len(requests))
	for _, req := range requests {
		if req.Name == "" {
			return nil, "every ingredient needs a name"
		}
		if req.Quantity <= 0 {
			return nil, "ingredient quantity must be positive"
		}
		unit := req.Unit
		if unit == "" {
			unit = "g"
		}
		ingredients = append(ingredients, models.Ingredient{
			Name:      req.Name,
			Quantity:  req.Quantity,
			Unit:      unit,
			Nutrients: models.NutrientVector(req.Nutrients),
		})
	}
	return ingredients, ""
}

func (fc *FoodController) userLocation(userID uint) *time.Location {
	user, err := fc.userRepo.FindByID(userID)
	if err != nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CreateFoodEntry godoc
// @Summary Log a food entry
// @Description Store a meal with its ingredients and schedule a report rebuild for the affected day
// @Tags food
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body foodEntryRequest true "Food entry data"
// @Success 201 {object} map[string]interface{} "Food entry created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid entry data"
// @Failure 500 {object} map[string]interface{} "Failed to create food entry"
// @Router /food [post]
func (fc *FoodController) CreateFoodEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req foodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.MealType != "" && !validMealTypes[req.MealType] {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid entry data",
			"error":   "Unknown meal type",
		})
		return
	}
	if req.ConsumedAt.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid entry data",
			"error":   "consumed_at is required",
		})
		return
	}

	ingredients, problem := buildIngredients(req.Ingredients)
	if problem != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid entry data",
			"error":   problem,
		})
		return
	}

	entry := &models.FoodEntry{
		UserID:      userID,
		Name:        req.Name,
		MealType:    req.MealType,
		ConsumedAt:  req.ConsumedAt,
		Ingredients: ingredients,
	}

	if err := fc.entryRepo.Create(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create food entry",
			"error":   err.Error(),
		})
		return
	}

	fc.scheduler.NotifyEntryChanged(userID, entry.ConsumedAt, fc.userLocation(userID))

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food entry created successfully",
		"data":    entry,
	})
}

// GetFoodEntry godoc
// @Summary Get a food entry by ID
// @Description Retrieve one food entry with its ingredients
// @Tags food
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food entry ID"
// @Success 200 {object} map[string]interface{} "Food entry retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food entry ID"
// @Failure 404 {object} map[string]interface{} "Food entry not found"
// @Router /food/{id} [get]
func (fc *FoodController) GetFoodEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, ok := fc.ownedEntry(c, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entry retrieved successfully",
		"data":    entry,
	})
}

// GetFoodEntriesByDate godoc
// @Summary List food entries for a day
// @Description Retrieve all entries consumed on a local calendar date, with day totals and the remaining target budget
// @Tags food
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param tz query string false "IANA timezone name" default(UTC)
// @Success 200 {object} map[string]interface{} "Food entries retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date or timezone"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve food entries"
// @Router /food/date/{date} [get]
func (fc *FoodController) GetFoodEntriesByDate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	loc, err := resolveLocation(c, "")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid timezone",
			"error":   err.Error(),
		})
		return
	}

	date, err := parseDateParam(c.Param("date"), loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "date must use the YYYY-MM-DD format",
		})
		return
	}

	window := nutrition.DayWindow(date, loc)
	entries, err := fc.entryRepo.FindByUserIDAndRange(userID, window.Start, window.End)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve food entries",
			"error":   err.Error(),
		})
		return
	}

	totals := nutrition.Aggregate(entries, window)
	data := gin.H{
		"entries": entries,
		"totals":  totals,
	}
	// The remaining budget is advisory; without a target the listing is
	// still complete.
	if target, err := fc.targetRepo.FindActiveByUserID(userID, time.Now()); err == nil {
		data["remaining"] = nutrition.RemainingBudget(target, totals)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entries retrieved successfully",
		"data":    data,
	})
}

// ReplaceIngredients godoc
// @Summary Replace a food entry's ingredients
// @Description Swap the ingredient list (e.g. after the user corrects a recognition result) and rebuild reports
// @Tags food
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food entry ID"
// @Param ingredients body []ingredientRequest true "New ingredient list"
// @Success 200 {object} map[string]interface{} "Ingredients replaced successfully"
// @Failure 400 {object} map[string]interface{} "Invalid ingredient data"
// @Failure 404 {object} map[string]interface{} "Food entry not found"
// @Failure 500 {object} map[string]interface{} "Failed to replace ingredients"
// @Router /food/{id}/ingredients [put]
func (fc *FoodController) ReplaceIngredients(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, ok := fc.ownedEntry(c, userID)
	if !ok {
		return
	}

	var requests []ingredientRequest
	if err := c.ShouldBindJSON(&requests); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	ingredients, problem := buildIngredients(requests)
	if problem != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ingredient data",
			"error":   problem,
		})
		return
	}

	updated, err := fc.entryRepo.ReplaceIngredients(entry.ID, ingredients)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to replace ingredients",
			"error":   err.Error(),
		})
		return
	}

	fc.scheduler.NotifyEntryChanged(userID, updated.ConsumedAt, fc.userLocation(userID))

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredients replaced successfully",
		"data":    updated,
	})
}

// DeleteFoodEntry godoc
// @Summary Delete a food entry
// @Description Remove the entry and rebuild the reports of its day
// @Tags food
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food entry ID"
// @Success 200 {object} map[string]interface{} "Food entry deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food entry ID"
// @Failure 404 {object} map[string]interface{} "Food entry not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete food entry"
// @Router /food/{id} [delete]
func (fc *FoodController) DeleteFoodEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, ok := fc.ownedEntry(c, userID)
	if !ok {
		return
	}

	if err := fc.entryRepo.Delete(entry.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete food entry",
			"error":   err.Error(),
		})
		return
	}

	fc.scheduler.NotifyEntryChanged(userID, entry.ConsumedAt, fc.userLocation(userID))

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entry deleted successfully",
	})
}

// RecognizeDish godoc
// @Summary Recognize a dish from text or photo
// @Description Decompose a dish description or meal photo into ingredients with estimated nutrition. Nothing is stored; the client confirms the result before logging it.
// @Tags food
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body recognizeRequest true "Dish description and/or image URL"
// @Success 200 {object} map[string]interface{} "Dish recognized successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "Recognition service failed"
// @Router /food/recognize [post]
func (fc *FoodController) RecognizeDish(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req recognizeRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Description == "" && req.ImageURL == "") {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "a description or image_url is required",
		})
		return
	}

	if fc.recognizer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Recognition service is not configured",
			"error":   "Dish recognition is unavailable",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var (
		dishName    string
		ingredients []recognition.RecognizedIngredient
		usage       recognition.TokenUsage
		err         error
	)
	if req.ImageURL != "" {
		dishName, ingredients, usage, err = fc.recognizer.RecognizeDishImage(ctx, req.ImageURL, req.Description)
	} else {
		dishName, ingredients, usage, err = fc.recognizer.RecognizeDish(ctx, req.Description)
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Recognition service failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dish recognized successfully",
		"data": gin.H{
			"dish_name":   dishName,
			"ingredients": ingredients,
			"token_usage": usage,
		},
	})
}

// CompareFoodEntry godoc
// @Summary Compare a food entry against the active target
// @Description Compare the entry's totals against the active target, optionally scaled for a partial day, and persist the result
// @Tags food
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food entry ID"
// @Param scale query number false "Target scale factor" default(1.0)
// @Success 201 {object} map[string]interface{} "Comparison created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Food entry or target not found"
// @Failure 500 {object} map[string]interface{} "Failed to store comparison"
// @Router /food/{id}/comparison [post]
func (fc *FoodController) CompareFoodEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, ok := fc.ownedEntry(c, userID)
	if !ok {
		return
	}

	scale := 1.0
	if raw := c.Query("scale"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid scale",
				"error":   "scale must be a non-negative number",
			})
			return
		}
		scale = parsed
	}

	target, err := fc.targetRepo.FindActiveByUserID(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No nutrition target found",
			"error":   "Save a profile first to derive a target",
		})
		return
	}

	result, err := nutrition.Compare(entry.Totals, target, scale)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Comparison failed",
			"error":   err.Error(),
		})
		return
	}

	entryID := entry.ID
	comparison := &models.Comparison{
		UserID:      userID,
		FoodEntryID: &entryID,
		TargetID:    target.ID,
		Result:      result,
	}
	if err := fc.comparisonRepo.Create(comparison); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store comparison",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Comparison created successfully",
		"data":    comparison,
	})
}

// GetFoodEntryComparisons godoc
// @Summary List comparisons for a food entry
// @Description Retrieve all stored comparisons of one entry, newest first
// @Tags food
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food entry ID"
// @Success 200 {object} map[string]interface{} "Comparisons retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food entry ID"
// @Failure 404 {object} map[string]interface{} "Food entry not found"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve comparisons"
// @Router /food/{id}/comparisons [get]
func (fc *FoodController) GetFoodEntryComparisons(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, ok := fc.ownedEntry(c, userID)
	if !ok {
		return
	}

	comparisons, err := fc.comparisonRepo.FindByFoodEntryID(entry.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve comparisons",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comparisons retrieved successfully",
		"data":    comparisons,
	})
}

// ownedEntry resolves the :id parameter to an entry belonging to the
// authenticated user. Cross-user lookups answer 404 so entry ids are not
// probeable.
func (fc *FoodController) ownedEntry(c *gin.Context, userID uint) (*models.FoodEntry, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food entry ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	entry, err := fc.entryRepo.FindByID(uint(id))
	if err != nil || entry.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food entry not found",
			"error":   "No food entry exists with the provided ID",
		})
		return nil, false
	}
	return entry, true
}
