package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"uqifeed/internal/models"
	"uqifeed/internal/nutrition"
	"uqifeed/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserProfileController struct {
	profileRepo repository.UserProfileRepository
	targetRepo  repository.NutritionTargetRepository
}

func NewUserProfileController(profileRepo repository.UserProfileRepository, targetRepo repository.NutritionTargetRepository) *UserProfileController {
	return &UserProfileController{profileRepo: profileRepo, targetRepo: targetRepo}
}

type profileRequest struct {
	Gender        string   `json:"gender" example:"female"`
	BirthDate     string   `json:"birth_date" example:"1995-04-12"`
	HeightCm      float64  `json:"height_cm" example:"165"`
	WeightKg      float64  `json:"weight_kg" example:"60"`
	ActivityLevel string   `json:"activity_level" example:"moderate"`
	Goal          string   `json:"goal" example:"maintain"`
	DietaryTags   []string `json:"dietary_tags" example:"vegetarian"`
}

// SaveProfile godoc
// @Summary Create or update the user's profile
// @Description Save the profile and derive a fresh nutrition target from it. Earlier targets are kept for history.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body profileRequest true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid profile data"
// @Failure 500 {object} map[string]interface{} "Failed to save profile"
// @Router /profile [put]
func (pc *UserProfileController) SaveProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	birthDate, err := time.ParseInLocation(models.DateLayout, req.BirthDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid profile data",
			"error":   "birth_date must use the YYYY-MM-DD format",
		})
		return
	}

	profile := &models.UserProfile{
		UserID:        userID,
		Gender:        req.Gender,
		BirthDate:     birthDate,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
		DietaryTags:   req.DietaryTags,
	}

	now := time.Now()

	// Derive the target before persisting anything so an invalid profile
	// never reaches the database.
	target, err := nutrition.ComputeTarget(profile, now)
	if err != nil {
		var profileErr *nutrition.InvalidProfileError
		if errors.As(err, &profileErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid profile data",
				"error":   profileErr.Error(),
				"field":   profileErr.Field,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid profile data",
			"error":   err.Error(),
		})
		return
	}

	if err := pc.profileRepo.Upsert(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	target.EffectiveFrom = now
	if err := pc.targetRepo.Create(target); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save derived nutrition target",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data": gin.H{
			"profile": profile,
			"target":  target,
		},
	})
}

// GetProfile godoc
// @Summary Get the user's profile
// @Description Retrieve the authenticated user's profile with its BMI reading
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [get]
func (pc *UserProfileController) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := pc.profileRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	bmi := math.Round(profile.BMI()*10) / 10

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data": gin.H{
			"profile":      profile,
			"bmi":          bmi,
			"bmi_category": nutrition.BMICategory(bmi),
		},
	})
}

// GetWeightProjection godoc
// @Summary Project weight progress toward a desired weight
// @Description Interpolate a week-by-week weight path from the profile's current weight to the desired weight
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param desired_weight query number true "Desired weight in kilograms"
// @Param weeks query int true "Goal duration in weeks"
// @Success 200 {object} map[string]interface{} "Projection computed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid projection parameters"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile/projection [get]
func (pc *UserProfileController) GetWeightProjection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := pc.profileRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	desired, err := strconv.ParseFloat(c.Query("desired_weight"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid projection parameters",
			"error":   "desired_weight must be a number",
		})
		return
	}
	weeks, err := strconv.Atoi(c.Query("weeks"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid projection parameters",
			"error":   "weeks must be an integer",
		})
		return
	}

	projection, err := nutrition.ProjectWeight(profile.WeightKg, desired, weeks)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid projection parameters",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Projection computed successfully",
		"data":    projection,
	})
}

// DeleteProfile godoc
// @Summary Delete the user's profile
// @Description Remove the profile. Existing targets and reports are kept.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile deleted successfully"
// @Failure 500 {object} map[string]interface{} "Failed to delete profile"
// @Router /profile [delete]
func (pc *UserProfileController) DeleteProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := pc.profileRepo.DeleteByUserID(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile deleted successfully",
	})
}
