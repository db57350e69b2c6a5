package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"uqifeed/internal/nutrition"
	"uqifeed/internal/repository"

	"github.com/gin-gonic/gin"
)

type NutritionTargetController struct {
	targetRepo  repository.NutritionTargetRepository
	profileRepo repository.UserProfileRepository
}

func NewNutritionTargetController(targetRepo repository.NutritionTargetRepository, profileRepo repository.UserProfileRepository) *NutritionTargetController {
	return &NutritionTargetController{targetRepo: targetRepo, profileRepo: profileRepo}
}

// GetActiveTarget godoc
// @Summary Get the active nutrition target
// @Description Retrieve the target currently in effect for the authenticated user
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Target retrieved successfully"
// @Failure 404 {object} map[string]interface{} "No target found"
// @Router /nutrition/target [get]
func (tc *NutritionTargetController) GetActiveTarget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	target, err := tc.targetRepo.FindActiveByUserID(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No nutrition target found",
			"error":   "Save a profile first to derive a target",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Nutrition target retrieved successfully",
		"data":    target,
	})
}

// RecalculateTarget godoc
// @Summary Recalculate the nutrition target
// @Description Derive a fresh target from the stored profile and make it the active one
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Target recalculated successfully"
// @Failure 400 {object} map[string]interface{} "Stored profile is invalid"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 500 {object} map[string]interface{} "Failed to store target"
// @Router /nutrition/target/recalculate [post]
func (tc *NutritionTargetController) RecalculateTarget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := tc.profileRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "Save a profile before recalculating the target",
		})
		return
	}

	now := time.Now()
	target, err := nutrition.ComputeTarget(profile, now)
	if err != nil {
		var profileErr *nutrition.InvalidProfileError
		if errors.As(err, &profileErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Stored profile is invalid",
				"error":   profileErr.Error(),
				"field":   profileErr.Field,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Stored profile is invalid",
			"error":   err.Error(),
		})
		return
	}

	target.EffectiveFrom = now
	if err := tc.targetRepo.Create(target); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store nutrition target",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Nutrition target recalculated successfully",
		"data":    target,
	})
}

// GetTargetHistory godoc
// @Summary Get nutrition target history
// @Description Retrieve past targets, newest first
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of targets to return" default(10)
// @Success 200 {object} map[string]interface{} "Target history retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve target history"
// @Router /nutrition/target/history [get]
func (tc *NutritionTargetController) GetTargetHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit",
				"error":   "limit must be an integer between 1 and 100",
			})
			return
		}
		limit = parsed
	}

	targets, err := tc.targetRepo.FindHistoryByUserID(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve target history",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Nutrition target history retrieved successfully",
		"data":    targets,
	})
}
