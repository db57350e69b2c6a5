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

	"github.com/gin-gonic/gin"
)

// AdviceTextGenerator is the text-generation slice the advice controller
// depends on, so tests can substitute a mock.
type AdviceTextGenerator interface {
	GenerateAdviceText(ctx context.Context, categories []models.AdviceCategory) (string, recognition.TokenUsage, error)
}

type AdviceController struct {
	comparisonRepo repository.ComparisonRepository
	generator      AdviceTextGenerator
}

func NewAdviceController(comparisonRepo repository.ComparisonRepository, generator AdviceTextGenerator) *AdviceController {
	return &AdviceController{comparisonRepo: comparisonRepo, generator: generator}
}

// GetAdvice godoc
// @Summary Get advice for a comparison
// @Description Classify a stored comparison into advice categories. With text=true a short free-text paragraph is generated from the categories as well; the categories stay authoritative when generation fails.
// @Tags advice
// @Produce json
// @Security BearerAuth
// @Param comparison_id path int true "Comparison ID"
// @Param text query bool false "Also generate a free-text paragraph" default(false)
// @Success 200 {object} map[string]interface{} "Advice generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid comparison ID"
// @Failure 404 {object} map[string]interface{} "Comparison not found"
// @Router /advice/{comparison_id} [get]
func (ac *AdviceController) GetAdvice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("comparison_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid comparison ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	comparison, err := ac.comparisonRepo.FindByID(uint(id))
	if err != nil || comparison.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comparison not found",
			"error":   "No comparison exists with the provided ID",
		})
		return
	}

	categories := nutrition.ClassifyAdvice(comparison.Result)

	data := gin.H{
		"comparison_id": comparison.ID,
		"categories":    categories,
	}

	if c.Query("text") == "true" && ac.generator != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		text, usage, err := ac.generator.GenerateAdviceText(ctx, categories)
		if err != nil {
			// Text generation is best-effort; the categories alone are a
			// complete answer.
			data["text_error"] = err.Error()
		} else {
			data["text"] = text
			data["token_usage"] = usage
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Advice generated successfully",
		"data":    data,
	})
}
