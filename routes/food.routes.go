package routes

import (
	"uqifeed/internal/controllers"
	"uqifeed/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodRoutes(router *gin.Engine, foodController *controllers.FoodController) {
	foodRoutes := router.Group("/food")
	foodRoutes.Use(middleware.AuthMiddleware())
	{
		foodRoutes.POST("/", foodController.CreateFoodEntry)
		foodRoutes.POST("/recognize", foodController.RecognizeDish)
		foodRoutes.GET("/date/:date", foodController.GetFoodEntriesByDate)

		foodRoutes.GET("/:id", foodController.GetFoodEntry)
		foodRoutes.PUT("/:id/ingredients", foodController.ReplaceIngredients)
		foodRoutes.DELETE("/:id", foodController.DeleteFoodEntry)

		foodRoutes.POST("/:id/comparison", foodController.CompareFoodEntry)
		foodRoutes.GET("/:id/comparisons", foodController.GetFoodEntryComparisons)
	}
}
