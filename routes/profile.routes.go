package routes

import (
	"uqifeed/internal/controllers"
	"uqifeed/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.Engine, profileController *controllers.UserProfileController, targetController *controllers.NutritionTargetController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.PUT("/", profileController.SaveProfile)
		profileRoutes.GET("/", profileController.GetProfile)
		profileRoutes.GET("/projection", profileController.GetWeightProjection)
		profileRoutes.DELETE("/", profileController.DeleteProfile)
	}

	nutritionRoutes := router.Group("/nutrition")
	nutritionRoutes.Use(middleware.AuthMiddleware())
	{
		nutritionRoutes.GET("/target", targetController.GetActiveTarget)
		nutritionRoutes.POST("/target/recalculate", targetController.RecalculateTarget)
		nutritionRoutes.GET("/target/history", targetController.GetTargetHistory)
	}
}
