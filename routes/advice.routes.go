package routes

import (
	"uqifeed/internal/controllers"
	"uqifeed/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAdviceRoutes(router *gin.Engine, adviceController *controllers.AdviceController) {
	adviceRoutes := router.Group("/advice")
	adviceRoutes.Use(middleware.AuthMiddleware())
	{
		adviceRoutes.GET("/:comparison_id", adviceController.GetAdvice)
	}
}
