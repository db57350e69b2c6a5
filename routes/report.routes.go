package routes

import (
	"uqifeed/internal/controllers"
	"uqifeed/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterReportRoutes(router *gin.Engine, reportController *controllers.ReportController) {
	reportRoutes := router.Group("/report")
	reportRoutes.Use(middleware.AuthMiddleware())
	{
		reportRoutes.GET("/daily/:date", reportController.GetDailyReport)
		reportRoutes.GET("/weekly/:week_start", reportController.GetWeeklyReport)
	}
}
