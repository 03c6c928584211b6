package routes

import (
	"autoflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathStatistics = "/statistics"

func addAdminRoutes(rg *gin.RouterGroup, statisticsHandler *handlers.StatisticsHandler) {
	statistics := rg.Group(PathStatistics)
	{
		statistics.GET("/dashboard", statisticsHandler.Dashboard)
	}
}
