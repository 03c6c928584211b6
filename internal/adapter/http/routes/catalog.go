package routes

import (
	"autoflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVehicles       = "/vehicles"
	PathShowroom       = "/showroom"
	PathConfigurations = "/configurations"
	PathOptionals      = "/optionals"
)

func addCatalogRoutes(
	rg *gin.RouterGroup,
	vehicleHandler *handlers.VehicleHandler,
	showroomHandler *handlers.ShowroomHandler,
	configHandler *handlers.ConfigurationHandler,
) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.Create)
		vehicles.GET("", vehicleHandler.List)
		vehicles.GET("/:id", vehicleHandler.GetByID)
		vehicles.PUT("/:id", vehicleHandler.Update)
		vehicles.PATCH("/:id/status", vehicleHandler.UpdateStatus)
		vehicles.DELETE("/:id", vehicleHandler.Delete)
	}

	// Public showroom: no authentication, only sellable vehicles.
	showroom := rg.Group(PathShowroom)
	{
		showroom.GET("/vehicles", showroomHandler.Search)
		showroom.GET("/vehicles/:id", showroomHandler.Detail)
	}

	configurations := rg.Group(PathConfigurations)
	{
		configurations.POST("", configHandler.Create)
		configurations.GET("/:id", configHandler.GetByID)
		configurations.GET("/customer/:customer_id", configHandler.ListByCustomerID)
		configurations.DELETE("/:id", configHandler.Delete)
	}

	optionals := rg.Group(PathOptionals)
	{
		optionals.POST("", configHandler.CreateOptional)
		optionals.GET("", configHandler.ListOptionals)
	}
}
