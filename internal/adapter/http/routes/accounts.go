package routes

import (
	"autoflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth        = "/auth"
	PathCustomers   = "/customers"
	PathSalespeople = "/salespeople"
)

func addAccountRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
	salespersonHandler *handlers.SalespersonHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Register)
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.GetByID)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	salespeople := rg.Group(PathSalespeople)
	{
		salespeople.POST("", salespersonHandler.Register)
		salespeople.GET("", salespersonHandler.List)
		salespeople.GET("/:id", salespersonHandler.GetByID)
		salespeople.PATCH("/:id/active", salespersonHandler.SetActive)
		salespeople.DELETE("/:id", salespersonHandler.Delete)
	}
}
