package routes

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/interfaces/http/handlers"
	"stayops/internal/interfaces/http/middleware"
)

type GuestRouteConfig struct {
	GuestHandler   *handlers.GuestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupGuestRoutes(api *gin.RouterGroup, config *GuestRouteConfig) {
	guests := api.Group("/guests")
	guests.Use(config.AuthMiddleware.RequireAuth())
	{
		guests.POST("", config.GuestHandler.CreateGuest)
		guests.GET("", config.GuestHandler.ListGuests)
		guests.GET("/:id", config.GuestHandler.GetGuest)
		guests.PUT("/:id", config.GuestHandler.UpdateGuest)
		guests.DELETE("/:id", config.GuestHandler.DeleteGuest)
	}
}
