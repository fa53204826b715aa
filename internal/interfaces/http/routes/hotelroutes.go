package routes

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/interfaces/http/handlers"
	"stayops/internal/interfaces/http/middleware"
)

type HotelRouteConfig struct {
	HotelHandler   *handlers.HotelHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupHotelRoutes(api *gin.RouterGroup, config *HotelRouteConfig) {
	hotels := api.Group("/hotels")
	hotels.Use(config.AuthMiddleware.RequireAuth())
	{
		hotels.POST("", config.HotelHandler.CreateHotel)
		hotels.GET("", config.HotelHandler.SearchHotels)
		hotels.GET("/:id", config.HotelHandler.GetHotel)
		hotels.PUT("/:id", config.HotelHandler.UpdateHotel)
	}
}
