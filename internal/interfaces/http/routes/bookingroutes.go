package routes

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/interfaces/http/handlers"
	"stayops/internal/interfaces/http/middleware"
)

type BookingRouteConfig struct {
	BookingHandler *handlers.BookingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupBookingRoutes(api *gin.RouterGroup, config *BookingRouteConfig) {
	bookings := api.Group("/bookings")
	bookings.Use(config.AuthMiddleware.RequireAuth())
	{
		bookings.POST("", config.BookingHandler.CreateBooking)
		bookings.GET("", config.BookingHandler.ListBookings)
		bookings.GET("/:id", config.BookingHandler.GetBooking)
	}
}
