package routes

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/interfaces/http/handlers"
	"stayops/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific paths before parameterized ones to avoid route conflicts.
		tickets.POST("/check-inbox", config.TicketHandler.CheckInbox)

		tickets.PATCH("/:id/status", config.TicketHandler.ChangeStatus)
		tickets.POST("/:id/analyze", config.TicketHandler.AnalyzeTicket)
		tickets.POST("/:id/reply", config.TicketHandler.ReplyTicket)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.DELETE("/:id",
			config.AuthMiddleware.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}
}
