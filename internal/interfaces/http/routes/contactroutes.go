package routes

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/interfaces/http/handlers"
	"stayops/internal/interfaces/http/middleware"
)

type ContactRouteConfig struct {
	ContactHandler *handlers.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupContactRoutes(api *gin.RouterGroup, config *ContactRouteConfig) {
	contacts := api.Group("/contacts")
	contacts.Use(config.AuthMiddleware.RequireAuth())
	{
		contacts.POST("", config.ContactHandler.CreateContact)
		contacts.GET("", config.ContactHandler.ListContacts)
		contacts.GET("/:id", config.ContactHandler.GetContact)
		contacts.PUT("/:id", config.ContactHandler.UpdateContact)
		contacts.DELETE("/:id", config.ContactHandler.DeleteContact)
	}
}
