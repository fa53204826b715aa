// Package routes wires handlers onto the Gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/interfaces/http/handlers"
	"stayops/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	LoginLimiter   gin.HandlerFunc
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		login := config.AuthHandler.Login
		if config.LoginLimiter != nil {
			auth.POST("/login", config.LoginLimiter, login)
		} else {
			auth.POST("/login", login)
		}
		auth.GET("/me",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.Me)
	}

	users := api.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireAdmin())
	{
		users.POST("", config.AuthHandler.CreateUser)
	}
}
