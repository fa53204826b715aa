package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayops/internal/infrastructure/config"
	"stayops/internal/infrastructure/ratelimit"
	"stayops/internal/interfaces/http/middleware"
	"stayops/internal/interfaces/http/routes"
	"stayops/internal/shared/constants"
	"stayops/internal/shared/logger"
)

// loginRateLimit throttles credential guessing without getting in the way
// of normal agents.
var loginRateLimit = ratelimit.RateLimitConfig{
	RequestsPerMinute: 10,
	RequestsPerHour:   60,
}

// NewRouter builds the Gin engine with the middleware chain and all routes.
func NewRouter(cfg *config.Config, container *Container, log logger.Interface) *gin.Engine {
	if cfg.Server.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var loginLimiter gin.HandlerFunc
	if container.LoginLimiter != nil {
		loginLimiter = middleware.RateLimit(container.LoginLimiter, loginRateLimit, log)
	}

	api := engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    container.AuthHandler,
		AuthMiddleware: container.AuthMiddleware,
		LoginLimiter:   loginLimiter,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  container.TicketHandler,
		AuthMiddleware: container.AuthMiddleware,
	})
	routes.SetupHotelRoutes(api, &routes.HotelRouteConfig{
		HotelHandler:   container.HotelHandler,
		AuthMiddleware: container.AuthMiddleware,
	})
	routes.SetupContactRoutes(api, &routes.ContactRouteConfig{
		ContactHandler: container.ContactHandler,
		AuthMiddleware: container.AuthMiddleware,
	})
	routes.SetupGuestRoutes(api, &routes.GuestRouteConfig{
		GuestHandler:   container.GuestHandler,
		AuthMiddleware: container.AuthMiddleware,
	})
	routes.SetupBookingRoutes(api, &routes.BookingRouteConfig{
		BookingHandler: container.BookingHandler,
		AuthMiddleware: container.AuthMiddleware,
	})

	return engine
}
