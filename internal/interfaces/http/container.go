// Package http wires the application together and serves the REST API.
package http

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	bookingusecases "stayops/internal/application/booking/usecases"
	contactusecases "stayops/internal/application/contact/usecases"
	guestusecases "stayops/internal/application/guest/usecases"
	hotelusecases "stayops/internal/application/hotel/usecases"
	"stayops/internal/application/ingestion"
	ticketusecases "stayops/internal/application/ticket/usecases"
	userusecases "stayops/internal/application/user/usecases"
	"stayops/internal/infrastructure/analysis"
	"stayops/internal/infrastructure/auth"
	"stayops/internal/infrastructure/config"
	"stayops/internal/infrastructure/email"
	"stayops/internal/infrastructure/mailbox"
	"stayops/internal/infrastructure/ratelimit"
	"stayops/internal/infrastructure/repository"
	"stayops/internal/interfaces/http/handlers"
	"stayops/internal/interfaces/http/middleware"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/services/htmlmail"
)

// Container holds every long-lived component of the process. It is built
// once at startup and torn down on shutdown.
type Container struct {
	Ingestion *ingestion.Service

	TicketHandler  *handlers.TicketHandler
	HotelHandler   *handlers.HotelHandler
	ContactHandler *handlers.ContactHandler
	GuestHandler   *handlers.GuestHandler
	BookingHandler *handlers.BookingHandler
	AuthHandler    *handlers.AuthHandler

	AuthMiddleware *middleware.AuthMiddleware
	LoginLimiter   ratelimit.RateLimiter

	redisClient *redis.Client
}

// NewContainer builds the full dependency graph on top of an open database
// connection.
func NewContainer(cfg *config.Config, db *gorm.DB, log logger.Interface) *Container {
	ticketRepo := repository.NewTicketRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	contactRepo := repository.NewContactRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpHours)

	analysisClient := analysis.NewClient(&cfg.Analysis, log)
	replySender := email.NewSMTPSender(&cfg.Email, log)
	sanitizer := htmlmail.NewSanitizer()

	connector := mailbox.NewConnector(&cfg.Mailbox, log)
	fetcher := mailbox.NewFetcher(cfg.Mailbox.BatchSize, log)
	source := mailbox.NewSource(connector, fetcher)

	pipeline := ingestion.NewPipeline(ticketRepo, analysisClient, sanitizer, mailbox.ParseMessage, log)
	ingestionService := ingestion.NewService(
		source,
		pipeline,
		ticketRepo,
		time.Duration(cfg.Mailbox.PollIntervalSecs)*time.Second,
		log,
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewChangeTicketStatusUseCase(ticketRepo, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, log),
		ticketusecases.NewAnalyzeTicketUseCase(ticketRepo, analysisClient, log),
		ticketusecases.NewReplyTicketUseCase(ticketRepo, replySender, log),
		ticketusecases.NewCheckInboxUseCase(ingestionService, log),
		log,
	)

	hotelHandler := handlers.NewHotelHandler(
		hotelusecases.NewCreateHotelUseCase(hotelRepo, log),
		hotelusecases.NewGetHotelUseCase(hotelRepo, log),
		hotelusecases.NewSearchHotelsUseCase(hotelRepo, log),
		hotelusecases.NewUpdateHotelUseCase(hotelRepo, log),
		log,
	)

	contactHandler := handlers.NewContactHandler(
		contactusecases.NewCreateContactUseCase(contactRepo, log),
		contactusecases.NewGetContactUseCase(contactRepo, log),
		contactusecases.NewListContactsUseCase(contactRepo, log),
		contactusecases.NewUpdateContactUseCase(contactRepo, log),
		contactusecases.NewDeleteContactUseCase(contactRepo, log),
		log,
	)

	guestHandler := handlers.NewGuestHandler(
		guestusecases.NewCreateGuestUseCase(guestRepo, log),
		guestusecases.NewGetGuestUseCase(guestRepo, log),
		guestusecases.NewListGuestsUseCase(guestRepo, log),
		guestusecases.NewUpdateGuestUseCase(guestRepo, log),
		guestusecases.NewDeleteGuestUseCase(guestRepo, log),
		log,
	)

	bookingHandler := handlers.NewBookingHandler(
		bookingusecases.NewCreateBookingUseCase(bookingRepo, log),
		bookingusecases.NewGetBookingUseCase(bookingRepo, log),
		bookingusecases.NewListBookingsUseCase(bookingRepo, log),
		log,
	)

	authHandler := handlers.NewAuthHandler(
		userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		userusecases.NewCreateUserUseCase(userRepo, hasher, log),
		userusecases.NewGetUserUseCase(userRepo, log),
		log,
	)

	c := &Container{
		Ingestion:      ingestionService,
		TicketHandler:  ticketHandler,
		HotelHandler:   hotelHandler,
		ContactHandler: contactHandler,
		GuestHandler:   guestHandler,
		BookingHandler: bookingHandler,
		AuthHandler:    authHandler,
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService, log),
	}

	if cfg.Redis.Host != "" {
		c.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		c.LoginLimiter = ratelimit.NewRedisRateLimiter(c.redisClient)
	}

	return c
}

// Close releases the container's external connections. The ingestion
// service is stopped separately by the server command.
func (c *Container) Close() error {
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}
