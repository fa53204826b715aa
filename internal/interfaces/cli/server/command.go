// Package server implements the "server" CLI command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"stayops/internal/infrastructure/config"
	"stayops/internal/infrastructure/database"
	"stayops/internal/infrastructure/migration"
	"stayops/internal/infrastructure/persistence/models"
	httpserver "stayops/internal/interfaces/http"
	"stayops/internal/shared/constants"
	"stayops/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server and the mailbox ingestion loop",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == constants.EnvDevelopment); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting stayops", "environment", env, "auto_migrate", autoMigrate)

	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get(),
			&models.TicketModel{},
			&models.HotelModel{},
			&models.ContactModel{},
			&models.GuestModel{},
			&models.BookingModel{},
			&models.UserModel{},
		); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	container := httpserver.NewContainer(cfg, database.Get(), log)
	defer container.Close()

	container.Ingestion.Start()
	log.Infow("mailbox ingestion started",
		"host", cfg.Mailbox.Host,
		"folder", cfg.Mailbox.Folder,
		"poll_interval_secs", cfg.Mailbox.PollIntervalSecs)

	router := httpserver.NewRouter(cfg, container, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	// Stop ingestion after the HTTP server so a trailing check-inbox
	// request cannot race a closed pipeline.
	container.Ingestion.Stop()

	log.Infow("shutdown complete")
	return nil
}
