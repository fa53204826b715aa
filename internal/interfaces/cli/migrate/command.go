// Package migrate implements the "migrate" CLI command.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"stayops/internal/infrastructure/config"
	"stayops/internal/infrastructure/database"
	"stayops/internal/infrastructure/migration"
	"stayops/internal/infrastructure/persistence/models"
	"stayops/internal/shared/constants"
	"stayops/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == constants.EnvDevelopment); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log.Infow("running migrations", "environment", env)

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

	log.Infow("migrations completed")
	return nil
}
