package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelterhq/pawhaven/internal/infrastructure/config"
	"github.com/shelterhq/pawhaven/internal/infrastructure/database"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migrations",
		Long:  `Create or update all database tables to match the current models.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	logger.Info("running migrations", "environment", env)

	if err := database.Get().AutoMigrate(
		&models.UserModel{},
		&models.PetModel{},
		&models.AdoptionModel{},
		&models.AdoptionRecordModel{},
		&models.RescueModel{},
		&models.ActivityModel{},
		&models.VolunteerModel{},
		&models.DonationModel{},
		&models.NotificationModel{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
