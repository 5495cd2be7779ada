package main

import (
	"fmt"
	"os"

	"github.com/currency-covenant/amg-delivery-logger/pkg/server"
	"github.com/currency-covenant/amg-delivery-logger/pkg/services/config"
	"github.com/currency-covenant/amg-delivery-logger/pkg/services/identity"
	"github.com/currency-covenant/amg-delivery-logger/pkg/services/payroll"
	"github.com/currency-covenant/amg-delivery-logger/pkg/store/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the delivery logger web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "delivery-logger.yaml",
		"Path to the service configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	rosterStore, err := sqlite.NewRosterStore(db)
	if err != nil {
		return fmt.Errorf("failed to create roster store: %w", err)
	}
	assignmentStore, err := sqlite.NewAssignmentStore(db)
	if err != nil {
		return fmt.Errorf("failed to create assignment store: %w", err)
	}
	deliveryStore, err := sqlite.NewDeliveryStore(db)
	if err != nil {
		return fmt.Errorf("failed to create delivery store: %w", err)
	}
	sessionStore, err := sqlite.NewSessionStore(db)
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}

	verifier, err := identity.NewSessionVerifier(sessionStore)
	if err != nil {
		return fmt.Errorf("failed to create session verifier: %w", err)
	}

	newTemplate := payroll.NewDefaultTemplate
	if cfg.TemplatePath != "" {
		path := cfg.TemplatePath
		newTemplate = func() (*payroll.Template, error) {
			return payroll.OpenTemplate(path)
		}
	}

	exporter, err := payroll.NewExporter(payroll.ExporterDeps{
		Roster:      rosterStore,
		Assignments: assignmentStore,
		Deliveries:  deliveryStore,
		NewTemplate: newTemplate,
	})
	if err != nil {
		return fmt.Errorf("failed to create exporter: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Exporter: exporter,
			Verifier: verifier,
		},
	})

	return api.Start()
}
