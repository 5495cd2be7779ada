package main

import (
	"fmt"
	"os"

	"github.com/currency-covenant/amg-delivery-logger/pkg/export"
	"github.com/currency-covenant/amg-delivery-logger/pkg/services/config"
	"github.com/currency-covenant/amg-delivery-logger/pkg/services/payroll"
	"github.com/currency-covenant/amg-delivery-logger/pkg/store/sqlite"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	weekStart string
	outPath   string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "export",
		Short: "Generate the weekly payroll report to a local file",
		RunE:  runExport,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "delivery-logger.yaml",
		"Path to the service configuration file")
	rootCmd.Flags().StringVarP(&weekStart, "week", "w", "",
		"ISO date inside the target week (defaults to the current week)")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "",
		"Output path (defaults to the report's own filename)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rosterStore, err := sqlite.NewRosterStore(db)
	if err != nil {
		return err
	}
	assignmentStore, err := sqlite.NewAssignmentStore(db)
	if err != nil {
		return err
	}
	deliveryStore, err := sqlite.NewDeliveryStore(db)
	if err != nil {
		return err
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
		return err
	}

	report, err := exporter.Export(ctx, weekStart)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	path := outPath
	if path == "" {
		path = report.Filename
	}
	if err := os.WriteFile(path, report.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return export.NewReporter(os.Stdout).Handle(report)
}
