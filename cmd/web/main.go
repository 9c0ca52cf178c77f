package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/de-tools/insure-atlas/pkg/render/charts"
	"github.com/de-tools/insure-atlas/pkg/server"
	"github.com/de-tools/insure-atlas/pkg/services/config"
	"github.com/de-tools/insure-atlas/pkg/services/dashboard"
	"github.com/de-tools/insure-atlas/pkg/services/delivery"
	"github.com/de-tools/insure-atlas/pkg/services/export"
	"github.com/de-tools/insure-atlas/pkg/services/session"
	"github.com/de-tools/insure-atlas/pkg/store"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Insure Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a settings file (environment variables with the ATLAS_ prefix override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	level, err := zerolog.ParseLevel(settings.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.Log.Level, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	provider, closeStore, err := store.Open(ctx, settings.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error().Err(err).Msg("failed to close store")
		}
	}()

	reports := dashboard.NewService(provider)
	opts, err := exportOptions(ctx, settings.Export)
	if err != nil {
		return err
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            settings.Server.Addr(),
		ShutdownTimeout: settings.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Provider: provider,
			Reports:  reports,
			Exporter: export.NewExporter(reports, opts...),
			Charts:   charts.NewRenderer(),
			Session:  session.NewState(),
		},
	})

	err = api.Start()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func exportOptions(ctx context.Context, settings config.ExportSettings) ([]export.Option, error) {
	if settings.Sink == "" {
		return nil, nil
	}
	logger := zerolog.Ctx(ctx)

	registry, err := delivery.NewRegistry(settings.SinksFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create sink registry: %w", err)
	}

	profiles, _ := registry.GetProfiles(ctx)
	logger.Info().Msgf("Sink profiles found at `%s`:", settings.SinksFile)
	for _, profile := range profiles {
		logger.Info().Msgf("Name: `%s`, Type: `%s`", profile.Name, profile.Type)
	}

	sink, err := registry.Open(ctx, settings.Sink)
	if err != nil {
		return nil, fmt.Errorf("failed to open sink %s: %w", settings.Sink, err)
	}
	logger.Info().Str("sink", sink.Name()).Msg("exports are also delivered to a sink")
	return []export.Option{export.WithSink(sink)}, nil
}
