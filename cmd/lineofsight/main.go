// Package main is the entry point for the lineofsight visibility explorer.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tropical32/line-of-sight/internal/telemetry"
)

func main() {
	// .env is optional; variables may be set directly.
	envErr := godotenv.Load()

	setupOTelEnv()

	root := newRootCmd()
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(verbose)
		if err != nil {
			return err
		}
		appLogger = logger
		if envErr != nil {
			logger.Debug(".env file not loaded", zap.Error(envErr))
		}

		if !telemetry.Enabled() {
			logger.Debug("no OTLP endpoint configured, tracing disabled")
		}

		ctx := cmd.Context()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without export", zap.Error(err))
			return nil
		}
		shutdownTelemetry = shutdown
		return nil
	}

	err := root.ExecuteContext(context.Background())

	if shutdownTelemetry != nil {
		if serr := shutdownTelemetry(context.Background()); serr != nil {
			appLogger.Warn("error shutting down telemetry", zap.Error(serr))
		}
	}
	if appLogger != nil {
		_ = appLogger.Sync()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is present.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_LOS_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_LOS_DATASET")
	if dataset == "" {
		dataset = "lineofsight"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

// newLogger builds a development logger when verbose, a production one otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
