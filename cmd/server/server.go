package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-api/internal/config"
	"github.com/KirkDiggler/pokemon-api/internal/logging"
	"github.com/KirkDiggler/pokemon-api/internal/otel"
)

var (
	httpAddr    string
	grpcPort    int
	storageKind string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API, plus a gRPC health service when --grpc-port is set.
Settings come from POKEMON_API_* environment variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&httpAddr, "http-addr", ":8000", "HTTP listen address")
	serverCmd.Flags().IntVar(&grpcPort, "grpc-port", 0, "gRPC health service port (0 disables)")
	serverCmd.Flags().StringVar(&storageKind, "storage", config.StorageSQLite, "storage backend: sqlite or redis")
}

// loadConfig reads the environment, then applies any flags set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("http-addr") {
		cfg.HTTPAddr = httpAddr
	}
	if flags.Changed("grpc-port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("storage") {
		cfg.Storage = storageKind
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, cfg.OTelEndpoint, serviceName)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err.Error())
		}
	}()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	return a.run(ctx)
}
