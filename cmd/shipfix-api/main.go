package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	grpcadapter "github.com/andrescamacho/shipfix-go/internal/adapters/grpc"
	"github.com/andrescamacho/shipfix-go/internal/adapters/httpapi"
	"github.com/andrescamacho/shipfix-go/internal/adapters/metrics"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/config"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/logging"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/pidfile"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default: search ./config.yaml)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, closer, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("shipfix-api stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Server.PIDFile != "" {
		pf := pidfile.New(cfg.Server.PIDFile)
		if err := pf.Acquire(); err != nil {
			return err
		}
		defer func() {
			if err := pf.Release(); err != nil {
				logger.Warn("failed to release PID file", "path", pf.Path(), "error", err)
			}
		}()
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		metricsPath = cfg.Metrics.Path
		logger.Info("metrics enabled", "path", metricsPath)
	}

	server := httpapi.NewServer(cfg.Server, metricsPath, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})

	if cfg.Server.GRPCAddress != "" {
		healthServer := grpcadapter.NewHealthServer(logger, cfg.Server.ShutdownTimeout)
		g.Go(func() error {
			return healthServer.ListenAndServe(ctx, cfg.Server.GRPCAddress)
		})
	}

	logger.Info(fmt.Sprintf("%s %s starting", httpapi.APIName, httpapi.APIVersion),
		"address", cfg.Server.Address())

	return g.Wait()
}
