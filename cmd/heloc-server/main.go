package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlainEkh/heloc-calculator/internal/calculator"
	"github.com/AlainEkh/heloc-calculator/internal/config"
	"github.com/AlainEkh/heloc-calculator/internal/logging"
	"github.com/AlainEkh/heloc-calculator/internal/server"
	"github.com/AlainEkh/heloc-calculator/internal/tracing"
	"github.com/AlainEkh/heloc-calculator/pkg/constants"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	address := flag.String("address", "", "listen address override, e.g. :8080")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load .env\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": %q}\n", *configLocation, err.Error())
		os.Exit(1)
	}
	if *address != "" {
		conf.Server.Address = *address
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(logger, conf); err != nil {
		logger.Fatal("server stopped with error",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

func run(logger *zap.Logger, conf *config.Configuration) error {
	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, logger, tracing.Settings{
		Endpoint:    conf.Tracing.Endpoint,
		Insecure:    conf.Tracing.Insecure,
		ServiceName: conf.Tracing.ServiceName,
		Version:     version,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces",
				zap.String("op", "main.run"),
				zap.Error(err),
			)
		}
	}()

	loc, err := conf.Location()
	if err != nil {
		return fmt.Errorf("failed to load time zone: %w", err)
	}
	brands, err := conf.BrandRegistry()
	if err != nil {
		return fmt.Errorf("failed to load brands: %w", err)
	}

	calc := calculator.New(logger, calculator.WithLocation(loc))
	handler := server.NewHandler(logger, calc, server.Options{
		Brands:        brands,
		DefaultLocale: conf.DefaultLocale(),
		MaxBodySize:   conf.MaxBodyBytes(),
		Version:       version,
		Metrics:       conf.Metrics.Enabled,
	})

	srv := &http.Server{
		Addr:         conf.Server.Address,
		Handler:      handler,
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
		IdleTimeout:  conf.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("op", "main.run"),
			zap.String("address", conf.Server.Address),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-quit:
		logger.Info("shutting down server",
			zap.String("op", "main.run"),
			zap.String("signal", sig.String()),
		)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}

	logger.Info("server exited",
		zap.String("op", "main.run"),
	)
	return nil
}
