package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/matchstats/internal/app"
	"github.com/riskibarqy/matchstats/internal/config"
	"github.com/riskibarqy/matchstats/internal/observability"
	"github.com/riskibarqy/matchstats/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName)
	logging.SetDefault(logger)

	err = run(cfg, logger)
	_ = logger.Sync()
	if err != nil {
		logger.Error("matchstats api exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := observability.Start(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv, closeStores, err := app.NewHTTPServer(ctx, cfg, logger)
	if err != nil {
		_ = tel.Shutdown(context.Background())
		return crerr.Wrap(err, "build app")
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		err = crerr.Wrap(err, "serve http")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		err = crerr.CombineErrors(err, crerr.Wrap(shutdownErr, "graceful shutdown"))
	}
	if closeErr := closeStores(shutdownCtx); closeErr != nil {
		logger.Error("close document store", "error", closeErr)
	}
	if telErr := tel.Shutdown(shutdownCtx); telErr != nil {
		logger.Error("stop telemetry", "error", telErr)
	}

	logger.Info("http server stopped")
	return err
}
