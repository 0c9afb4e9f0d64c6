// Package main runs the slackbridge HTTP router as a local development server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/slackbridge/slackbridge/internal/app"
	"github.com/slackbridge/slackbridge/internal/config"
	"github.com/slackbridge/slackbridge/internal/constants"
	"github.com/slackbridge/slackbridge/internal/logger"
	"github.com/slackbridge/slackbridge/internal/params"
	awsapp "github.com/slackbridge/slackbridge/internal/providers/aws/app"
	"github.com/slackbridge/slackbridge/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(constants.EnvFileName)

	cfg := config.MustLoadLocal()
	log := logger.Initialize(constants.Development, cfg.GetLogLevel())

	store, err := newStore(cfg, log)
	if err != nil {
		log.Error("failed to initialize parameter store", "error", err)
		os.Exit(1)
	}

	httpClient := app.NewHTTPClient(cfg)
	inbound := app.NewInbound(cfg, store, httpClient, log)

	var fb server.FeedbackHandler
	if cfg.ParamRoot != "" {
		fb = app.NewNotifier(context.Background(), cfg, store, httpClient, log)
	}

	router := server.NewRouter(inbound, fb, log, cfg.HTTPTimeout)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router.Handler(),
		ReadTimeout:  constants.ServerReadTimeout,
		WriteTimeout: constants.ServerWriteTimeout,
		IdleTimeout:  constants.ServerIdleTimeout,
	}

	go func() {
		log.Info("starting local server (Ctrl+C to stop)", "context", map[string]string{
			"port":        cfg.Port,
			"store":       storeName(cfg),
			"health":      fmt.Sprintf("http://localhost:%s/health", cfg.Port),
			"service":     string(constants.LocalService),
			"bot_version": cfg.BotVersion,
		})
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Error("failed to start server", "error", serveErr)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

func newStore(cfg *config.Config, log *slog.Logger) (params.Store, error) {
	if cfg.LocalStore == constants.LocalStoreMemory {
		return params.NewMemoryStore(nil), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.InitTimeout)
	defer cancel()

	gateway, err := awsapp.Initialize(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return gateway, nil
}

func storeName(cfg *config.Config) string {
	if cfg.LocalStore == constants.LocalStoreMemory {
		return constants.LocalStoreMemory
	}
	return "ssm"
}
