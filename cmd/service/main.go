package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/ownmsg/message-service/internal/client/identity"
	"github.com/ownmsg/message-service/internal/config"
	api "github.com/ownmsg/message-service/internal/generated"
	"github.com/ownmsg/message-service/internal/infra"
	"github.com/ownmsg/message-service/internal/pkg/jwt"
	"github.com/ownmsg/message-service/internal/pkg/validator"
	db "github.com/ownmsg/message-service/internal/repository/postgres"
	"github.com/ownmsg/message-service/internal/rest"
	"github.com/ownmsg/message-service/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	identityClient := identity.New(cfg)
	defer identityClient.Close()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Auth.JWTSecret)
	messageService := service.New(dbRepo, vldtr)

	handler := rest.New(messageService, dbRepo, identityClient, jwtGenerator, cfg.Platform.Env)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.MetricsHTTP(next, metrics)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
