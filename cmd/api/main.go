package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/myflix-api/internal/config"
	"github.com/vasapolrittideah/myflix-api/internal/database"
	"github.com/vasapolrittideah/myflix-api/internal/handler"
	"github.com/vasapolrittideah/myflix-api/internal/middleware"
	"github.com/vasapolrittideah/myflix-api/internal/repository"
	"github.com/vasapolrittideah/myflix-api/internal/usecase"
	"github.com/vasapolrittideah/myflix-api/shared/auth"
	"github.com/vasapolrittideah/myflix-api/shared/discovery"
	"github.com/vasapolrittideah/myflix-api/shared/mailer"
	"github.com/vasapolrittideah/myflix-api/shared/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "myflix-api").
		Logger()

	cfg := config.New(&logger)

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	db := client.Database(cfg.MongoDatabase)
	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	movieRepo := repository.NewMovieMongoRepository(ctx, &logger, db)

	jwtAuth := auth.NewJWTAuthenticator([]byte(cfg.JWTSecret), cfg.TokenIssuer, cfg.TokenExpiresIn)

	validator, err := validation.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build validator")
	}

	mail := mailer.NewFromEnv(&logger)

	authUsecase := usecase.NewAuthUsecase(userRepo, jwtAuth)
	userUsecase := usecase.NewUserUsecase(userRepo, movieRepo, mail, &logger)
	movieUsecase := usecase.NewMovieUsecase(movieRepo)

	router := handler.NewRouter(handler.RouterParams{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		Gate:           middleware.Authenticate(jwtAuth, userRepo),
		AuthHandler:    handler.NewAuthHandler(authUsecase, validator),
		UserHandler:    handler.NewUserHandler(userUsecase, validator),
		MovieHandler:   handler.NewMovieHandler(movieUsecase),
	})

	registration, err := discovery.Register(&logger, cfg.ConsulAddr, cfg.ConsulServiceName, cfg.ConsulServiceAddr, cfg.Port)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register with consul")
	}
	defer registration.Deregister()

	server := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("starting http server")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
