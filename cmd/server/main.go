package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/moviebag/movie-bag/internal/api"
	"github.com/moviebag/movie-bag/internal/core/token"
	"github.com/moviebag/movie-bag/internal/infrastructure/config"
	mongodb "github.com/moviebag/movie-bag/internal/infrastructure/db/mongo"
	redisdb "github.com/moviebag/movie-bag/internal/infrastructure/db/redis"
	"github.com/moviebag/movie-bag/internal/infrastructure/mail"
	"github.com/moviebag/movie-bag/internal/infrastructure/queue"
	"github.com/moviebag/movie-bag/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	// Uniqueness of user emails and movie names relies on these indexes;
	// refuse to serve traffic without them.
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewMovieRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("movie index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	mailer, err := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("smtp client failed")
	}

	dispatcher := queue.NewDispatcher(cfg.SMTP.Workers, mailer, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Options{
		Mongo:      db,
		Redis:      rdb,
		Mail:       dispatcher,
		Tokens:     token.NewService(cfg.JWTSecret, cfg.TokenTTL),
		BcryptCost: cfg.BcryptCost,
		ResetURL:   cfg.ResetURL,
		Logger:     log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
