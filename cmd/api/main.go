package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AlexMorrow239/zomma-prototype/internal/api"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/service"
	mongodb "github.com/AlexMorrow239/zomma-prototype/internal/infrastructure/db/mongo"
	redisdb "github.com/AlexMorrow239/zomma-prototype/internal/infrastructure/db/redis"
	"github.com/AlexMorrow239/zomma-prototype/internal/infrastructure/queue"
	"github.com/AlexMorrow239/zomma-prototype/internal/infrastructure/smtp"
	"github.com/AlexMorrow239/zomma-prototype/internal/pkg/config"
	"github.com/AlexMorrow239/zomma-prototype/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	var mailer ports.Mailer
	if cfg.SMTP.Host != "" {
		m, err := smtp.NewMailer(smtp.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			FromName: cfg.SMTP.FromName,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("smtp configuration invalid")
		}
		mailer = m
	} else {
		log.Warn().Msg("SMTP_HOST not set, prospect notifications will not be delivered")
		mailer = smtp.NewDisabledMailer("smtp transport not configured")
	}

	recipientRepo := mongodb.NewRecipientRepository(db)
	notifier := service.NewNotificationService(
		mailer,
		recipientRepo,
		cfg.Notify.Recipients,
		logger.Component(log, "notifications"),
	)

	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, notifier, logger.Component(log, "queue"))
	dispatcherCtx, stopDispatcher := context.WithCancel(context.Background())
	dispatcher.Start(dispatcherCtx)

	e := api.NewRouter(db, rdb, dispatcher, cfg, logger.Component(log, "http"))

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	// With the server no longer accepting requests, let the workers finish
	// the queued notifications. Past the deadline, abort in-flight deliveries.
	dispatcher.Stop()
	drained := make(chan struct{})
	go func() {
		dispatcher.Wait()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(shutdownTimeout):
		log.Warn().Msg("notification drain timed out, aborting remaining deliveries")
		stopDispatcher()
		<-drained
	}

	log.Info().Msg("shutdown complete")
}
