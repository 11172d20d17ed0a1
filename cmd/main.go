package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/givewell/donation-service/internal/adapter/http"
	"github.com/givewell/donation-service/internal/adapter/postgres"
	"github.com/givewell/donation-service/internal/adapter/resend"
	stripeadapter "github.com/givewell/donation-service/internal/adapter/stripe"
	"github.com/givewell/donation-service/internal/adapter/usecase"
	"github.com/givewell/donation-service/internal/config"
	"github.com/givewell/donation-service/internal/db"
)

// main is the entry point of the donation service. It loads configuration,
// optionally runs database migrations and seeding, initializes the
// database pool, repositories and usecases, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
// All client handles are constructed here and injected; no package-level
// state.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, opts)
		default:
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	donations := postgres.NewDonationRepository(pool)
	subscribers := postgres.NewSubscriberRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)

	verifier := stripeadapter.NewVerifier(cfg.Stripe)
	mailer := resend.New(cfg.Email)

	webhooks := usecase.NewWebhookUseCase(verifier, donations, mailer, cfg.Stripe, cfg.Donation, logger)
	dispatcher := usecase.NewCampaignUseCase(campaigns, subscribers, mailer, cfg.Dispatch, logger)
	stats := usecase.NewStatsUseCase(donations, cfg.Stats, logger)

	handler := httpadapter.NewHandler(webhooks, dispatcher, stats, cfg.CORS, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
