package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/randorium/randorium-go/internal/config"
	"github.com/randorium/randorium-go/internal/crypto"
	"github.com/randorium/randorium-go/internal/dice"
	"github.com/randorium/randorium-go/internal/handler"
	"github.com/randorium/randorium-go/internal/prompt"
	"github.com/randorium/randorium-go/internal/repository"
	"github.com/randorium/randorium-go/internal/service"
	"github.com/randorium/randorium-go/internal/telemetry"
)

const (
	serviceName    = "randorium"
	serviceVersion = "0.1.0"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Environment:    cfg.Env,
		Exporter:       cfg.OTelExporter,
	})
	if err != nil {
		slog.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}
	counters := telemetry.NewCounters()

	client, err := prompt.NewClientOrMock(ctx, prompt.Settings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	})
	if err != nil {
		slog.Error("llm client setup failed", "error", err)
		os.Exit(1)
	}
	promptGen := prompt.NewGenerator(telemetry.NewTracingClient(client), cfg.LLM.Timeout)

	svcs := handler.Services{
		Generator: service.NewGeneratorService(crypto.NewGenerator(), counters),
		Dice:      service.NewDiceService(dice.NewRoller(nil), nil, counters),
		Prompt:    service.NewPromptService(promptGen, nil, counters),
	}

	// Accounts, dice history and saved prompts need the database.
	db, err := repository.NewDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, account routes disabled", "driver", cfg.DatabaseDriver, "error", err)
	} else {
		defer db.Close()
		svcs.Auth = service.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTExpiry)
		svcs.Dice = service.NewDiceService(dice.NewRoller(nil), repository.NewHistoryRepository(db), counters)
		svcs.Prompt = service.NewPromptService(promptGen, repository.NewSavedPromptRepository(db), counters)
	}

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handler.NewRouter(ctx, svcs, handler.RouterConfig{
			ServiceName: serviceName,
			JWTSecret:   cfg.JWTSecret,
			PromptRate:  cfg.PromptRate,
			PromptBurst: cfg.PromptBurst,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "llm", cfg.LLM.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return errors.Join(srv.Shutdown(shutdownCtx), shutdownTelemetry(shutdownCtx))
	})

	if err := g.Wait(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
