package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"github.com/ferux/powerwatch"
	"github.com/ferux/powerwatch/internal/api"
	"github.com/ferux/powerwatch/internal/config"
	"github.com/ferux/powerwatch/internal/monitor"
	"github.com/ferux/powerwatch/internal/state"
	"github.com/ferux/powerwatch/internal/telegram"
	"github.com/ferux/powerwatch/internal/templates"
	"github.com/ferux/powerwatch/internal/tuya"
)

const shutdownTimeout = time.Second * 15

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	info := powerwatch.Info()

	cfg, err := config.Load(".env")
	if err != nil {
		logger.
			Fatal().
			Err(err).
			Str("revision", info.Revision).
			Str("branch", info.Branch).
			Str("env", info.Environment).
			Msg("parsing config")
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)

	logger.
		Info().
		Str("device_id", cfg.Tuya.DeviceID).
		Str("tuya", cfg.Tuya.BaseURL).
		Str("poll_interval", cfg.Monitor.PollInterval.String()).
		Str("rev", info.Revision).
		Str("branch", info.Branch).
		Msg("🔌 power monitor started")

	notifierClient, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Release:     info.Revision,
		Environment: info.Environment,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("can't create sentry client")
	}

	tuyaClient := tuya.New(cfg.Tuya, cfg.Monitor.RequestTimeout.Std())
	tgclient := telegram.New(cfg.NotifyTelegram.BaseURL, cfg.Monitor.RequestTimeout.Std())
	tracker := state.New()

	mon := monitor.New(
		cfg.Monitor,
		cfg.NotifyTelegram,
		tuya.NewTokens(tuyaClient),
		tuyaClient,
		tracker,
		tgclient,
		logger,
		notifierClient,
	)

	var httpAPI *api.HTTP
	if cfg.HTTP.Listen != "" {
		httpAPI = api.NewHTTP(cfg.HTTP, tracker, logger, notifierClient, info)
		httpAPI.Serve()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if cfg.NotifyLifecycle {
		sendLifecycleMessage(ctx, logger, tgclient, cfg.NotifyTelegram, templates.Started(info.Branch, info.Environment, info.Revision))
	}

	mon.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if cfg.NotifyLifecycle {
		sendLifecycleMessage(shutdownCtx, logger, tgclient, cfg.NotifyTelegram, templates.Stopping())
	}

	if httpAPI != nil {
		if errShut := httpAPI.Shutdown(shutdownCtx); errShut != nil {
			logger.Error().Err(errShut).Msg("error shutting down server")
		}
	}

	notifierClient.Flush(shutdownTimeout)
}

func sendLifecycleMessage(ctx context.Context, logger zerolog.Logger, tgclient telegram.Client, cfg config.NotifyTelegram, text string) {
	ctx = logger.WithContext(ctx)

	err := tgclient.SendMessageViaHTTP(ctx, cfg.API, cfg.ChatID, text)
	if err != nil {
		logger.Error().Err(err).Msg("can't notify telegram")
	}
}
