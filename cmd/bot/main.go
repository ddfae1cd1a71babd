package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/practicum"
	"homework_notification_bot/internal/infra/scheduler"
	"homework_notification_bot/internal/infra/telegram"
)

// services are the outside collaborators the bot is built from.
type services struct {
	newSource func(cfg config.AppConfig) app.StatusSource
	sleeper   app.Sleeper
	botURL    string // empty selects the public Bot API
	now       func() time.Time
}

func defaultServices() services {
	return services{
		newSource: func(cfg config.AppConfig) app.StatusSource {
			return practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, &http.Client{}, logger.Named("practicum"))
		},
		sleeper: scheduler.NewIntervalSleeper(),
		now:     time.Now,
	}
}

func main() {
	fmt.Println("Homework Notification Bot starting...")

	logCfg := config.LoadLogging()
	if err := logger.Init(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: could not initialize logging: %v\n", err)
		os.Exit(1)
	}
	mainLogger := logger.Named("main")
	mainLogger.Info("Bot started")

	// Runs until the process is killed. Fatal exits with status 1.
	if err := run(context.Background(), defaultServices()); err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			mainLogger.WithError(err).Fatal("Required environment variables are missing")
		}
		mainLogger.WithError(err).Fatal("Bot stopped")
	}
}

// run checks the credentials and then hands over to the polling loop.
// Nothing is fetched when the configuration is incomplete.
func run(ctx context.Context, svc services) error {
	mainLogger := logger.Named("main")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	mainLogger.WithField("chat_id", cfg.TelegramChatID).Info("Configuration loaded")

	// The bot handle lives for the whole process and is shared by every notification.
	bot, err := telegram.NewBot(cfg.TelegramToken, svc.botURL)
	if err != nil {
		return err
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logger.Named("notifier"))

	poller := app.NewPoller(
		svc.newSource(cfg),
		notifier,
		svc.sleeper,
		cfg.RetryPeriod,
		svc.now(),
		logger.Named("poller"),
	)
	return poller.Run(ctx)
}
