package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ihsankerr/tennis-weather-bot/internal/bot"
	"github.com/ihsankerr/tennis-weather-bot/internal/config"
	"github.com/ihsankerr/tennis-weather-bot/internal/state"
	"github.com/ihsankerr/tennis-weather-bot/internal/telegram"
	"github.com/ihsankerr/tennis-weather-bot/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	mode := "wednesday"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("failed to open state store: %v", err)
	}
	defer store.Close()

	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey)
	tg := telegram.NewClient(httpClient, cfg.TelegramBotToken, cfg.TelegramChatID)

	b := bot.New(provider, tg, tg, store, cfg.Location, cfg.Thresholds)

	// One invocation runs exactly one mode to completion. The outer
	// schedule (cron, CI job) decides when each mode fires.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch mode {
	case "wednesday":
		err = b.RunAdvisory(ctx)
	case "friday":
		err = b.RunReminder(ctx)
	case "check-bookings":
		err = b.RunInbox(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", mode)
		fmt.Fprintln(os.Stderr, "Usage: tennis-weather-bot [wednesday|friday|check-bookings]")
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("%s run failed: %v", mode, err)
	}
}

func newStore(cfg *config.AppConfig) (state.Store, error) {
	switch cfg.StateBackend {
	case config.BackendSQLite:
		return state.NewSQLite(cfg.StatePath)
	default:
		return state.NewFileStore(cfg.StatePath), nil
	}
}
