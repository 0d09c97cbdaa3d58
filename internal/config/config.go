package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/ihsankerr/tennis-weather-bot/internal/forecast"
	"github.com/ihsankerr/tennis-weather-bot/internal/weather"
)

var validate = validator.New()

// StateBackend selects how the booking state is persisted.
type StateBackend string

const (
	BackendFile   StateBackend = "file"
	BackendSQLite StateBackend = "sqlite"
)

type AppConfig struct {
	TelegramBotToken  string `validate:"required"`
	TelegramChatID    string `validate:"required"`
	OpenWeatherAPIKey string `validate:"required"`

	// Location the bot checks tennis weather for.
	Location weather.Location

	// Playability thresholds passed into the analyzer.
	Thresholds forecast.Config

	// Booking state persistence.
	StateBackend StateBackend `validate:"oneof=file sqlite"`
	StatePath    string       `validate:"required"`

	// Timeout for outbound HTTP calls.
	HTTPTimeout time.Duration
}

// Load reads configuration from environment with sensible defaults.
// A .env file is honored when present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")
	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")

	cfg.Location = weather.Location{
		City:    getenvDefault("WEATHER_CITY", "Edinburgh"),
		Country: getenvDefault("WEATHER_COUNTRY", "GB"),
	}

	cfg.Thresholds = forecast.DefaultConfig()
	cfg.Thresholds.MaxWindMph = getenvFloat("MAX_WIND_MPH", cfg.Thresholds.MaxWindMph)
	cfg.Thresholds.PlayStartHour = getenvInt("PLAY_HOURS_START", cfg.Thresholds.PlayStartHour)
	cfg.Thresholds.PlayEndHour = getenvInt("PLAY_HOURS_END", cfg.Thresholds.PlayEndHour)
	cfg.Thresholds.HoursBeforeSunset = getenvInt("HOURS_BEFORE_SUNSET", cfg.Thresholds.HoursBeforeSunset)

	if cfg.Thresholds.PlayStartHour < 0 || cfg.Thresholds.PlayEndHour > 24 ||
		cfg.Thresholds.PlayStartHour >= cfg.Thresholds.PlayEndHour {
		return nil, fmt.Errorf("invalid playing hours %d-%d", cfg.Thresholds.PlayStartHour, cfg.Thresholds.PlayEndHour)
	}

	cfg.StateBackend = StateBackend(getenvDefault("STATE_BACKEND", string(BackendFile)))
	defaultPath := "state.json"
	if cfg.StateBackend == BackendSQLite {
		defaultPath = "tennis.db"
	}
	cfg.StatePath = getenvDefault("STATE_PATH", defaultPath)

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
