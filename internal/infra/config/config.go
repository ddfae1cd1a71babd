package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultEndpoint is the homework statuses endpoint of the review API.
	DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	// RetryPeriod is the pause between two polling cycles.
	RetryPeriod = 600 * time.Second

	defaultLogLevel    = "info"
	defaultLogFile     = "program.log"
	defaultEnvironment = "development"
)

const (
	envPracticumToken = "PRACTICUM_TOKEN"
	envTelegramToken  = "TELEGRAM_TOKEN"
	envTelegramChatID = "TELEGRAM_CHAT_ID"

	envLogLevel    = "LOG_LEVEL"
	envLogFile     = "LOG_FILE"
	envEnvironment = "ENVIRONMENT"
)

// ErrMissingCredentials is wrapped when any required variable is unset or empty.
var ErrMissingCredentials = errors.New("required credentials are not set")

// LogConfig holds the logging settings. They are loaded apart from AppConfig so
// that a credential failure can still be written to the configured log file.
type LogConfig struct {
	Level       string
	File        string
	Environment string
}

// AppConfig holds all configuration for the application.
// It is built once at startup and passed by value into constructors.
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
	Endpoint       string
	RetryPeriod    time.Duration
	Log            LogConfig
}

// LoadLogging reads logging settings from environment variables and .env file (if present).
func LoadLogging() LogConfig {
	// godotenv.Load will not override existing env variables; a missing .env is fine.
	_ = godotenv.Load()

	cfg := LogConfig{
		Level:       strings.ToLower(os.Getenv(envLogLevel)),
		File:        os.Getenv(envLogFile),
		Environment: strings.ToLower(os.Getenv(envEnvironment)),
	}
	if cfg.Level == "" {
		cfg.Level = defaultLogLevel
	}
	if cfg.File == "" {
		cfg.File = defaultLogFile
	}
	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}
	return cfg
}

// Load reads configuration from environment variables and .env file (if present).
// Every missing credential is reported in a single error.
func Load() (AppConfig, error) {
	_ = godotenv.Load()

	cfg := AppConfig{
		PracticumToken: os.Getenv(envPracticumToken),
		TelegramToken:  os.Getenv(envTelegramToken),
		Endpoint:       DefaultEndpoint,
		RetryPeriod:    RetryPeriod,
		Log:            LoadLogging(),
	}
	chatIDStr := os.Getenv(envTelegramChatID)

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, envPracticumToken)
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, envTelegramToken)
	}
	if chatIDStr == "" {
		missing = append(missing, envTelegramChatID)
	}
	if len(missing) > 0 {
		return AppConfig{}, fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	chatID, err := strconv.ParseInt(strings.TrimSpace(chatIDStr), 10, 64)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid %s: %w", envTelegramChatID, err)
	}
	cfg.TelegramChatID = chatID

	return cfg, nil
}
