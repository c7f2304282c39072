package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Constants
const (
	SessionCookie = "calendar_session"

	// Error messages
	ErrInvalidRequest   = "Invalid request body"
	ErrInvalidYear      = "Invalid year"
	ErrInvalidMonthMsg  = "Invalid month"
	ErrInvalidView      = "Invalid view"
	ErrInvalidAction    = "Invalid action"
	ErrInvalidFormat    = "Invalid format"
	ErrInvalidThemeMsg  = "Invalid theme"
	ErrInternalServer   = "Internal server error"
	ErrFailedToSave     = "Failed to save preference"
	ErrFailedToRender   = "Failed to render poster"
	ErrFailedToGenerate = "Failed to generate export"

	// Log formats
	LogFormatJSON = "json"
	LogFormatText = "text"

	// Year bounds accepted from requests
	MinYear = 1
	MaxYear = 9999
)

// ErrNotFound is returned when a store has no row for a key
var ErrNotFound = errors.New("not found")

// Config is read from the environment, optionally seeded from a .env file
type Config struct {
	Port         int    `env:"CALENDAR_PORT" envDefault:"8080"`
	DatabasePath string `env:"CALENDAR_DB" envDefault:"calendar.db"`
	LogLevel     string `env:"CALENDAR_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"CALENDAR_LOG_FORMAT" envDefault:"json"`
	DefaultTheme string `env:"CALENDAR_DEFAULT_THEME" envDefault:"system"`
	PosterWidth  int    `env:"CALENDAR_POSTER_WIDTH" envDefault:"2480"`
	PosterHeight int    `env:"CALENDAR_POSTER_HEIGHT" envDefault:"3508"`
}

// LoadConfig loads .env files (if present) and parses the environment
func LoadConfig(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that env tags cannot express
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if _, err := ParseTheme(c.DefaultTheme); err != nil {
		return err
	}
	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatText {
		return fmt.Errorf("invalid log format %q (expected json or text)", c.LogFormat)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// NewLogger builds the process logger described by the config
func NewLogger(cfg *Config, out io.Writer) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(out)

	if cfg.LogFormat == LogFormatText {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	return logrus.NewEntry(logger).WithField("component", "fullbleed-calendar")
}
