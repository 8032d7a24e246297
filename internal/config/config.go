package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"bikestation/internal/database"
	"bikestation/internal/domain/station"
	"bikestation/internal/pkg/validator"
)

const (
	defaultAppEnv         = "dev"
	defaultJournalEnabled = "true"
)

type Config struct {
	AppEnv         string `validate:"required"`
	Capacity       int    `validate:"gt=0,lte=1000"`
	JournalEnabled bool
	JournalDSN     string `validate:"required_if=JournalEnabled true"`
}

// Debug reports whether verbose database logging was requested.
func (c *Config) Debug() bool {
	return c.AppEnv == "debug"
}

func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = defaultAppEnv
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	var err error
	cfg.Capacity, err = parseIntEnv("STATION_CAPACITY", station.DefaultCapacity)
	if err != nil {
		return nil, err
	}

	cfg.JournalEnabled = parseBoolEnv("JOURNAL_ENABLED", defaultJournalEnabled)
	cfg.JournalDSN = strings.TrimSpace(getEnv("JOURNAL_DSN", database.DefaultDSN))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("station config: env=%s capacity=%d journal=%t", cfg.AppEnv, cfg.Capacity, cfg.JournalEnabled)

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if err := validator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.JournalEnabled && !database.IsInMemory(cfg.JournalDSN) {
		return fmt.Errorf("JOURNAL_DSN must be an in-memory sqlite database, got %q", cfg.JournalDSN)
	}
	return nil
}

func parseIntEnv(name string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
