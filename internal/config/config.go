package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Random source names accepted in RANDOM_SOURCE.
const (
	SourceMath   = "math"
	SourceCrypto = "crypto"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       slog.Level
	RandomSource   string
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		RandomSource: strings.ToLower(getEnv("RANDOM_SOURCE", SourceMath)),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}

	switch cfg.RandomSource {
	case SourceMath, SourceCrypto:
	default:
		return Config{}, fmt.Errorf("RANDOM_SOURCE must be %q or %q, got %q", SourceMath, SourceCrypto, cfg.RandomSource)
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	if err != nil || rps <= 0 {
		return Config{}, errors.New("RATE_LIMIT_RPS must be a positive number")
	}
	cfg.RateLimitRPS = rps

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil || burst <= 0 {
		return Config{}, errors.New("RATE_LIMIT_BURST must be a positive integer")
	}
	cfg.RateLimitBurst = burst

	return cfg, nil
}

// IsProduction reports whether the service runs with ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
