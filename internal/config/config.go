package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel    string
	LogFormat   string
	SubjectName string
	// NoColor disables terminal styling of prompts and feedback.
	NoColor bool
	// DurationUnit is the unit the operator enters exam durations in.
	DurationUnit time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		LogFormat:    getEnv("LOG_FORMAT", "pretty"),
		SubjectName:  getEnv("SUBJECT_NAME", "General"),
		NoColor:      os.Getenv("NO_COLOR") != "" || getEnvBool("EXAM_NO_COLOR", false),
		DurationUnit: parseUnit(getEnv("DURATION_UNIT", "minute")),
	}
}

// UnitLabel returns the plural name of the duration unit for prompts.
func (c *Config) UnitLabel() string {
	if c.DurationUnit == time.Second {
		return "seconds"
	}
	return "minutes"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseUnit maps "second" or "minute" (plural and short forms accepted) to a
// duration. Anything else falls back to minutes.
func parseUnit(raw string) time.Duration {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s", "sec", "second", "seconds":
		return time.Second
	default:
		return time.Minute
	}
}
