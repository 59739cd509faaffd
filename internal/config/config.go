package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// PlaceholderAPIKey is the value shipped in example configs. It counts as unset.
const PlaceholderAPIKey = "YOUR_BREEZE_API_KEY_HERE"

const defaultConfigFile = "config.yaml"

// ProgressLevels are display constants for the front-end level meter.
// They are echoed into every dashboard response untouched.
type ProgressLevels struct {
	DailyIncrement    float64
	MaxLevel          int
	RainbowThreshold  float64
	MonthlyMultiplier float64
	LevelDescriptions map[string]string
}

type Config struct {
	// APP
	AppEnv   string
	Port     string
	LogLevel string

	// Breeze
	BreezeAPIKey  string
	BreezeBaseURL string
	APITimeout    time.Duration

	// Dashboard
	HourlyRate    float64
	ExcludedUsers []string
	Progress      ProgressLevels

	// ConfigFile is the YAML file that was applied, empty when none was found.
	ConfigFile string
}

// HasAPIKey reports whether a usable Breeze key is configured.
func (c *Config) HasAPIKey() bool {
	key := strings.TrimSpace(c.BreezeAPIKey)
	return key != "" && key != PlaceholderAPIKey
}

func defaults() *Config {
	return &Config{
		AppEnv:   "development",
		Port:     "8001",
		LogLevel: "info",

		BreezeBaseURL: "https://api.breeze.pm/",
		APITimeout:    10 * time.Second,

		HourlyRate:    115,
		ExcludedUsers: []string{"admin"},
		Progress: ProgressLevels{
			DailyIncrement:    92,
			MaxLevel:          20,
			RainbowThreshold:  1500,
			MonthlyMultiplier: 5,
			LevelDescriptions: map[string]string{},
		},
	}
}

// Load builds the configuration from defaults, then the optional YAML file,
// then environment variables. A missing API key is not an error here; the
// dashboard handler reports it to the caller.
func Load() (*Config, error) {
	cfg := defaults()

	path := strings.TrimSpace(os.Getenv("CONFIG_FILE"))
	required := path != ""
	if !required {
		path = defaultConfigFile
	}
	if err := applyFile(cfg, path, required); err != nil {
		return nil, err
	}

	// App
	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	// Breeze
	cfg.BreezeAPIKey = getEnv("BREEZE_API_KEY", cfg.BreezeAPIKey)
	cfg.BreezeBaseURL = getEnv("BREEZE_BASE_URL", cfg.BreezeBaseURL)
	cfg.APITimeout = getEnvSeconds("API_TIMEOUT", cfg.APITimeout)

	// Dashboard
	cfg.HourlyRate = getEnvFloat("HOURLY_RATE", cfg.HourlyRate)
	cfg.ExcludedUsers = getEnvList("EXCLUDED_USERS", cfg.ExcludedUsers)

	// Progress levels
	cfg.Progress.DailyIncrement = getEnvFloat("DAILY_INCREMENT", cfg.Progress.DailyIncrement)
	cfg.Progress.MaxLevel = getEnvInt("MAX_LEVEL", cfg.Progress.MaxLevel)
	cfg.Progress.RainbowThreshold = getEnvFloat("RAINBOW_THRESHOLD", cfg.Progress.RainbowThreshold)
	cfg.Progress.MonthlyMultiplier = getEnvFloat("MONTHLY_MULTIPLIER", cfg.Progress.MonthlyMultiplier)

	cfg.ExcludedUsers = normalizeExcluded(cfg.ExcludedUsers)
	if cfg.APITimeout <= 0 {
		return nil, fmt.Errorf("api timeout must be positive, got %s", cfg.APITimeout)
	}

	return cfg, nil
}

// normalizeExcluded lowercases and trims the exclusion list and drops empty
// entries, which would otherwise match every user name.
func normalizeExcluded(in []string) []string {
	out := make([]string, 0, len(in))
	for _, name := range in {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// getEnv returns environment variable or default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat returns float from env or default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvSeconds accepts a bare number of seconds ("10") or a Go duration ("1500ms").
func getEnvSeconds(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if secs, err := strconv.ParseFloat(value, 64); err == nil {
		return secondsToDuration(secs)
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}

// getEnvList splits a comma separated variable.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return strings.Split(value, ",")
}
