package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML layout. Pointers distinguish "absent" from zero.
type fileConfig struct {
	BreezeAPIKey  *string  `yaml:"breeze_api_key"`
	BreezeBaseURL *string  `yaml:"breeze_base_url"`
	HourlyRate    *float64 `yaml:"hourly_rate"`
	ExcludedUsers []string `yaml:"excluded_users"`
	APITimeout    *float64 `yaml:"api_timeout"`

	ProgressLevels struct {
		DailyIncrement    *float64          `yaml:"daily_increment"`
		MaxLevel          *int              `yaml:"max_level"`
		RainbowThreshold  *float64          `yaml:"rainbow_threshold"`
		MonthlyMultiplier *float64          `yaml:"monthly_multiplier"`
		LevelDescriptions map[string]string `yaml:"level_descriptions"`
	} `yaml:"progress_levels"`
}

// applyFile overlays the YAML file at path onto cfg. A missing file is only an
// error when the path was set explicitly through CONFIG_FILE.
func applyFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}

	if fc.BreezeAPIKey != nil {
		cfg.BreezeAPIKey = *fc.BreezeAPIKey
	}
	if fc.BreezeBaseURL != nil {
		cfg.BreezeBaseURL = *fc.BreezeBaseURL
	}
	if fc.HourlyRate != nil {
		cfg.HourlyRate = *fc.HourlyRate
	}
	if fc.ExcludedUsers != nil {
		cfg.ExcludedUsers = fc.ExcludedUsers
	}
	if fc.APITimeout != nil {
		cfg.APITimeout = secondsToDuration(*fc.APITimeout)
	}

	pl := fc.ProgressLevels
	if pl.DailyIncrement != nil {
		cfg.Progress.DailyIncrement = *pl.DailyIncrement
	}
	if pl.MaxLevel != nil {
		cfg.Progress.MaxLevel = *pl.MaxLevel
	}
	if pl.RainbowThreshold != nil {
		cfg.Progress.RainbowThreshold = *pl.RainbowThreshold
	}
	if pl.MonthlyMultiplier != nil {
		cfg.Progress.MonthlyMultiplier = *pl.MonthlyMultiplier
	}
	if pl.LevelDescriptions != nil {
		cfg.Progress.LevelDescriptions = pl.LevelDescriptions
	}

	cfg.ConfigFile = path
	return nil
}

func secondsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}
