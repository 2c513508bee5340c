package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Telegram struct {
		Token  string `env:"TG_TOKEN"`
		ChatID int64  `env:"TG_CHAT_ID"`
	}
	Server struct {
		Port               string   `env:"PORT"                  envDefault:"8080"`
		GinMode            string   `env:"GIN_MODE"              envDefault:"release"`
		AllowedOrigins     []string `env:"ALLOWED_ORIGINS"       envDefault:"*" envSeparator:","`
		RateLimitPerMinute int      `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	}
	Database struct {
		Path string `env:"DB_PATH" envDefault:"/data/habit-tracker.db"`
	}
	Schedule struct {
		// Timezone decides where "today" starts and ends.
		Timezone     string `env:"TZ_NAME"       envDefault:"UTC"`
		ReminderCron string `env:"REMINDER_CRON" envDefault:"0 20 * * *"`
		SummaryCron  string `env:"SUMMARY_CRON"  envDefault:"0 22 * * *"`
	}
	Log struct {
		Level      string `env:"LOG_LEVEL"        envDefault:"info"`
		Path       string `env:"LOG_PATH"`
		MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB"  envDefault:"10"`
		MaxBackups int    `env:"LOG_MAX_BACKUPS"  envDefault:"3"`
		MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
		Compress   bool   `env:"LOG_COMPRESS"     envDefault:"true"`
	}
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that env parsing cannot.
func (c *Config) Validate() error {
	if c.Telegram.Token != "" && c.Telegram.ChatID == 0 {
		return errors.New("TG_CHAT_ID is required when TG_TOKEN is set")
	}
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("invalid TZ_NAME %q: %w", c.Schedule.Timezone, err)
	}
	if c.Server.RateLimitPerMinute < 1 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.Server.RateLimitPerMinute)
	}
	return nil
}

// TelegramEnabled reports whether the bot should be started.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.Token != ""
}
