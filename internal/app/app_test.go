package app

import (
	"path/filepath"
	"testing"

	"habit-tracker/internal/config"
)

func TestApplicationWithoutTelegram(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "habits.db")
	cfg.Server.Port = "0"
	cfg.Server.GinMode = "test"
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Server.RateLimitPerMinute = 30
	cfg.Schedule.Timezone = "UTC"

	application, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if application.bot != nil {
		t.Error("bot should not be created without a token")
	}
	if len(application.cron.Entries()) != 0 {
		t.Errorf("expected no cron jobs without a bot, got %d", len(application.cron.Entries()))
	}

	if err := application.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := application.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}
