package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TG_TOKEN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "/data/habit-tracker.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Schedule.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", cfg.Schedule.Timezone)
	}
	if cfg.TelegramEnabled() {
		t.Error("TelegramEnabled() = true without a token")
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TG_TOKEN", "123:abc")
	t.Setenv("TG_CHAT_ID", "42")
	t.Setenv("PORT", "9090")
	t.Setenv("TZ_NAME", "Europe/Moscow")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Telegram.ChatID != 42 {
		t.Errorf("ChatID = %d, want 42", cfg.Telegram.ChatID)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if !cfg.TelegramEnabled() {
		t.Error("TelegramEnabled() = false with a token")
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v, want 2 entries", cfg.Server.AllowedOrigins)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"token without chat", map[string]string{"TG_TOKEN": "123:abc"}},
		{"bad chat id", map[string]string{"TG_CHAT_ID": "not-a-number"}},
		{"bad timezone", map[string]string{"TZ_NAME": "Mars/Olympus"}},
		{"zero rate limit", map[string]string{"RATE_LIMIT_PER_MINUTE": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TG_TOKEN", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}
