package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var envKeys = []string{
	"PORT", "STARTING_BALANCE", "CATALOG_DB",
	"AZURE_OPENAI_ENDPOINT", "AZURE_OPENAI_KEY", "AZURE_OPENAI_API_VERSION", "AZURE_OPENAI_DEPLOYMENT",
	"ADVISOR_TIMEOUT_MS", "SESSION_TTL_MIN", "SWEEP_SCHEDULE", "DAILY_RESET_SCHEDULE", "RESET_TZ",
	"CHAT_RATE_PER_MIN", "ALERT_COOLDOWN_MIN", "LOG_LEVEL", "LOG_DEV", "CORS_ORIGINS",
}

func TestLoadDefaults(t *testing.T) {
	// Clear env vars that could affect defaults
	for _, key := range envKeys {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Port != DefaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, DefaultPort)
	}
	if !cfg.StartingBalance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("StartingBalance = %s, want 1000", cfg.StartingBalance)
	}
	if cfg.CatalogDB != "" {
		t.Errorf("CatalogDB = %q, want memory", cfg.CatalogDB)
	}
	if cfg.AdvisorTimeout != DefaultAdvisorTimeout {
		t.Errorf("AdvisorTimeout = %v, want %v", cfg.AdvisorTimeout, DefaultAdvisorTimeout)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("SessionTTL = %v, want 2h", cfg.SessionTTL)
	}
	if cfg.AzureAPIVersion != "2024-06-01" || cfg.AzureDeployment != "gpt-4o" {
		t.Errorf("Azure defaults = %q/%q", cfg.AzureAPIVersion, cfg.AzureDeployment)
	}
	if cfg.AdvisorConfigured() {
		t.Error("advisor should not be configured by default")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.ResetTimezone != DefaultResetTimezone {
		t.Errorf("ResetTimezone = %q, want %q", cfg.ResetTimezone, DefaultResetTimezone)
	}
	cfg.ResetTimezone = "UTC"
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STARTING_BALANCE", "2500.50")
	t.Setenv("ADVISOR_TIMEOUT_MS", "500")
	t.Setenv("SESSION_TTL_MIN", "30")
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com")
	t.Setenv("AZURE_OPENAI_KEY", "secret")
	t.Setenv("CHAT_RATE_PER_MIN", "5")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_DEV", "true")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://edge.example.com,")

	cfg := Load()

	if !cfg.StartingBalance.Equal(decimal.RequireFromString("2500.50")) {
		t.Errorf("StartingBalance = %s, want 2500.50", cfg.StartingBalance)
	}
	if cfg.AdvisorTimeout != 500*time.Millisecond {
		t.Errorf("AdvisorTimeout = %v, want 500ms", cfg.AdvisorTimeout)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if !cfg.AdvisorConfigured() {
		t.Error("advisor should be configured")
	}
	if cfg.ChatRatePerMin != 5 {
		t.Errorf("ChatRatePerMin = %d, want 5", cfg.ChatRatePerMin)
	}
	if cfg.LogLevel != "debug" || !cfg.LogDev {
		t.Errorf("log = %q dev=%v", cfg.LogLevel, cfg.LogDev)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://edge.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		StartingBalance:    decimal.NewFromInt(1000),
		AdvisorTimeout:     DefaultAdvisorTimeout,
		SessionTTL:         DefaultSessionTTL,
		SweepSchedule:      DefaultSweepSchedule,
		DailyResetSchedule: DefaultDailyResetSchedule,
		ResetTimezone:      "UTC",
		ChatRatePerMin:     DefaultChatRatePerMin,
		LogLevel:           "info",
	}

	if err := Validate(valid); err != nil {
		t.Errorf("valid config should pass: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative balance", func(c *Config) { c.StartingBalance = decimal.NewFromInt(-1) }},
		{"timeout too short", func(c *Config) { c.AdvisorTimeout = time.Millisecond }},
		{"ttl too short", func(c *Config) { c.SessionTTL = time.Second }},
		{"negative chat rate", func(c *Config) { c.ChatRatePerMin = -1 }},
		{"endpoint without key", func(c *Config) { c.AzureEndpoint = "https://x" }},
		{"bad sweep schedule", func(c *Config) { c.SweepSchedule = "often" }},
		{"seven field reset", func(c *Config) { c.DailyResetSchedule = "0 0 * * * * *" }},
		{"bad timezone", func(c *Config) { c.ResetTimezone = "Mars/Olympus" }},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			if err := Validate(c); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
