package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// Defaults for configuration values.
const (
	DefaultPort               = "8080"
	DefaultStartingBalance    = "1000"
	DefaultAPIVersion         = "2024-06-01"
	DefaultDeployment         = "gpt-4o"
	DefaultAdvisorTimeout     = 20 * time.Second
	DefaultSessionTTL         = 120 * time.Minute
	DefaultSweepSchedule      = "0 */5 * * * *"
	DefaultDailyResetSchedule = "0 0 0 * * *"
	DefaultResetTimezone      = "America/New_York"
	DefaultChatRatePerMin     = 20
	DefaultAlertCooldown      = 5 * time.Minute
	DefaultLogLevel           = "info"
)

var scheduleParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Config holds all application configuration.
type Config struct {
	Port            string
	StartingBalance decimal.Decimal
	// CatalogDB selects the SQLite catalog; empty serves fixtures from memory.
	CatalogDB string

	// Azure OpenAI advisor (optional)
	AzureEndpoint   string
	AzureKey        string
	AzureAPIVersion string
	AzureDeployment string
	AdvisorTimeout  time.Duration

	SessionTTL         time.Duration
	SweepSchedule      string
	DailyResetSchedule string
	ResetTimezone      string
	ChatRatePerMin     int
	AlertCooldown      time.Duration

	LogLevel    string
	LogDev      bool
	CORSOrigins []string
}

// Load reads configuration from environment variables (and .env file if present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		Port:               DefaultPort,
		StartingBalance:    decimal.RequireFromString(DefaultStartingBalance),
		CatalogDB:          os.Getenv("CATALOG_DB"),
		AzureEndpoint:      os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureKey:           os.Getenv("AZURE_OPENAI_KEY"),
		AzureAPIVersion:    DefaultAPIVersion,
		AzureDeployment:    DefaultDeployment,
		AdvisorTimeout:     DefaultAdvisorTimeout,
		SessionTTL:         DefaultSessionTTL,
		SweepSchedule:      DefaultSweepSchedule,
		DailyResetSchedule: DefaultDailyResetSchedule,
		ResetTimezone:      DefaultResetTimezone,
		ChatRatePerMin:     DefaultChatRatePerMin,
		AlertCooldown:      DefaultAlertCooldown,
		LogLevel:           DefaultLogLevel,
		LogDev:             os.Getenv("LOG_DEV") == "true",
		CORSOrigins:        []string{"*"},
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("STARTING_BALANCE"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			cfg.StartingBalance = d
		}
	}

	if v := os.Getenv("AZURE_OPENAI_API_VERSION"); v != "" {
		cfg.AzureAPIVersion = v
	}
	if v := os.Getenv("AZURE_OPENAI_DEPLOYMENT"); v != "" {
		cfg.AzureDeployment = v
	}

	if v := os.Getenv("ADVISOR_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.AdvisorTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("SESSION_TTL_MIN"); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			cfg.SessionTTL = time.Duration(m) * time.Minute
		}
	}

	if v := os.Getenv("SWEEP_SCHEDULE"); v != "" {
		cfg.SweepSchedule = v
	}
	if v := os.Getenv("DAILY_RESET_SCHEDULE"); v != "" {
		cfg.DailyResetSchedule = v
	}
	if v := os.Getenv("RESET_TZ"); v != "" {
		cfg.ResetTimezone = v
	}

	if v := os.Getenv("CHAT_RATE_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ChatRatePerMin = n
		}
	}

	if v := os.Getenv("ALERT_COOLDOWN_MIN"); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			cfg.AlertCooldown = time.Duration(m) * time.Minute
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	return cfg
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AdvisorConfigured reports whether both Azure endpoint and key are set.
func (c Config) AdvisorConfigured() bool {
	return c.AzureEndpoint != "" && c.AzureKey != ""
}

// Location resolves ResetTimezone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.ResetTimezone)
}

// Validate checks that configuration values are within acceptable ranges.
func Validate(cfg Config) error {
	if cfg.StartingBalance.IsNegative() {
		return fmt.Errorf("STARTING_BALANCE must be non-negative, got %s", cfg.StartingBalance)
	}
	if cfg.AdvisorTimeout < 100*time.Millisecond {
		return fmt.Errorf("ADVISOR_TIMEOUT_MS must be at least 100ms, got %v", cfg.AdvisorTimeout)
	}
	if cfg.SessionTTL < time.Minute {
		return fmt.Errorf("SESSION_TTL_MIN must be at least 1, got %v", cfg.SessionTTL)
	}
	if cfg.ChatRatePerMin < 0 {
		return fmt.Errorf("CHAT_RATE_PER_MIN must be non-negative, got %d", cfg.ChatRatePerMin)
	}
	if cfg.AlertCooldown < 0 {
		return fmt.Errorf("ALERT_COOLDOWN_MIN must be non-negative, got %v", cfg.AlertCooldown)
	}
	if (cfg.AzureEndpoint == "") != (cfg.AzureKey == "") {
		return fmt.Errorf("AZURE_OPENAI_ENDPOINT and AZURE_OPENAI_KEY must be set together")
	}
	if _, err := scheduleParser.Parse(cfg.SweepSchedule); err != nil {
		return fmt.Errorf("SWEEP_SCHEDULE %q: %w", cfg.SweepSchedule, err)
	}
	if _, err := scheduleParser.Parse(cfg.DailyResetSchedule); err != nil {
		return fmt.Errorf("DAILY_RESET_SCHEDULE %q: %w", cfg.DailyResetSchedule, err)
	}
	if _, err := cfg.Location(); err != nil {
		return fmt.Errorf("RESET_TZ %q: %w", cfg.ResetTimezone, err)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", cfg.LogLevel)
	}
	return nil
}
