package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"reminder": map[string]any{
			"tickTimeout": "15s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "REMINDER_TICKTIMEOUT", want: "reminder.tickTimeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestReminderConfig_ApplyDefaults(t *testing.T) {
	var cfg ReminderConfig
	cfg.applyDefaults()

	if cfg.Interval != time.Minute {
		t.Fatalf("Interval = %v, want 1m", cfg.Interval)
	}
	if cfg.Lookback != cfg.Interval {
		t.Fatalf("Lookback = %v, want %v", cfg.Lookback, cfg.Interval)
	}
	if cfg.TickTimeout != 15*time.Second {
		t.Fatalf("TickTimeout = %v, want 15s", cfg.TickTimeout)
	}
	if cfg.DispatchWorkers != 8 {
		t.Fatalf("DispatchWorkers = %d, want 8", cfg.DispatchWorkers)
	}
}

func TestReminderConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := ReminderConfig{
		Interval:        30 * time.Second,
		TickTimeout:     5 * time.Second,
		DispatchWorkers: 2,
	}
	cfg.applyDefaults()

	if cfg.Interval != 30*time.Second {
		t.Fatalf("Interval = %v, want 30s", cfg.Interval)
	}
	if cfg.Lookback != 30*time.Second {
		t.Fatalf("Lookback should default to the interval, got %v", cfg.Lookback)
	}
	if cfg.DispatchWorkers != 2 {
		t.Fatalf("DispatchWorkers = %d, want 2", cfg.DispatchWorkers)
	}
}
