package calorie

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("calorie", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 50052 {
		t.Fatalf("port = %d, want 50052", cfg.Port)
	}
	if cfg.ActivityLogPath != "logs/analytics.log" {
		t.Fatalf("activity log path = %q, want logs/analytics.log", cfg.ActivityLogPath)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("CALORIE_SPACE_CALORIE_PORT", "6000")
	t.Setenv("CALORIE_SPACE_API_KEYS", "k1,k2")
	fs := flag.NewFlagSet("calorie", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-activity-log", "/tmp/activity.log"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 6000 {
		t.Fatalf("port = %d, want 6000", cfg.Port)
	}
	if cfg.ActivityLogPath != "/tmp/activity.log" {
		t.Fatalf("activity log path = %q, want /tmp/activity.log", cfg.ActivityLogPath)
	}
	if len(cfg.APIKeys.Keys) != 2 {
		t.Fatalf("api keys = %v, want 2 entries", cfg.APIKeys.Keys)
	}
}

func TestParseConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv("CALORIE_SPACE_CALORIE_PORT", "6000")
	fs := flag.NewFlagSet("calorie", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "7000"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 7000 {
		t.Fatalf("port = %d, want 7000", cfg.Port)
	}
}
