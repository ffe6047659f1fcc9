package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int      `env:"CALORIE_SPACE_TEST_PORT" envDefault:"50051"`
	Keys []string `env:"CALORIE_SPACE_TEST_KEYS" envSeparator:","`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 50051 {
		t.Fatalf("expected default port 50051, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CALORIE_SPACE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFromUsesProvidedVariables(t *testing.T) {
	t.Setenv("CALORIE_SPACE_TEST_PORT", "1")

	var cfg envTestConfig
	err := ParseEnvFrom(&cfg, map[string]string{
		"CALORIE_SPACE_TEST_PORT": "50053",
		"CALORIE_SPACE_TEST_KEYS": "a,b",
	})
	if err != nil {
		t.Fatalf("parse env from: %v", err)
	}
	if cfg.Port != 50053 {
		t.Fatalf("port = %d, want 50053", cfg.Port)
	}
	if len(cfg.Keys) != 2 || cfg.Keys[0] != "a" || cfg.Keys[1] != "b" {
		t.Fatalf("keys = %v, want [a b]", cfg.Keys)
	}
}

func TestParseEnvFromNilMapAppliesDefaults(t *testing.T) {
	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, nil); err != nil {
		t.Fatalf("parse env from: %v", err)
	}
	if cfg.Port != 50051 {
		t.Fatalf("port = %d, want 50051", cfg.Port)
	}
}
