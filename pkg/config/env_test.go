package config

import "testing"

func TestParseEnvDefaults(t *testing.T) {
	env, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if env.ConfigPath != "config/params.yaml" {
		t.Fatalf("expected default config path, got %q", env.ConfigPath)
	}
	if env.LogLevel != "" {
		t.Fatalf("expected empty log level default, got %q", env.LogLevel)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("FITCORE_CONFIG", "/tmp/other.yaml")
	t.Setenv("FITCORE_LOG_LEVEL", "debug")

	env, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if env.ConfigPath != "/tmp/other.yaml" {
		t.Fatalf("expected overridden config path, got %q", env.ConfigPath)
	}
	if env.LogLevel != "debug" {
		t.Fatalf("expected overridden log level, got %q", env.LogLevel)
	}
}
