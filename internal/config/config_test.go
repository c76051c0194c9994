package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HRMS_CONFIG", "APP_PORT", "APP_MODE", "DATABASE_URL", "CORS_ORIGINS", "HRMS_SEED_DEMO"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.Mode != ModeDev {
		t.Fatalf("expected mode dev, got %s", cfg.Mode)
	}
	if cfg.UseDatabase() {
		t.Fatal("expected memory store by default")
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"9000\"\nmode: release\ncors_origins:\n  - http://localhost:3000\nseed_demo: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HRMS_CONFIG", path)
	t.Setenv("APP_PORT", "9100")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9100" {
		t.Fatalf("expected env port to win, got %s", cfg.Port)
	}
	if cfg.Mode != ModeRelease {
		t.Fatalf("expected mode from file, got %s", cfg.Mode)
	}
	if !cfg.SeedDemo {
		t.Fatal("expected seed_demo from file")
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_MODE", "staging")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestLoadRejectsBadSeedFlag(t *testing.T) {
	clearEnv(t)
	t.Setenv("HRMS_SEED_DEMO", "sometimes")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed HRMS_SEED_DEMO")
	}
}
