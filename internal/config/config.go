package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ModeDev     = "dev"
	ModeRelease = "release"
)

type Config struct {
	Port        string   `yaml:"port"`
	Mode        string   `yaml:"mode"`
	DatabaseURL string   `yaml:"database_url"`
	CORSOrigins []string `yaml:"cors_origins"`
	SeedDemo    bool     `yaml:"seed_demo"`
}

// UseDatabase reports whether a PostgreSQL store is configured. Without one
// the service keeps everything in memory.
func (c Config) UseDatabase() bool {
	return c.DatabaseURL != ""
}

func defaults() Config {
	return Config{
		Port:        "8080",
		Mode:        ModeDev,
		CORSOrigins: []string{"*"},
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// HRMS_CONFIG, then a .env file, then the process environment.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("HRMS_CONFIG"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.Mode != ModeDev && cfg.Mode != ModeRelease {
		return Config{}, fmt.Errorf("APP_MODE must be %q or %q, got %q", ModeDev, ModeRelease, cfg.Mode)
	}
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("APP_PORT required")
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if port := os.Getenv("APP_PORT"); port != "" {
		cfg.Port = port
	}
	if mode := os.Getenv("APP_MODE"); mode != "" {
		cfg.Mode = strings.ToLower(strings.TrimSpace(mode))
	}
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}
	if raw := os.Getenv("HRMS_SEED_DEMO"); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("HRMS_SEED_DEMO must be a boolean")
		}
		cfg.SeedDemo = seed
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if value := strings.TrimSpace(part); value != "" {
			out = append(out, value)
		}
	}
	return out
}
