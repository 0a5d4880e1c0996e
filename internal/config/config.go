// Package config reads compass settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/compass/internal/domain"
)

type Config struct {
	DBPath   string
	// Plan overrides the stored profile plan when set.
	Plan     *domain.Plan
	HTTPAddr string

	LogUseCases    bool
	AdvisorSeed    uint64
	HasAdvisorSeed bool
	Industry       string
}

// DefaultConfig returns the settings used when no environment overrides
// are present. DBPath is empty if the home directory cannot be found.
func DefaultConfig() Config {
	cfg := Config{
		HTTPAddr: "127.0.0.1:8080",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".compass", "compass.db")
	}
	return cfg
}

// Load reads COMPASS_* environment variables over DefaultConfig. Values that
// fail to parse are ignored.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("COMPASS_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("COMPASS_PLAN"); v != "" {
		if p, err := domain.ParsePlan(v); err == nil {
			cfg.Plan = &p
		}
	}
	if v := strings.TrimSpace(os.Getenv("COMPASS_HTTP_ADDR")); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("COMPASS_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("COMPASS_ADVISOR_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.AdvisorSeed = n
			cfg.HasAdvisorSeed = true
		}
	}
	if v := strings.TrimSpace(os.Getenv("COMPASS_INDUSTRY")); v != "" {
		cfg.Industry = strings.ToLower(v)
	}

	return cfg
}
