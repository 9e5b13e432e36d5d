package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/cgpa/internal/domain"
)

// Config holds process-level settings resolved at startup.
type Config struct {
	DBPath      string
	LogCalls    bool
	DefaultRows int
	// Seed drives the band presets. Zero means seed from the clock.
	Seed int64
}

// DefaultConfig returns a Config with sensible defaults. DBPath is left
// empty; LoadConfig resolves it against the home directory.
func DefaultConfig() Config {
	return Config{
		LogCalls:    false,
		DefaultRows: domain.DefaultRows,
	}
}

// LoadConfig reads configuration from environment variables, falling
// back to defaults for any unset or invalid values.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("CGPA_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".cgpa", "cgpa.db")
	}

	if v := os.Getenv("CGPA_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CGPA_DEFAULT_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && ValidRowCount(n) {
			cfg.DefaultRows = n
		}
	}
	if v := os.Getenv("CGPA_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}

	return cfg, nil
}

// ValidRowCount reports whether n is an acceptable default row count.
func ValidRowCount(n int) bool {
	return n >= 1 && n <= domain.MaxDefaultRows
}
