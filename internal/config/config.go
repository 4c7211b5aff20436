package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	applog "gastos/internal/log"
)

// ValidRenderStyles lists the accepted RENDER_STYLE values. "plain" prints
// raw Markdown; the others are glamour styles.
var ValidRenderStyles = []string{"plain", "auto", "ascii", "dark", "light", "notty", "dracula", "pink", "tokyo-night"}

type Config struct {
	// Storage
	StorageDir string `yaml:"storage_dir"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Output
	RenderStyle string `yaml:"render_style"`

	// Reports
	YearWorkers int `yaml:"year_workers"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		StorageDir:  ".",
		LogLevel:    "warn",
		LogFormat:   "text",
		RenderStyle: "auto",
		YearWorkers: 4,
	}
}

// Load reads the optional YAML file named by LEDGER_CONFIG, then applies
// environment variables on top of it.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("LEDGER_CONFIG"))
}

// LoadFrom is Load with an explicit YAML file path. An empty path skips the file.
func LoadFrom(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.StorageDir = getEnv("LEDGER_DIR", c.StorageDir)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.RenderStyle = getEnv("RENDER_STYLE", c.RenderStyle)
	c.YearWorkers = getEnvInt("YEAR_WORKERS", c.YearWorkers)
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate storage directory
	if strings.TrimSpace(c.StorageDir) == "" {
		errors = append(errors, "storage directory cannot be empty")
	} else if err := os.MkdirAll(c.StorageDir, 0o755); err != nil {
		errors = append(errors, fmt.Sprintf("cannot create storage directory '%s': %v", c.StorageDir, err))
	}

	// Validate logging
	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	// Validate render style
	if !slices.Contains(ValidRenderStyles, c.RenderStyle) {
		errors = append(errors, fmt.Sprintf("invalid render style '%s': must be one of %v", c.RenderStyle, ValidRenderStyles))
	}

	// Validate report workers
	if c.YearWorkers < 1 {
		errors = append(errors, fmt.Sprintf("invalid year workers %d: must be at least 1", c.YearWorkers))
	} else if c.YearWorkers > 12 {
		errors = append(errors, fmt.Sprintf("invalid year workers %d: must be at most 12", c.YearWorkers))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
