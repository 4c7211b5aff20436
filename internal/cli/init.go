// Package cli provides the command line surface: environment bootstrap,
// cobra commands and the interactive menu.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/joho/godotenv"

	"gastos/internal/config"
	applog "gastos/internal/log"
	"gastos/internal/services"
	"gastos/internal/storage/csvfile"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from path (or LEDGER_CONFIG when
// path is empty) and applies overrides before validating it.
func LoadAndValidateConfig(path string, override func(*config.Config)) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger initializes structured logging from the configuration.
// Returns the configured logger and sets it as the default logger.
func SetupLogger(cfg *config.Config, out io.Writer) *applog.Logger {
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	logger := applog.New(applog.Config{
		Level:     level,
		Format:    cfg.LogFormat,
		Component: applog.ComponentApp,
		Output:    out,
	})
	applog.SetDefault(logger)
	return logger
}

// InitLedger wires the monthly CSV store into a ledger service.
func InitLedger(cfg *config.Config, logger *applog.Logger) (*services.LedgerService, error) {
	if cfg.StorageDir == "" {
		return nil, fmt.Errorf("storage directory is not configured")
	}
	store := csvfile.New(cfg.StorageDir, logger)
	svc := services.NewLedgerService(store, logger, services.LedgerServiceConfig{
		YearWorkers: cfg.YearWorkers,
	})
	logger.Debug("Ledger initialized",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldStorageRoot, store.Root())
	return svc, nil
}
