package config

import (
	"strings"
)

// ApplyDefaults fills in missing values and normalizes the ones given.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)

	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
}
