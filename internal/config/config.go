// Package config loads the fsstat command line configuration.
//
// Configuration sources (in order of precedence):
//  1. Command line flags
//  2. Environment variables (FSSTAT_*), including those loaded from .env
//  3. Configuration file (YAML)
//  4. Default values
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the complete fsstat configuration.
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging"`

	// Output controls how results are printed
	Output OutputConfig `mapstructure:"output"`

	// Query controls how metadata is queried
	Query QueryConfig `mapstructure:"query"`

	// Root confines every lookup to this directory when set
	Root string `mapstructure:"root"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`

	// NoColor disables ANSI colors in log output
	NoColor bool `mapstructure:"no_color"`
}

// OutputConfig controls result formatting.
type OutputConfig struct {
	// Format is the output format
	// Valid values: json, yaml, text
	Format string `mapstructure:"format" validate:"required,oneof=json yaml text"`
}

// QueryConfig controls the metadata queries.
type QueryConfig struct {
	// Lstat describes symbolic links instead of following them
	Lstat bool `mapstructure:"lstat"`

	// Async issues every query through the callback form concurrently
	Async bool `mapstructure:"async"`

	// BigInt requests arbitrary-precision fields, which is unsupported
	BigInt bool `mapstructure:"bigint"`
}

// SlogLevel returns the configured level as a slog.Level.
func (c LoggingConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Flags returns the command line flags understood by Load.
func Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("fsstat", pflag.ContinueOnError)
	flags.String("config", "", "path to a YAML configuration file")
	flags.String("env-file", ".env", "path to a dotenv file loaded before reading the environment")
	flags.String("log-level", "INFO", "minimum log level (DEBUG, INFO, WARN, ERROR)")
	flags.Bool("no-color", false, "disable colored log output")
	flags.StringP("format", "f", "text", "output format (json, yaml, text)")
	flags.BoolP("lstat", "l", false, "describe symbolic links instead of following them")
	flags.Bool("async", false, "query all paths concurrently through callbacks")
	flags.Bool("bigint", false, "request bigint fields (unsupported)")
	flags.String("root", "", "confine lookups to this directory")
	return flags
}

// flagKeys maps configuration keys to the flags that override them.
var flagKeys = map[string]string{
	"logging.level":    "log-level",
	"logging.no_color": "no-color",
	"output.format":    "format",
	"query.lstat":      "lstat",
	"query.async":      "async",
	"query.bigint":     "bigint",
	"root":             "root",
}

// Load loads configuration from flags, environment, file and defaults.
//
// Parameters:
//   - flags: A parsed flag set created by Flags
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: Configuration loading or validation error
func Load(flags *pflag.FlagSet) (*Config, error) {
	envFile, _ := flags.GetString("env-file")
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	configPath, _ := flags.GetString("config")
	if err := setupViper(v, flags, configPath); err != nil {
		return nil, err
	}

	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures viper with environment variables, flags and the
// config file location.
func setupViper(v *viper.Viper, flags *pflag.FlagSet, configPath string) error {
	// Example: FSSTAT_OUTPUT_FORMAT=json
	v.SetEnvPrefix("FSSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	}
	v.SetConfigType("yaml")
	return nil
}

// readConfigFile reads the configuration file if one was given.
func readConfigFile(v *viper.Viper, configPath string) error {
	if configPath == "" {
		return nil
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// loadDotEnv loads variables from a dotenv file into the process
// environment. Variables already set are kept. A missing file is not an
// error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("(config-godotenv) %w", err)
	}
	return nil
}
