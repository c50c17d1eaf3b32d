package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/spoolview/spoolview/internal/spool"
)

// Config is the top-level application configuration.
type Config struct {
	// SpoolDir is the directory holding one mbox file per user.
	SpoolDir string `mapstructure:"spool_dir" yaml:"spool_dir"`

	// Exclude lists user names to skip during spool discovery.
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`

	// ExportDir is where saved copies of messages are written.
	ExportDir string `mapstructure:"export_dir" yaml:"export_dir"`

	// LogFile receives structured logs; empty disables logging.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// DefaultPath returns the default configuration file location,
// ~/.config/spoolview/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "spoolview", "config.yaml")
}

func defaultConfig() *Config {
	exportDir := "spoolview"
	if home, err := os.UserHomeDir(); err == nil {
		exportDir = filepath.Join(home, "spoolview")
	}
	return &Config{
		SpoolDir:  spool.DefaultDir,
		Exclude:   []string{},
		ExportDir: exportDir,
		LogLevel:  "info",
	}
}

// Load reads configuration from the given YAML file path using Viper.
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	defaults := defaultConfig()
	v.SetDefault("spool_dir", defaults.SpoolDir)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("export_dir", defaults.ExportDir)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", defaults.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaults, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the given configuration to a YAML file at path, creating
// parent directories if needed.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("spool_dir", cfg.SpoolDir)
	v.Set("exclude", cfg.Exclude)
	v.Set("export_dir", cfg.ExportDir)
	v.Set("log_file", cfg.LogFile)
	v.Set("log_level", cfg.LogLevel)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
