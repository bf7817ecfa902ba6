// Package config loads scan defaults from .gitgauge.yaml, the environment,
// and .env files. Flags override config; config overrides defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every tunable a scan consumes.
type Config struct {
	// Ownership scoring settings
	Ownership OwnershipConfig `yaml:"ownership" mapstructure:"ownership"`

	// Churn estimation settings
	Churn ChurnConfig `yaml:"churn" mapstructure:"churn"`

	// Scan filter settings shared by both engines
	Scan ScanConfig `yaml:"scan" mapstructure:"scan"`

	// Output settings
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

type OwnershipConfig struct {
	// Threshold is the ownership ratio above which a path is flagged.
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
	// MinTotal is the minimum lines (exact) or touches (heuristic) to report.
	MinTotal int `yaml:"min_total" mapstructure:"min_total"`
	// Workers caps parallel blame tasks; 0 picks a runtime default.
	Workers int `yaml:"workers" mapstructure:"workers"`
	// MaxCommits bounds the heuristic walk; 0 walks everything.
	MaxCommits int `yaml:"max_commits" mapstructure:"max_commits"`
}

type ChurnConfig struct {
	WindowDays int `yaml:"window_days" mapstructure:"window_days"`
	MinTotal   int `yaml:"min_total" mapstructure:"min_total"`
}

type ScanConfig struct {
	// Depth is how many directory components a rollup key keeps.
	Depth int `yaml:"depth" mapstructure:"depth"`
	// ExtraExtensions extend the built-in allow-list.
	ExtraExtensions []string `yaml:"extra_extensions" mapstructure:"extra_extensions"`
	// IncludeAll disables extension filtering.
	IncludeAll bool `yaml:"include_all" mapstructure:"include_all"`
}

type OutputConfig struct {
	// Limit caps rows in ranked listings.
	Limit int `yaml:"limit" mapstructure:"limit"`
	// JSON forces JSON output regardless of TTY detection.
	JSON bool `yaml:"json" mapstructure:"json"`
	// LogLevel is a logrus level name ("info", "debug", ...).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Ownership: OwnershipConfig{
			Threshold: 0.75,
			MinTotal:  25,
		},
		Churn: ChurnConfig{
			WindowDays: 90,
			MinTotal:   1,
		},
		Scan: ScanConfig{
			Depth: 2,
		},
		Output: OutputConfig{
			Limit:    20,
			LogLevel: "info",
		},
	}
}

// Load reads configuration from the given file, or from .gitgauge.yaml in
// the working directory or home directory when path is empty. A missing
// config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("ownership", cfg.Ownership)
	v.SetDefault("churn", cfg.Churn)
	v.SetDefault("scan", cfg.Scan)
	v.SetDefault("output", cfg.Output)

	v.SetEnvPrefix("GITGAUGE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".gitgauge")
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(homeDir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// loadEnvFiles loads .env files in order of precedence. Missing files are
// fine; godotenv never overrides variables already set.
func loadEnvFiles() {
	for _, f := range []string{".env.local", ".env"} {
		_ = godotenv.Load(f)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(homeDir, ".gitgauge.env"))
	}
}
