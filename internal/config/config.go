package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all gitflow settings.
type Config struct {
	// Remote is the prefix stripped from remote branch names.
	Remote string `mapstructure:"remote"`

	// ProtectedBranches are never deleted by cleanup.
	ProtectedBranches []string `mapstructure:"protected_branches"`

	// LogCount is the default number of commits shown by the log command.
	LogCount int `mapstructure:"log_count"`

	// AutoPush pushes after every commit unless suppressed per-command.
	AutoPush bool `mapstructure:"auto_push"`

	// Timeout bounds each git invocation.
	Timeout time.Duration `mapstructure:"timeout"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Remote:            "origin",
		ProtectedBranches: []string{"main", "master", "develop"},
		LogCount:          10,
		AutoPush:          true,
		Timeout:           30 * time.Second,
	}
}

// Load loads configuration from file. An absent config file is fine and
// yields the defaults.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("remote", cfg.Remote)
	v.SetDefault("protected_branches", cfg.ProtectedBranches)
	v.SetDefault("log_count", cfg.LogCount)
	v.SetDefault("auto_push", cfg.AutoPush)
	v.SetDefault("timeout", cfg.Timeout)

	v.SetEnvPrefix("GITFLOW")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		// Search for config in standard locations
		v.SetConfigName("config")
		v.AddConfigPath(".gitflow")
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ".gitflow"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() {
	envFiles := []string{
		".env.local", // Local overrides (highest precedence)
		".env",       // Main environment file
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			godotenv.Load(file)
		}
	}

	homeDir, _ := os.UserHomeDir()
	homeEnvFile := filepath.Join(homeDir, ".gitflow", ".env")
	if _, err := os.Stat(homeEnvFile); err == nil {
		godotenv.Load(homeEnvFile)
	}
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if remote := os.Getenv("GITFLOW_REMOTE"); remote != "" {
		cfg.Remote = remote
	}
	if count := os.Getenv("GITFLOW_LOG_COUNT"); count != "" {
		if n, err := strconv.Atoi(count); err == nil {
			cfg.LogCount = n
		}
	}
	if autoPush := os.Getenv("GITFLOW_AUTO_PUSH"); autoPush != "" {
		cfg.AutoPush = autoPush == "true"
	}
	if timeout := os.Getenv("GITFLOW_TIMEOUT_SECONDS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
}
