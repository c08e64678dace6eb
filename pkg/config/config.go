package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	MaxMessageLength     int             `json:"max_message_length"`
	ResponseDelayMinMs   int             `json:"response_delay_min_ms"`
	ResponseDelayMaxMs   int             `json:"response_delay_max_ms"`
	ActionDelayMs        int             `json:"action_delay_ms"`
	NoticeTimeoutSeconds int             `json:"notice_timeout_seconds"`
	Seed                 uint64          `json:"seed"`
	StatusBar            StatusBarConfig `json:"status_bar"`
	LogLevel             string          `json:"log_level"`
	LogFormat            string          `json:"log_format"`
	LogFile              string          `json:"log_file"`
}

// StatusBarConfig holds status bar UI configuration
type StatusBarConfig struct {
	Theme string `json:"theme"` // "default", "cyan" or "dark"
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		MaxMessageLength:     4000,
		ResponseDelayMinMs:   1000,
		ResponseDelayMaxMs:   3000,
		ActionDelayMs:        1000,
		NoticeTimeoutSeconds: 5,
		Seed:                 0,
		StatusBar: StatusBarConfig{
			Theme: "default",
		},
		LogLevel:  "info",
		LogFormat: "json",
		LogFile:   "",
	}
}

// Load loads configuration from the specified path.
// If the file doesn't exist, creates one with default values.
// Fields missing from the file keep their defaults; environment variables
// (optionally from a .env file in the working directory) override both.
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := Save(configPath, cfg); err != nil {
			return Config{}, fmt.Errorf("failed to create default config: %w", err)
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	// A missing .env file is the common case.
	_ = godotenv.Load()

	return applyEnvironmentOverrides(cfg), nil
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func applyEnvironmentOverrides(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv("DEMOCHAT_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("DEMOCHAT_LOG_FORMAT")); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("DEMOCHAT_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("DEMOCHAT_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("DEMOCHAT_RESPONSE_DELAY_MIN_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.ResponseDelayMinMs = ms
		}
	}
	if v := os.Getenv("DEMOCHAT_RESPONSE_DELAY_MAX_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.ResponseDelayMaxMs = ms
		}
	}
	return cfg
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.MaxMessageLength <= 0 {
		return fmt.Errorf("max_message_length must be positive, got: %d", c.MaxMessageLength)
	}

	if c.ResponseDelayMinMs < 0 {
		return fmt.Errorf("response_delay_min_ms must not be negative, got: %d", c.ResponseDelayMinMs)
	}

	if c.ResponseDelayMaxMs < c.ResponseDelayMinMs {
		return fmt.Errorf("response_delay_max_ms (%d) must not be below response_delay_min_ms (%d)",
			c.ResponseDelayMaxMs, c.ResponseDelayMinMs)
	}

	if c.ActionDelayMs <= 0 {
		return fmt.Errorf("action_delay_ms must be positive, got: %d", c.ActionDelayMs)
	}

	if c.NoticeTimeoutSeconds <= 0 {
		return fmt.Errorf("notice_timeout_seconds must be positive, got: %d", c.NoticeTimeoutSeconds)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", "json", "text":
	default:
		return fmt.Errorf("unsupported log_format: %s", c.LogFormat)
	}

	return nil
}

// ResponseDelayRange returns the reply delay bounds as durations.
func (c Config) ResponseDelayRange() (time.Duration, time.Duration) {
	return time.Duration(c.ResponseDelayMinMs) * time.Millisecond,
		time.Duration(c.ResponseDelayMaxMs) * time.Millisecond
}

// ActionDelay returns the delay used for attach/search/voice replies.
func (c Config) ActionDelay() time.Duration {
	return time.Duration(c.ActionDelayMs) * time.Millisecond
}

// NoticeTimeout returns how long an error notice stays visible.
func (c Config) NoticeTimeout() time.Duration {
	return time.Duration(c.NoticeTimeoutSeconds) * time.Second
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".demochat/config.json"
	}
	return filepath.Join(homeDir, ".demochat", "config.json")
}
