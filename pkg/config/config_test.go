package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.MaxMessageLength != 4000 {
		t.Errorf("Expected MaxMessageLength 4000, got %d", cfg.MaxMessageLength)
	}

	min, max := cfg.ResponseDelayRange()
	if min != time.Second || max != 3*time.Second {
		t.Errorf("Expected delay range 1s-3s, got %v-%v", min, max)
	}

	if cfg.ActionDelay() != time.Second {
		t.Errorf("Expected action delay 1s, got %v", cfg.ActionDelay())
	}

	if cfg.NoticeTimeout() != 5*time.Second {
		t.Errorf("Expected notice timeout 5s, got %v", cfg.NoticeTimeout())
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestLoad_CreateDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".demochat", "config.json")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.MaxMessageLength != 4000 {
		t.Errorf("Expected default MaxMessageLength 4000, got %d", cfg.MaxMessageLength)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestLoad_ExistingConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.json")

	initialCfg := Default()
	initialCfg.ResponseDelayMaxMs = 5000
	if err := Save(configPath, initialCfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ResponseDelayMaxMs != 5000 {
		t.Errorf("Expected ResponseDelayMaxMs 5000, got %d", cfg.ResponseDelayMaxMs)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.json")

	if err := os.WriteFile(configPath, []byte(`{"log_level": "debug"}`), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got %q", cfg.LogLevel)
	}
	if cfg.MaxMessageLength != 4000 {
		t.Errorf("Expected default MaxMessageLength, got %d", cfg.MaxMessageLength)
	}
	if cfg.NoticeTimeoutSeconds != 5 {
		t.Errorf("Expected default NoticeTimeoutSeconds, got %d", cfg.NoticeTimeoutSeconds)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	t.Chdir(t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.json")

	if err := os.WriteFile(configPath, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.json")

	t.Setenv("DEMOCHAT_LOG_LEVEL", "WARN")
	t.Setenv("DEMOCHAT_SEED", "1234")
	t.Setenv("DEMOCHAT_RESPONSE_DELAY_MIN_MS", "10")
	t.Setenv("DEMOCHAT_RESPONSE_DELAY_MAX_MS", "20")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn', got %q", cfg.LogLevel)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Expected seed 1234, got %d", cfg.Seed)
	}
	if cfg.ResponseDelayMinMs != 10 || cfg.ResponseDelayMaxMs != 20 {
		t.Errorf("Expected delay 10-20ms, got %d-%d", cfg.ResponseDelayMinMs, cfg.ResponseDelayMaxMs)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)
	t.Setenv("DEMOCHAT_LOG_FORMAT", "")
	os.Unsetenv("DEMOCHAT_LOG_FORMAT")

	if err := os.WriteFile(filepath.Join(workDir, ".env"), []byte("DEMOCHAT_LOG_FORMAT=text\n"), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.LogFormat != "text" {
		t.Errorf("Expected log format from .env, got %q", cfg.LogFormat)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero max length", func(c *Config) { c.MaxMessageLength = 0 }, true},
		{"negative min delay", func(c *Config) { c.ResponseDelayMinMs = -1 }, true},
		{"max below min", func(c *Config) { c.ResponseDelayMinMs = 2000; c.ResponseDelayMaxMs = 1000 }, true},
		{"equal delays", func(c *Config) { c.ResponseDelayMinMs = 1500; c.ResponseDelayMaxMs = 1500 }, false},
		{"negative action delay", func(c *Config) { c.ActionDelayMs = -5 }, true},
		{"zero action delay", func(c *Config) { c.ActionDelayMs = 0 }, true},
		{"zero notice timeout", func(c *Config) { c.NoticeTimeoutSeconds = 0 }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"text log format", func(c *Config) { c.LogFormat = "TEXT" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("Expected config.json, got %q", path)
	}
	if filepath.Base(filepath.Dir(path)) != ".demochat" {
		t.Errorf("Expected .demochat directory, got %q", path)
	}
}
