// Package config loads and saves printfctl's engine-policy configuration:
// a nested struct of TOML sections, a DefaultConfig constructor, and
// platform-specific paths for the config file and logs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/lookbusy1344/go-printf/printf"
)

// Config represents printfctl's configuration.
type Config struct {
	// Engine settings: the format-engine policy choices left configurable
	// rather than hardwired.
	Engine struct {
		RetryShortWrites bool `toml:"retry_short_writes"`
		GrowableInitCap  int  `toml:"growable_init_cap"`
		FixedDefaultCap  int  `toml:"fixed_default_cap"`
	} `toml:"engine"`

	// CLI settings
	CLI struct {
		ColorOutput  bool   `toml:"color_output"`
		DefaultSink  string `toml:"default_sink"` // stdout, buffer, growable
		HistorySize  int    `toml:"history_size"`
	} `toml:"cli"`

	// Lint settings, named for tools/lint.go's static checks over a
	// template+arg-count pair. tools.Lint takes no configuration and
	// does not read them.
	Lint struct {
		WarnUnusedPositional bool `toml:"warn_unused_positional"`
		WarnRepeatedFlags    bool `toml:"warn_repeated_flags"`
	} `toml:"lint"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Engine.RetryShortWrites = false
	cfg.Engine.GrowableInitCap = 16
	cfg.Engine.FixedDefaultCap = 4096

	cfg.CLI.ColorOutput = true
	cfg.CLI.DefaultSink = "stdout"
	cfg.CLI.HistorySize = 1000

	cfg.Lint.WarnUnusedPositional = true
	cfg.Lint.WarnRepeatedFlags = true

	return cfg
}

// Policy converts the engine section into printf.Policy.
func (c *Config) Policy() printf.Policy {
	return printf.Policy{
		RetryShortWrites: c.Engine.RetryShortWrites,
		GrowableInitCap:  c.Engine.GrowableInitCap,
		FixedDefaultCap:  c.Engine.FixedDefaultCap,
	}
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "printfctl")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "printfctl")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path.
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "printfctl", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "printfctl", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
