package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Engine.RetryShortWrites {
		t.Error("Expected RetryShortWrites=false by default")
	}
	if cfg.Engine.GrowableInitCap != 16 {
		t.Errorf("Expected GrowableInitCap=16, got %d", cfg.Engine.GrowableInitCap)
	}
	if cfg.Engine.FixedDefaultCap != 4096 {
		t.Errorf("Expected FixedDefaultCap=4096, got %d", cfg.Engine.FixedDefaultCap)
	}

	if cfg.CLI.DefaultSink != "stdout" {
		t.Errorf("Expected DefaultSink=stdout, got %s", cfg.CLI.DefaultSink)
	}
	if !cfg.CLI.ColorOutput {
		t.Error("Expected ColorOutput=true")
	}

	if !cfg.Lint.WarnUnusedPositional {
		t.Error("Expected WarnUnusedPositional=true")
	}
}

func TestPolicyConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.RetryShortWrites = true
	p := cfg.Policy()
	if !p.RetryShortWrites {
		t.Error("expected Policy().RetryShortWrites to mirror Engine.RetryShortWrites")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "printfctl" && path != "config.toml" {
			t.Errorf("Expected path in printfctl directory or fallback, got %s", path)
		}
	}
}

func TestGetLogPath(t *testing.T) {
	path := GetLogPath()
	if path == "" {
		t.Error("GetLogPath returned empty string")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Engine.RetryShortWrites = true
	cfg.Engine.GrowableInitCap = 32
	cfg.CLI.HistorySize = 500
	cfg.CLI.ColorOutput = false

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !loaded.Engine.RetryShortWrites {
		t.Error("Expected RetryShortWrites=true")
	}
	if loaded.Engine.GrowableInitCap != 32 {
		t.Errorf("Expected GrowableInitCap=32, got %d", loaded.Engine.GrowableInitCap)
	}
	if loaded.CLI.HistorySize != 500 {
		t.Errorf("Expected HistorySize=500, got %d", loaded.CLI.HistorySize)
	}
	if loaded.CLI.ColorOutput {
		t.Error("Expected ColorOutput=false")
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}
	if cfg.Engine.FixedDefaultCap != 4096 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[engine]
growable_init_cap = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}
