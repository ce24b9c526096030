// File: config_test.go
// Title: Configuration Tests
// Description: Tests for TOML and YAML loading, dot-notation lookup,
//              defaults, typed accessors and environment overrides.
// Version: v0.1.0
// Created: 2025-08-31

package config

import (
	"os"
	"path/filepath"
	"testing"

	hberror "github.com/happybit/happybit/core/error"
)

const tomlContent = `
log_level = "debug"

[storage]
path = "/tmp/test.db"
auto_save = true

[parser]
max_input_length = 2048
`

const yamlContent = `
log_level: debug
storage:
  path: /tmp/test.db
  auto_save: true
parser:
  max_input_length: 2048
`

func TestLoadFromString_TOML(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	if got := cfg.GetString("log_level", ""); got != "debug" {
		t.Errorf("log_level = %q, want debug", got)
	}
	if got := cfg.GetString("storage.path", ""); got != "/tmp/test.db" {
		t.Errorf("storage.path = %q", got)
	}
	if !cfg.GetBool("storage.auto_save", false) {
		t.Error("storage.auto_save should be true")
	}
	if got := cfg.GetInt("parser.max_input_length", 0); got != 2048 {
		t.Errorf("parser.max_input_length = %d, want 2048", got)
	}
}

func TestLoadFromString_YAML(t *testing.T) {
	cfg, err := LoadFromString(yamlContent, FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	if got := cfg.GetString("storage.path", ""); got != "/tmp/test.db" {
		t.Errorf("storage.path = %q", got)
	}
	if got := cfg.GetInt("parser.max_input_length", 0); got != 2048 {
		t.Errorf("parser.max_input_length = %d, want 2048", got)
	}
}

func TestLoad_FormatDetection(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlContent), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{tomlPath, yamlPath} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", path, err)
		}
		if got := cfg.GetString("log_level", ""); got != "debug" {
			t.Errorf("Load(%s): log_level = %q", path, got)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if hberror.CodeOf(err) != hberror.CodeNotFound {
		t.Errorf("Expected CodeNotFound, got %v", err)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	if hberror.CodeOf(err) != hberror.CodeMissingConfig {
		t.Errorf("Expected CodeMissingConfig, got %v", err)
	}
}

func TestLoadFromString_Malformed(t *testing.T) {
	_, err := LoadFromString("= not toml =", FormatTOML)
	if hberror.CodeOf(err) != hberror.CodeInvalidConfig {
		t.Errorf("Expected CodeInvalidConfig, got %v", err)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadFromString(`log_level = "info"`, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("Missing key should return fallback, got %q", got)
	}

	withDefaults, err := LoadFromString(`log_level = "info"`, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	withDefaults.data = mergeDefaults(withDefaults.data, map[string]interface{}{
		"log_level": "debug",
		"storage": map[string]interface{}{
			"path": "./data/happybit.db",
		},
	})

	// File values win over defaults; missing nested keys are filled in
	if got := withDefaults.GetString("log_level", ""); got != "info" {
		t.Errorf("File value should win over default, got %q", got)
	}
	if got := withDefaults.GetString("storage.path", ""); got != "./data/happybit.db" {
		t.Errorf("Default nested key not applied, got %q", got)
	}
}

func TestNewFromDefaults(t *testing.T) {
	cfg := NewFromDefaults(map[string]interface{}{
		"storage": map[string]interface{}{
			"auto_save": true,
		},
	})
	if !cfg.GetBool("storage.auto_save", false) {
		t.Error("Default not visible through accessor")
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("HAPPYBIT_STORAGE_PATH", "/env/override.db")
	if got := cfg.GetString("storage.path", ""); got != "/env/override.db" {
		t.Errorf("Environment should override file value, got %q", got)
	}

	t.Setenv("HAPPYBIT_PARSER_MAX_INPUT_LENGTH", "4096")
	if got := cfg.GetInt("parser.max_input_length", 0); got != 4096 {
		t.Errorf("Environment int override not applied, got %d", got)
	}
}

func TestGetInt_Conversions(t *testing.T) {
	cfg, err := LoadFromString("count: 7", FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.GetInt("count", 0); got != 7 {
		t.Errorf("count = %d, want 7", got)
	}

	// Wrong-typed values fall back
	cfg, err = LoadFromString(`name = "seven"`, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.GetInt("name", 42); got != 42 {
		t.Errorf("Non-numeric string should fall back, got %d", got)
	}
}
