// File: config.go
// Title: Configuration Management
// Description: Loads application configuration from TOML and YAML files with
//              environment variable overrides and typed accessors using dot
//              notation for nested keys.
// Version: v0.1.0
// Created: 2025-08-31

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	hberror "github.com/happybit/happybit/core/error"
	"github.com/happybit/happybit/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// EnvPrefix is the prefix for environment variable overrides. A key such as
// "storage.path" is overridden by HAPPYBIT_STORAGE_PATH.
const EnvPrefix = "HAPPYBIT_"

// Config provides thread-safe access to configuration data
type Config struct {
	mu       sync.RWMutex
	data     map[string]interface{}
	filePath string
	format   Format
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format   Format
	Defaults map[string]interface{}
}

// Load loads configuration from a file, detecting the format from the
// extension
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, hberror.New("config file path cannot be empty").
			WithCode(hberror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, hberror.Newf("config file not found: %s", filePath).
			WithCode(hberror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, hberror.Wrap(err, "failed to read config file").
			WithCode(hberror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, hberror.Wrap(err, "failed to parse config file").
			WithCode(hberror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:     data,
		filePath: filePath,
		format:   format,
	}, nil
}

// LoadFromString loads configuration from a string with the given format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, hberror.Wrap(err, "failed to parse config from string").
			WithCode(hberror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

// NewFromDefaults creates a configuration from defaults only, for running
// without a config file
func NewFromDefaults(defaults map[string]interface{}) *Config {
	data := make(map[string]interface{})
	return &Config{data: mergeDefaults(data, defaults), format: FormatTOML}
}

// detectFormat determines the configuration format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, hberror.Newf("unsupported config format: %s", format)
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults fills missing top-level and nested keys from the defaults
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	for key, defaultValue := range defaults {
		existing, ok := data[key]
		if !ok {
			data[key] = defaultValue
			continue
		}
		existingMap, existingIsMap := existing.(map[string]interface{})
		defaultMap, defaultIsMap := defaultValue.(map[string]interface{})
		if existingIsMap && defaultIsMap {
			data[key] = mergeDefaults(existingMap, defaultMap)
		}
	}
	return data
}

// lookup resolves a dot-notation key. Environment variables take precedence
// over file values.
func (c *Config) lookup(key string) (interface{}, bool) {
	if value, ok := lookupEnv(key); ok {
		return value, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := strings.Split(key, ".")
	current := interface{}(c.data)
	for _, part := range parts {
		asMap, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = asMap[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// lookupEnv checks for an environment variable override of the key
func lookupEnv(key string) (string, bool) {
	envKey := EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.LookupEnv(envKey)
}

// GetString returns the string value for the key, or the fallback
func (c *Config) GetString(key, fallback string) string {
	value, ok := c.lookup(key)
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case string:
		return v
	default:
		return fallback
	}
}

// GetInt returns the integer value for the key, or the fallback
func (c *Config) GetInt(key string, fallback int) int {
	value, ok := c.lookup(key)
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetBool returns the boolean value for the key, or the fallback
func (c *Config) GetBool(key string, fallback bool) bool {
	value, ok := c.lookup(key)
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// Has reports whether the key is present in the configuration or overridden
// by the environment
func (c *Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// FilePath returns the path the configuration was loaded from, if any
func (c *Config) FilePath() string {
	return c.filePath
}
