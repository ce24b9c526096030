// File: doc.go
// Title: Package Documentation for core/config
// Description: Package-level documentation for configuration management.
// Version: v0.1.0
// Created: 2025-08-31

// Package config loads application configuration from TOML and YAML files.
//
// Keys use dot notation for nested tables, e.g. "storage.path". Environment
// variables prefixed with HAPPYBIT_ override file values: HAPPYBIT_STORAGE_PATH
// overrides "storage.path". All accessors take a fallback so callers never
// deal with missing keys.
package config
