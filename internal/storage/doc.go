// File: doc.go
// Title: Package Documentation for internal/storage
// Description: Package-level documentation for goal list persistence.
// Version: v0.1.0
// Created: 2025-08-31

// Package storage persists the goal list.
//
// The SQLite store is the session database; the export functions produce the
// plain-text exchange format and a YAML snapshot for backup and inspection.
package storage
