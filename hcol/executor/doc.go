// File: doc.go
// Title: Package Documentation for hcol/executor
// Description: Package-level documentation for the command execution engine.
// Version: v0.1.0
// Created: 2025-08-31

// Package executor applies validated HCOL commands to the goal list.
//
// The engine owns the list for the lifetime of a session and serializes all
// command execution. When a Store is configured with auto-save, every
// mutating command is persisted before its result is returned, so a success
// reported to the user is always durable.
package executor
