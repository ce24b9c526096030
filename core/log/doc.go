// File: doc.go
// Title: Package Documentation for core/log
// Description: Package-level documentation for the structured logging package.
// Version: v0.1.0
// Created: 2025-08-31

// Package log provides structured logging for Ha(ppy)Bit.
//
// Loggers are immutable: WithField, WithLevel and friends return clones, so
// a package can derive a named logger once and share it safely:
//
//	logger := log.GetDefault().WithField("component", "hcol-parser")
//	logger.Debug("parsing input", log.Fields{"length": len(line)})
//
// Output defaults to stderr so log lines never mix with the command results
// written to stdout by the console formatter.
package log
