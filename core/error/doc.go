// File: doc.go
// Title: Package Documentation for core/error
// Description: Package-level documentation for the structured error package.
// Version: v0.1.0
// Created: 2025-08-31

// Package error provides structured error handling for Ha(ppy)Bit.
//
// Errors carry a classification Code, an optional operation name and
// key-value details. The package is import-aliased by convention:
//
//	hberror "github.com/happybit/happybit/core/error"
//
//	err := hberror.New("the command is missing the 'g/' flag").
//		WithCode(hberror.CodeMissingFlag).
//		WithDetail("flag", "g/")
//
// Codes let callers branch on failure categories without matching message
// text, and IsUserError separates bad input (printed and discarded) from
// system faults.
package error
