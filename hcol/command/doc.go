// File: doc.go
// Title: Package Documentation for hcol/command
// Description: Package-level documentation for the command variant types.
// Version: v0.1.0
// Created: 2025-08-31

// Package command defines the output artifacts of the HCOL parser.
//
// Each variant corresponds 1:1 to one user intent (add a goal, rename a
// habit, log progress). Variants carry only validated, typed payload fields:
// indices are zero-based and non-negative, names are 1-50 characters, dates
// are calendar dates without a time component. Construction happens only in
// the parser's builders after every converter has succeeded, so an executor
// receiving a Command never has to re-validate its fields.
package command
