// File: doc.go
// Title: Package Documentation for hcol/parser
// Description: Package-level documentation for the HCOL parsing pipeline.
// Version: v0.1.0
// Created: 2025-08-31

// Package parser implements parsing and validation of HCOL input lines.
//
// A line consists of a command keyword followed by flag-prefixed parameters
// of the form <letter>/<value>, e.g.:
//
//	set n/Sleep early t/sl e/31122021
//	change g/1 h/2 i/3
//
// Parsing proceeds in phases: tokenize splits the line at label boundaries,
// the flag extractor and shape classifiers decide which command variant the
// flag set matches, the field converters produce typed values, and a builder
// assembles the immutable command. Every failure carries a specific
// user-facing message; the first failing phase wins and nothing partial is
// returned.
//
// The parser holds no state between calls and the shared flag and label
// tables are never mutated after initialization, so one Parser may be used
// from multiple goroutines.
package parser
