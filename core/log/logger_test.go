// File: logger_test.go
// Title: Core Logger Unit Tests
// Description: Tests for logger configuration, level filtering, contextual
//              fields and output formatting.
// Version: v0.1.0
// Created: 2025-08-31

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("Messages below warn level should be filtered, got: %s", output)
	}
	if !strings.Contains(output, "warn message") || !strings.Contains(output, "error message") {
		t.Errorf("Warn and error messages should be logged, got: %s", output)
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
		Name:   "test-logger",
	})

	logger.Info("hello", Fields{"count": 3})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if entry["message"] != "hello" {
		t.Errorf("Expected message 'hello', got %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("Expected level 'info', got %v", entry["level"])
	}
	if entry["logger"] != "test-logger" {
		t.Errorf("Expected logger 'test-logger', got %v", entry["logger"])
	}
	if entry["count"] != float64(3) {
		t.Errorf("Expected count 3, got %v", entry["count"])
	}
}

func TestLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	derived := base.WithField("component", "parser")
	derived.Info("derived message")

	if !strings.Contains(buf.String(), `"component":"parser"`) {
		t.Errorf("Derived logger should carry context field, got: %s", buf.String())
	}

	// Base logger must not be affected by the derived clone
	buf.Reset()
	base.Info("base message")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("Base logger should not carry derived fields, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"err", LevelError, false},
		{"bogus", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("console"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestTextFormatter_SortedFields(t *testing.T) {
	formatter := NewTextFormatter()
	entry := NewEntry(LevelInfo, "msg").WithFields(Fields{"b": 2, "a": 1})

	out, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	s := string(out)
	if strings.Index(s, "a=1") > strings.Index(s, "b=2") {
		t.Errorf("Fields should be sorted by key, got: %s", s)
	}
}
