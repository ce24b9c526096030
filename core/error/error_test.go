// File: error_test.go
// Title: Core Error Unit Tests
// Description: Tests for error construction, wrapping, code propagation and
//              user message extraction.
// Version: v0.1.0
// Created: 2025-08-31

package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Expected 'something failed', got %q", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Expected CodeUnknown, got %s", err.Code())
	}
}

func TestWithCode(t *testing.T) {
	err := New("missing flag").WithCode(CodeMissingFlag)

	if err.Code() != CodeMissingFlag {
		t.Errorf("Expected CodeMissingFlag, got %s", err.Code())
	}
	if !HasCode(err, CodeMissingFlag) {
		t.Error("HasCode should report CodeMissingFlag")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantCode Code
		wantMsg  string
	}{
		{
			name:    "nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:     "standard error",
			err:      errors.New("root cause"),
			message:  "context",
			wantCode: CodeUnknown,
			wantMsg:  "context: root cause",
		},
		{
			name:     "preserves code",
			err:      New("bad date").WithCode(CodeNonDate),
			message:  "parse failed",
			wantCode: CodeNonDate,
			wantMsg:  "parse failed: bad date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Fatalf("Expected nil, got %v", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Expected %q, got %q", tt.wantMsg, wrapped.Error())
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Expected code %s, got %s", tt.wantCode, wrapped.Code())
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("Wrapped error should match the cause via errors.Is")
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(nil) != CodeUnknown {
		t.Error("CodeOf(nil) should be CodeUnknown")
	}
	if CodeOf(errors.New("plain")) != CodeUnknown {
		t.Error("CodeOf(plain error) should be CodeUnknown")
	}

	err := New("zero").WithCode(CodeZeroNotAllowed)
	if CodeOf(err) != CodeZeroNotAllowed {
		t.Errorf("Expected CodeZeroNotAllowed, got %s", CodeOf(err))
	}

	// Code survives wrapping by fmt.Errorf with %w
	wrapped := fmt.Errorf("outer: %w", err)
	if CodeOf(wrapped) != CodeZeroNotAllowed {
		t.Errorf("Expected CodeZeroNotAllowed through %%w chain, got %s", CodeOf(wrapped))
	}
}

func TestUserMessage(t *testing.T) {
	err := New("Use the 'n/' flag to define the name. Exp: n/Foo").
		WithCode(CodeMissingFlag)
	wrapped := Wrap(errors.New("io failure"), "could not save")

	if got := UserMessage(err); got != "Use the 'n/' flag to define the name. Exp: n/Foo" {
		t.Errorf("Unexpected user message: %q", got)
	}
	if got := UserMessage(wrapped); got != "could not save" {
		t.Errorf("User message should omit the cause chain, got %q", got)
	}
	if UserMessage(nil) != "" {
		t.Error("UserMessage(nil) should be empty")
	}
}

func TestWithDetail(t *testing.T) {
	err := New("too long").
		WithCode(CodeNameTooLong).
		WithDetail("length", 51).
		WithOperation("parser.getName")

	v, ok := err.Detail("length")
	if !ok || v != 51 {
		t.Errorf("Expected detail length=51, got %v (ok=%v)", v, ok)
	}
	if err.Operation() != "parser.getName" {
		t.Errorf("Unexpected operation: %s", err.Operation())
	}
}

func TestCodeCategories(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		user     bool
	}{
		{CodeMissingFlag, "parse", true},
		{CodeZeroNotAllowed, "parse", true},
		{CodeWrongCommandFamily, "parse", true},
		{CodeInvalidOperation, "execution", true},
		{CodeDatabaseError, "storage", false},
		{CodeInvalidConfig, "configuration", false},
		{CodeUnknown, "generic", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("Code %s should be valid", tt.code)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Expected category %s, got %s", tt.category, got)
			}
			if got := tt.code.IsUserError(); got != tt.user {
				t.Errorf("Expected IsUserError=%v, got %v", tt.user, got)
			}
		})
	}

	if Code("BOGUS").IsValid() {
		t.Error("Unknown code should not be valid")
	}
}
