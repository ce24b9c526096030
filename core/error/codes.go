// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the Ha(ppy)Bit application. Codes enable
//              structured error handling, targeted user messages, and tests
//              that assert on failure categories instead of message text.
// Version: v0.1.0
// Created: 2025-08-31

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the Ha(ppy)Bit application
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Command parsing
	CodeMissingFlag         Code = "MISSING_FLAG"
	CodeNotANumber          Code = "NOT_A_NUMBER"
	CodeNegativeNumber      Code = "NEGATIVE_NUMBER"
	CodeZeroNotAllowed      Code = "ZERO_NOT_ALLOWED"
	CodeNameTooLong         Code = "NAME_TOO_LONG"
	CodeNonDate             Code = "NON_DATE"
	CodeUnknownGoalType     Code = "UNKNOWN_GOAL_TYPE"
	CodeWrongCommandFamily  Code = "WRONG_COMMAND_FAMILY"
	CodeInvalidCommandShape Code = "INVALID_COMMAND_SHAPE"
	CodeUnknownCommand      Code = "UNKNOWN_COMMAND"

	// Execution and storage
	CodeInvalidOperation Code = "INVALID_OPERATION"
	CodeDatabaseError    Code = "DATABASE_ERROR"
	CodeDataCorruption   Code = "DATA_CORRUPTION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeMissingFlag, CodeNotANumber, CodeNegativeNumber, CodeZeroNotAllowed,
		CodeNameTooLong, CodeNonDate, CodeUnknownGoalType,
		CodeWrongCommandFamily, CodeInvalidCommandShape, CodeUnknownCommand,
		CodeInvalidOperation, CodeDatabaseError, CodeDataCorruption,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMissingFlag, CodeNotANumber, CodeNegativeNumber, CodeZeroNotAllowed,
		CodeNameTooLong, CodeNonDate, CodeUnknownGoalType,
		CodeWrongCommandFamily, CodeInvalidCommandShape, CodeUnknownCommand:
		return "parse"
	case CodeInvalidOperation:
		return "execution"
	case CodeDatabaseError, CodeDataCorruption:
		return "storage"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsUserError returns true for codes caused by user input rather than the
// system. User errors are reported to the console and never terminate the
// process.
func (c Code) IsUserError() bool {
	return c.Category() == "parse" || c == CodeInvalidOperation || c == CodeInvalidInput
}
