// File: errors.go
// Title: HCOL Parse Error Messages
// Description: Defines the user-facing messages for every parse failure and
//              the constructors that tag them with error codes. Every
//              validation failure has its own specific message; the parser
//              never reports a bare "invalid input".
// Version: v0.1.0
// Created: 2025-08-31

package parser

import (
	"fmt"
	"strings"

	hberror "github.com/happybit/happybit/core/error"
	"github.com/happybit/happybit/internal/goal"
)

const (
	errNoParamsMessage = "Command cannot be called without parameters. " +
		"Enter the help command to view command formats"
	errNameFormatMessage     = "Use the 'n/' flag to define the name. Exp: n/Foo"
	errGoalTypeFormatMessage = "Use the 't/' flag to define the goal type. Exp: t/df"
	errMissingFlagFormat     = "The command is missing the '%s' flag"
	errConvertNumFormat      = "The flag '%s' has to be followed by a number"
	errNegativeNumFormat     = "The flag '%s' has to be followed by a positive integer"
	errZeroNumFormat         = "The flag '%s' has to be followed by a number greater than 0"
	errLongNameFormat        = "Use a description no more than %d characters (current: %d characters)"
	errDateFormatFormat      = "Use the '%s' flag to define the date. Exp: %s31122021"
	errNonDateMessage        = "Enter your date in the format DDMMYYYY"
	errUnknownCommandFormat  = "There is no '%s' command. Enter the help command to view command formats"

	errInvalidUpdateMessage = "There is no update command for goals in this format, " +
		"do check your parameters one more time. Do not include more or less parameters than necessary"
	errInvalidChangeMessage = "There is no change command for habits in this format, " +
		"do check your parameters one more time. Do not include more or less parameters than necessary"
	errRedirectFormat = "Are you perhaps trying to change a %s? Please use the '%s' command instead"

	errExcessFlagsFormat = "The %s command only takes the %s parameters. " +
		"Do not include more parameters than necessary"
)

// errNoParams is the failure for an absent command body
func errNoParams() error {
	return hberror.New(errNoParamsMessage).
		WithCode(hberror.CodeInvalidInput).
		WithOperation("parser.tokenize")
}

// errMissingName is the failure for an absent or empty name flag
func errMissingName() error {
	return hberror.New(errNameFormatMessage).
		WithCode(hberror.CodeMissingFlag).
		WithDetail("flag", FlagName)
}

// errEmptyGoalType is the failure for a type flag without a label
func errEmptyGoalType() error {
	return hberror.New(errGoalTypeFormatMessage).
		WithCode(hberror.CodeMissingFlag).
		WithDetail("flag", FlagGoalType)
}

// errMissingFlag is the failure for an absent numeric flag
func errMissingFlag(flag string) error {
	return hberror.Newf(errMissingFlagFormat, flag).
		WithCode(hberror.CodeMissingFlag).
		WithDetail("flag", flag)
}

// errNotANumber is the failure for a value that does not parse as an integer
func errNotANumber(flag string) error {
	return hberror.Newf(errConvertNumFormat, flag).
		WithCode(hberror.CodeNotANumber).
		WithDetail("flag", flag)
}

// errNegativeNumber is the failure for a negative integer value
func errNegativeNumber(flag string) error {
	return hberror.Newf(errNegativeNumFormat, flag).
		WithCode(hberror.CodeNegativeNumber).
		WithDetail("flag", flag)
}

// errZeroNumber is the failure for a zero value where a positive one is needed
func errZeroNumber(flag string) error {
	return hberror.Newf(errZeroNumFormat, flag).
		WithCode(hberror.CodeZeroNotAllowed).
		WithDetail("flag", flag)
}

// errNameTooLong is the failure for a name exceeding the length bound. The
// message carries the actual length.
func errNameTooLong(length int) error {
	return hberror.Newf(errLongNameFormat, maxNameLength, length).
		WithCode(hberror.CodeNameTooLong).
		WithDetail("length", length)
}

// errMissingDate is the failure for an absent or empty date flag
func errMissingDate(flag string) error {
	return hberror.Newf(errDateFormatFormat, flag, flag).
		WithCode(hberror.CodeMissingFlag).
		WithDetail("flag", flag)
}

// errNonDate is the failure for a value that does not parse as a strict
// DDMMYYYY date
func errNonDate(flag string) error {
	return hberror.New(errNonDateMessage).
		WithCode(hberror.CodeNonDate).
		WithDetail("flag", flag)
}

// errUnknownGoalType is the failure for a type label outside the closed set.
// The message enumerates every valid label.
func errUnknownGoalType(label string) error {
	quoted := make([]string, 0, len(goal.AllLabels()))
	for _, l := range goal.AllLabels() {
		quoted = append(quoted, "'"+l+"'")
	}
	return hberror.Newf("Use the following goal types: %s", strings.Join(quoted, ", ")).
		WithCode(hberror.CodeUnknownGoalType).
		WithDetail("label", label)
}

// errUnknownCommand is the failure for an unrecognized command keyword
func errUnknownCommand(keyword string) error {
	return hberror.Newf(errUnknownCommandFormat, keyword).
		WithCode(hberror.CodeUnknownCommand).
		WithDetail("keyword", keyword)
}

// errInvalidUpdateShape is the fallback when no update-family classifier and
// no sibling shape matched
func errInvalidUpdateShape() error {
	return hberror.New(errInvalidUpdateMessage).
		WithCode(hberror.CodeInvalidCommandShape)
}

// errInvalidChangeShape is the fallback for the change family
func errInvalidChangeShape() error {
	return hberror.New(errInvalidChangeMessage).
		WithCode(hberror.CodeInvalidCommandShape)
}

// errWrongFamily is the targeted redirect when the flag set matches a
// sibling command family
func errWrongFamily(what, rightCommand string) error {
	return hberror.Newf(errRedirectFormat, what, rightCommand).
		WithCode(hberror.CodeWrongCommandFamily).
		WithDetail("command", rightCommand)
}

// errExcessFlags is the failure for extra parameters on a fixed-shape command
func errExcessFlags(keyword string, allowed ...string) error {
	quoted := make([]string, 0, len(allowed))
	for _, flag := range allowed {
		quoted = append(quoted, "'"+flag+"'")
	}
	return hberror.New(fmt.Sprintf(errExcessFlagsFormat, keyword, strings.Join(quoted, ", "))).
		WithCode(hberror.CodeInvalidCommandShape).
		WithDetail("keyword", keyword)
}
