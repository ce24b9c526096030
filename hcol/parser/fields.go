// File: fields.go
// Title: HCOL Field Converters
// Description: Type-specific conversion and validation of flag values:
//              length-bounded names, non-negative integers, one-based
//              indices, positive update intervals, strict dates and
//              enumerated goal types. Converters fail fast with a specific
//              error; no partial values escape.
// Version: v0.1.0
// Created: 2025-08-31

package parser

import (
	"strconv"
	"time"

	"github.com/happybit/happybit/internal/goal"
	"github.com/happybit/happybit/utils/stringx"
	"github.com/happybit/happybit/utils/timex"
)

// maxNameLength bounds goal and habit descriptions
const maxNameLength = 50

// getName extracts the n/ value. The name must be present, non-empty after
// trimming and at most 50 characters.
func getName(tokens []Token) (string, error) {
	token, ok := findToken(tokens, FlagName)
	if !ok || stringx.IsEmpty(token.Value) {
		return "", errMissingName()
	}
	if length := stringx.Length(token.Value); length > maxNameLength {
		return "", errNameTooLong(length)
	}
	return token.Value, nil
}

// getNumber extracts a non-negative integer from the given flag. Zero is a
// legal value; negative numbers and non-numeric text are not.
func getNumber(tokens []Token, flag string) (int, error) {
	token, ok := findToken(tokens, flag)
	if !ok || stringx.IsEmpty(token.Value) {
		return 0, errMissingFlag(flag)
	}
	number, err := strconv.Atoi(token.Value)
	if err != nil {
		return 0, errNotANumber(flag)
	}
	if number < 0 {
		return 0, errNegativeNumber(flag)
	}
	return number, nil
}

// getIndex extracts a one-based index from the given flag and converts it to
// zero-based. Zero is rejected: there is no 0th goal or habit.
func getIndex(tokens []Token, flag string) (int, error) {
	number, err := getNumber(tokens, flag)
	if err != nil {
		return 0, err
	}
	if number == 0 {
		return 0, errZeroNumber(flag)
	}
	return number - 1, nil
}

// getUpdateInterval extracts a positive interval from the given flag. Unlike
// habit creation, where interval 0 means a one-off habit, an interval update
// must be positive.
func getUpdateInterval(tokens []Token, flag string) (int, error) {
	interval, err := getNumber(tokens, flag)
	if err != nil {
		return 0, err
	}
	if interval == 0 {
		return 0, errZeroNumber(flag)
	}
	return interval, nil
}

// getDate extracts a strict DDMMYYYY date from the given flag. Out-of-range
// components fail; they are never rolled over into a valid date.
func getDate(tokens []Token, flag string) (time.Time, error) {
	token, ok := findToken(tokens, flag)
	if !ok || stringx.IsEmpty(token.Value) {
		return time.Time{}, errMissingDate(flag)
	}
	date, err := timex.ParseCompactDate(token.Value)
	if err != nil {
		return time.Time{}, errNonDate(flag)
	}
	return date, nil
}

// getType extracts the goal type from the t/ flag. The flag is optional: an
// absent flag yields the default type. A present flag must carry one of the
// closed set of labels.
func getType(tokens []Token) (goal.Type, error) {
	token, ok := findToken(tokens, FlagGoalType)
	if !ok {
		return goal.TypeDefault, nil
	}
	if stringx.IsEmpty(token.Value) {
		return goal.TypeDefault, errEmptyGoalType()
	}
	goalType, ok := goal.ParseLabel(token.Value)
	if !ok {
		return goal.TypeDefault, errUnknownGoalType(token.Value)
	}
	return goalType, nil
}
