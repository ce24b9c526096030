// File: update.go
// Title: Update and Change Command Classifiers
// Description: Disambiguates the overlapping flag vocabularies of the
//              "update" (goal attribute) and "change" (habit attribute)
//              families. Each family is an ordered list of predicate/builder
//              pairs; the first matching predicate wins. When the input
//              matches a sibling family instead, the error redirects the
//              user to the right command rather than failing generically.
// Version: v0.1.0
// Created: 2025-08-31

package parser

import (
	hbcommand "github.com/happybit/happybit/hcol/command"
)

// variant pairs a shape predicate with the builder invoked when it matches
type variant struct {
	matches func(tokens []Token) bool
	build   func(p *Parser, tokens []Token) (hbcommand.Command, error)
}

// redirect pairs a sibling-family predicate with the targeted error raised
// when the user picked the wrong command keyword
type redirect struct {
	matches func(tokens []Token) bool
	what    string
	command string
}

// The update family: goal attributes. Predicates require the exact flag set
// of one variant, so they are mutually exclusive by construction.
var updateVariants = []variant{
	{isUpdateGoalName, (*Parser).parseUpdateGoalName},
	{isUpdateGoalType, (*Parser).parseUpdateGoalType},
	{isUpdateGoalEndDate, (*Parser).parseUpdateGoalEndDate},
}

var updateRedirects = []redirect{
	{isChangeHabitName, "habit name", "change"},
	{isChangeHabitInterval, "habit interval", "change"},
}

// The change family: habit attributes.
var changeVariants = []variant{
	{isChangeHabitName, (*Parser).parseUpdateHabitName},
	{isChangeHabitInterval, (*Parser).parseUpdateHabitInterval},
}

var changeRedirects = []redirect{
	{isUpdateGoalName, "goal name", "update"},
	{isUpdateGoalType, "goal type", "update"},
	{isUpdateGoalEndDate, "goal end date", "update"},
}

// parseUpdateGoal classifies and parses "update" commands
func (p *Parser) parseUpdateGoal(args string) (hbcommand.Command, error) {
	return p.classify(args, updateVariants, updateRedirects, errInvalidUpdateShape)
}

// parseUpdateHabit classifies and parses "change" commands
func (p *Parser) parseUpdateHabit(args string) (hbcommand.Command, error) {
	return p.classify(args, changeVariants, changeRedirects, errInvalidChangeShape)
}

// classify evaluates a family's variants in order, then its sibling
// redirects, then the family's generic shape error
func (p *Parser) classify(args string, variants []variant, redirects []redirect, fallback func() error) (hbcommand.Command, error) {
	tokens, err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	for _, v := range variants {
		if v.matches(tokens) {
			return v.build(p, tokens)
		}
	}
	for _, r := range redirects {
		if r.matches(tokens) {
			return nil, errWrongFamily(r.what, r.command)
		}
	}
	return nil, fallback()
}

// Shape predicates. A shape matches when its required flags are present and
// no flag outside the shape appears in the input.

func isUpdateGoalName(tokens []Token) bool {
	return hasFlag(tokens, FlagGoalIndex) && hasFlag(tokens, FlagName) &&
		hasOnlyFlags(tokens, FlagGoalIndex, FlagName)
}

func isUpdateGoalType(tokens []Token) bool {
	return hasFlag(tokens, FlagGoalIndex) && hasFlag(tokens, FlagGoalType) &&
		hasOnlyFlags(tokens, FlagGoalIndex, FlagGoalType)
}

func isUpdateGoalEndDate(tokens []Token) bool {
	return hasFlag(tokens, FlagGoalIndex) && hasFlag(tokens, FlagEndDate) &&
		hasOnlyFlags(tokens, FlagGoalIndex, FlagEndDate)
}

func isChangeHabitName(tokens []Token) bool {
	return hasFlag(tokens, FlagGoalIndex) && hasFlag(tokens, FlagHabitIndex) &&
		hasFlag(tokens, FlagName) &&
		hasOnlyFlags(tokens, FlagGoalIndex, FlagHabitIndex, FlagName)
}

func isChangeHabitInterval(tokens []Token) bool {
	return hasFlag(tokens, FlagGoalIndex) && hasFlag(tokens, FlagHabitIndex) &&
		hasFlag(tokens, FlagInterval) &&
		hasOnlyFlags(tokens, FlagGoalIndex, FlagHabitIndex, FlagInterval)
}

// Variant builders. By the time a builder runs, the shape predicate has
// matched; the converters still validate every field value.

func (p *Parser) parseUpdateGoalName(tokens []Token) (hbcommand.Command, error) {
	goalIndex, err := getIndex(tokens, FlagGoalIndex)
	if err != nil {
		return nil, err
	}
	name, err := getName(tokens)
	if err != nil {
		return nil, err
	}
	return hbcommand.UpdateGoalName{GoalIndex: goalIndex, Name: name}, nil
}

func (p *Parser) parseUpdateGoalType(tokens []Token) (hbcommand.Command, error) {
	goalIndex, err := getIndex(tokens, FlagGoalIndex)
	if err != nil {
		return nil, err
	}
	goalType, err := getType(tokens)
	if err != nil {
		return nil, err
	}
	return hbcommand.UpdateGoalType{GoalIndex: goalIndex, Type: goalType}, nil
}

func (p *Parser) parseUpdateGoalEndDate(tokens []Token) (hbcommand.Command, error) {
	goalIndex, err := getIndex(tokens, FlagGoalIndex)
	if err != nil {
		return nil, err
	}
	end, err := getDate(tokens, FlagEndDate)
	if err != nil {
		return nil, err
	}
	return hbcommand.UpdateGoalEndDate{GoalIndex: goalIndex, End: end}, nil
}

func (p *Parser) parseUpdateHabitName(tokens []Token) (hbcommand.Command, error) {
	goalIndex, err := getIndex(tokens, FlagGoalIndex)
	if err != nil {
		return nil, err
	}
	habitIndex, err := getIndex(tokens, FlagHabitIndex)
	if err != nil {
		return nil, err
	}
	name, err := getName(tokens)
	if err != nil {
		return nil, err
	}
	return hbcommand.UpdateHabitName{GoalIndex: goalIndex, HabitIndex: habitIndex, Name: name}, nil
}

func (p *Parser) parseUpdateHabitInterval(tokens []Token) (hbcommand.Command, error) {
	goalIndex, err := getIndex(tokens, FlagGoalIndex)
	if err != nil {
		return nil, err
	}
	habitIndex, err := getIndex(tokens, FlagHabitIndex)
	if err != nil {
		return nil, err
	}
	interval, err := getUpdateInterval(tokens, FlagInterval)
	if err != nil {
		return nil, err
	}
	return hbcommand.UpdateHabitInterval{GoalIndex: goalIndex, HabitIndex: habitIndex, Interval: interval}, nil
}
