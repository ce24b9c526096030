// File: add.go
// Title: Goal and Habit Creation Parsers
// Description: Parses the "set" (add goal) and "habit" (add habit) commands.
//              Goal creation takes a name, an optional type, an optional
//              start date defaulting to today and a required end date. Habit
//              creation accepts interval zero for one-off habits; only
//              interval updates insist on a positive value.
// Version: v0.1.0
// Created: 2025-08-31

package parser

import (
	hberror "github.com/happybit/happybit/core/error"
	hbcommand "github.com/happybit/happybit/hcol/command"
	"github.com/happybit/happybit/utils/timex"
)

// parseAddGoal parses "set n/NAME [t/TYPE] [s/DDMMYYYY] e/DDMMYYYY"
func (p *Parser) parseAddGoal(args string) (hbcommand.Command, error) {
	tokens, err := checkArgs(args)
	if err != nil {
		return nil, err
	}
	if !hasOnlyFlags(tokens, FlagName, FlagGoalType, FlagStartDate, FlagEndDate) {
		return nil, errExcessFlags("set", FlagName, FlagGoalType, FlagStartDate, FlagEndDate)
	}

	name, err := getName(tokens)
	if err != nil {
		return nil, err
	}
	goalType, err := getType(tokens)
	if err != nil {
		return nil, err
	}
	end, err := getDate(tokens, FlagEndDate)
	if err != nil {
		return nil, err
	}

	start := timex.Today()
	if hasFlag(tokens, FlagStartDate) {
		start, err = getDate(tokens, FlagStartDate)
		if err != nil {
			return nil, err
		}
	}
	if end.Before(start) {
		return nil, hberror.Newf("The end date %s is before the start date %s",
			timex.FormatCompactDate(end), timex.FormatCompactDate(start)).
			WithCode(hberror.CodeInvalidInput)
	}

	return hbcommand.AddGoal{
		Name:  name,
		Type:  goalType,
		Start: start,
		End:   end,
	}, nil
}

// parseAddHabit parses "habit g/GOAL n/NAME i/INTERVAL". Interval zero is
// accepted here; a habit with no recurrence is due only once.
func (p *Parser) parseAddHabit(args string) (hbcommand.Command, error) {
	tokens, err := checkArgs(args)
	if err != nil {
		return nil, err
	}
	if !hasOnlyFlags(tokens, FlagGoalIndex, FlagName, FlagInterval) {
		return nil, errExcessFlags("habit", FlagGoalIndex, FlagName, FlagInterval)
	}

	goalIndex, err := getIndex(tokens, FlagGoalIndex)
	if err != nil {
		return nil, err
	}
	name, err := getName(tokens)
	if err != nil {
		return nil, err
	}
	interval, err := getNumber(tokens, FlagInterval)
	if err != nil {
		return nil, err
	}

	return hbcommand.AddHabit{
		GoalIndex: goalIndex,
		Name:      name,
		Interval:  interval,
	}, nil
}
