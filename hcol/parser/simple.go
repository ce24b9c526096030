// File: simple.go
// Title: Single-Shape Command Parsers
// Description: Parses the command families with exactly one flag shape:
//              deleting goals and habits, logging progress and viewing the
//              habits of a goal.
// Version: v0.1.0
// Created: 2025-08-31

package parser

import (
	hbcommand "github.com/happybit/happybit/hcol/command"
)

// parseDeleteGoal parses "remove g/GOAL"
func (p *Parser) parseDeleteGoal(args string) (hbcommand.Command, error) {
	tokens, err := checkArgs(args)
	if err != nil {
		return nil, err
	}
	if !hasOnlyFlags(tokens, FlagGoalIndex) {
		return nil, errExcessFlags("remove", FlagGoalIndex)
	}

	goalIndex, err := getIndex(tokens, FlagGoalIndex)
	if err != nil {
		return nil, err
	}
	return hbcommand.DeleteGoal{GoalIndex: goalIndex}, nil
}

// parseDeleteHabit parses "delete g/GOAL h/HABIT"
func (p *Parser) parseDeleteHabit(args string) (hbcommand.Command, error) {
	goalIndex, habitIndex, err := p.goalHabitIndices(args, "delete")
	if err != nil {
		return nil, err
	}
	return hbcommand.DeleteHabit{GoalIndex: goalIndex, HabitIndex: habitIndex}, nil
}

// parseDone parses "done g/GOAL h/HABIT"
func (p *Parser) parseDone(args string) (hbcommand.Command, error) {
	goalIndex, habitIndex, err := p.goalHabitIndices(args, "done")
	if err != nil {
		return nil, err
	}
	return hbcommand.LogProgress{GoalIndex: goalIndex, HabitIndex: habitIndex}, nil
}

// parseListHabits parses "view g/GOAL"
func (p *Parser) parseListHabits(args string) (hbcommand.Command, error) {
	tokens, err := checkArgs(args)
	if err != nil {
		return nil, err
	}
	if !hasOnlyFlags(tokens, FlagGoalIndex) {
		return nil, errExcessFlags("view", FlagGoalIndex)
	}

	goalIndex, err := getIndex(tokens, FlagGoalIndex)
	if err != nil {
		return nil, err
	}
	return hbcommand.ListHabits{GoalIndex: goalIndex}, nil
}

// goalHabitIndices extracts the g/ and h/ indices shared by the delete and
// done shapes
func (p *Parser) goalHabitIndices(args, keyword string) (int, int, error) {
	tokens, err := checkArgs(args)
	if err != nil {
		return 0, 0, err
	}
	if !hasOnlyFlags(tokens, FlagGoalIndex, FlagHabitIndex) {
		return 0, 0, errExcessFlags(keyword, FlagGoalIndex, FlagHabitIndex)
	}

	goalIndex, err := getIndex(tokens, FlagGoalIndex)
	if err != nil {
		return 0, 0, err
	}
	habitIndex, err := getIndex(tokens, FlagHabitIndex)
	if err != nil {
		return 0, 0, err
	}
	return goalIndex, habitIndex, nil
}
