// File: list.go
// Title: In-Memory Goal Collection
// Description: Implements the goal list the executor operates on. Lookup is
//              by zero-based index as produced by the parser's index
//              converters. Out-of-range access yields user errors that name
//              the command for inspecting the current state.
// Version: v0.1.0
// Created: 2025-08-31

package goal

import (
	"time"

	hberror "github.com/happybit/happybit/core/error"
	"github.com/happybit/happybit/utils/timex"
)

// List holds all tracked goals for one session
type List struct {
	goals []*Goal
}

// NewList creates an empty goal list
func NewList() *List {
	return &List{}
}

// Goals returns the goals in insertion order
func (l *List) Goals() []*Goal {
	return l.goals
}

// Len returns the number of goals
func (l *List) Len() int {
	return len(l.goals)
}

// Add appends a goal to the list
func (l *List) Add(g *Goal) {
	l.goals = append(l.goals, g)
}

// Goal returns the goal at the zero-based index
func (l *List) Goal(index int) (*Goal, error) {
	if index < 0 || index >= len(l.goals) {
		return nil, hberror.Newf("There is no goal at position %d. Enter the list command to view your goals", index+1).
			WithCode(hberror.CodeInvalidOperation).
			WithOperation("goal.List.Goal")
	}
	return l.goals[index], nil
}

// Habit returns the habit at the zero-based habit index of the given goal
func (l *List) Habit(goalIndex, habitIndex int) (*Habit, error) {
	g, err := l.Goal(goalIndex)
	if err != nil {
		return nil, err
	}
	if habitIndex < 0 || habitIndex >= len(g.Habits) {
		return nil, hberror.Newf("There is no habit at position %d for goal '%s'. Enter the view command to see its habits", habitIndex+1, g.Name).
			WithCode(hberror.CodeInvalidOperation).
			WithOperation("goal.List.Habit")
	}
	return g.Habits[habitIndex], nil
}

// Remove deletes the goal at the zero-based index and returns it
func (l *List) Remove(index int) (*Goal, error) {
	g, err := l.Goal(index)
	if err != nil {
		return nil, err
	}
	l.goals = append(l.goals[:index], l.goals[index+1:]...)
	return g, nil
}

// RemoveHabit deletes the habit at the zero-based habit index and returns it
func (l *List) RemoveHabit(goalIndex, habitIndex int) (*Habit, error) {
	g, err := l.Goal(goalIndex)
	if err != nil {
		return nil, err
	}
	h, err := l.Habit(goalIndex, habitIndex)
	if err != nil {
		return nil, err
	}
	g.Habits = append(g.Habits[:habitIndex], g.Habits[habitIndex+1:]...)
	return h, nil
}

// SetGoalName renames the goal at the index
func (l *List) SetGoalName(index int, name string) error {
	g, err := l.Goal(index)
	if err != nil {
		return err
	}
	g.Name = name
	return nil
}

// SetGoalType changes the type of the goal at the index
func (l *List) SetGoalType(index int, goalType Type) error {
	g, err := l.Goal(index)
	if err != nil {
		return err
	}
	g.Type = goalType
	return nil
}

// SetGoalEndDate changes the end date of the goal at the index. The new end
// date must not precede the goal's start date.
func (l *List) SetGoalEndDate(index int, end time.Time) error {
	g, err := l.Goal(index)
	if err != nil {
		return err
	}
	end = timex.DateOnly(end)
	if end.Before(g.Start) {
		return hberror.Newf("The end date %s is before the goal's start date %s",
			timex.FormatCompactDate(end), timex.FormatCompactDate(g.Start)).
			WithCode(hberror.CodeInvalidOperation).
			WithOperation("goal.List.SetGoalEndDate")
	}
	g.End = end
	return nil
}

// SetHabitName renames the habit at the indices
func (l *List) SetHabitName(goalIndex, habitIndex int, name string) error {
	h, err := l.Habit(goalIndex, habitIndex)
	if err != nil {
		return err
	}
	h.Name = name
	return nil
}

// SetHabitInterval changes the repeat interval of the habit at the indices.
// The interval is already validated as positive by the parser; this only
// resolves the habit and reschedules its next due date.
func (l *List) SetHabitInterval(goalIndex, habitIndex, interval int) error {
	h, err := l.Habit(goalIndex, habitIndex)
	if err != nil {
		return err
	}
	h.Interval = interval
	h.Due = timex.Today().AddDate(0, 0, interval)
	return nil
}

// DoneHabit records today's progress for the habit at the indices
func (l *List) DoneHabit(goalIndex, habitIndex int) (*Habit, error) {
	h, err := l.Habit(goalIndex, habitIndex)
	if err != nil {
		return nil, err
	}
	today := timex.Today()
	if h.DoneOn(today) {
		return nil, hberror.Newf("The habit '%s' has already been marked done today", h.Name).
			WithCode(hberror.CodeInvalidOperation).
			WithOperation("goal.List.DoneHabit")
	}
	h.Done(today)
	return h, nil
}
