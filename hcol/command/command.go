// File: command.go
// Title: HCOL Command Definitions
// Description: Defines the command variants produced by the HCOL parser. A
//              command is an immutable record of one validated user intent;
//              it is only ever constructed after all field validation has
//              succeeded and is consumed exactly once by the executor.
// Version: v0.1.0
// Created: 2025-08-31

package command

import (
	"fmt"
	"time"

	"github.com/happybit/happybit/internal/goal"
	"github.com/happybit/happybit/utils/timex"
)

// Kind identifies the variant of a command
type Kind int

const (
	KindAddGoal Kind = iota
	KindAddHabit
	KindDeleteGoal
	KindDeleteHabit
	KindLogProgress
	KindListGoals
	KindListHabits
	KindUpdateGoalName
	KindUpdateGoalType
	KindUpdateGoalEndDate
	KindUpdateHabitName
	KindUpdateHabitInterval
	KindHelp
	KindExit
)

// String returns the name of the command kind
func (k Kind) String() string {
	switch k {
	case KindAddGoal:
		return "add-goal"
	case KindAddHabit:
		return "add-habit"
	case KindDeleteGoal:
		return "delete-goal"
	case KindDeleteHabit:
		return "delete-habit"
	case KindLogProgress:
		return "log-progress"
	case KindListGoals:
		return "list-goals"
	case KindListHabits:
		return "list-habits"
	case KindUpdateGoalName:
		return "update-goal-name"
	case KindUpdateGoalType:
		return "update-goal-type"
	case KindUpdateGoalEndDate:
		return "update-goal-end-date"
	case KindUpdateHabitName:
		return "update-habit-name"
	case KindUpdateHabitInterval:
		return "update-habit-interval"
	case KindHelp:
		return "help"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Command is one validated user intent ready for execution
type Command interface {
	Kind() Kind
	String() string
}

// AddGoal creates a new goal
type AddGoal struct {
	Name  string
	Type  goal.Type
	Start time.Time
	End   time.Time
}

func (c AddGoal) Kind() Kind { return KindAddGoal }
func (c AddGoal) String() string {
	return fmt.Sprintf("add-goal name=%q type=%s start=%s end=%s",
		c.Name, c.Type, timex.FormatCompactDate(c.Start), timex.FormatCompactDate(c.End))
}

// AddHabit adds a habit to an existing goal. Interval 0 is legal here (a
// one-off habit); only interval updates require a positive value.
type AddHabit struct {
	GoalIndex int
	Name      string
	Interval  int
}

func (c AddHabit) Kind() Kind { return KindAddHabit }
func (c AddHabit) String() string {
	return fmt.Sprintf("add-habit goal=%d name=%q interval=%d", c.GoalIndex, c.Name, c.Interval)
}

// DeleteGoal removes a goal and all its habits
type DeleteGoal struct {
	GoalIndex int
}

func (c DeleteGoal) Kind() Kind     { return KindDeleteGoal }
func (c DeleteGoal) String() string { return fmt.Sprintf("delete-goal goal=%d", c.GoalIndex) }

// DeleteHabit removes one habit from a goal
type DeleteHabit struct {
	GoalIndex  int
	HabitIndex int
}

func (c DeleteHabit) Kind() Kind { return KindDeleteHabit }
func (c DeleteHabit) String() string {
	return fmt.Sprintf("delete-habit goal=%d habit=%d", c.GoalIndex, c.HabitIndex)
}

// LogProgress marks a habit as done for the current date
type LogProgress struct {
	GoalIndex  int
	HabitIndex int
}

func (c LogProgress) Kind() Kind { return KindLogProgress }
func (c LogProgress) String() string {
	return fmt.Sprintf("log-progress goal=%d habit=%d", c.GoalIndex, c.HabitIndex)
}

// ListGoals lists all tracked goals
type ListGoals struct{}

func (c ListGoals) Kind() Kind     { return KindListGoals }
func (c ListGoals) String() string { return "list-goals" }

// ListHabits lists the habits of one goal
type ListHabits struct {
	GoalIndex int
}

func (c ListHabits) Kind() Kind     { return KindListHabits }
func (c ListHabits) String() string { return fmt.Sprintf("list-habits goal=%d", c.GoalIndex) }

// UpdateGoalName renames a goal
type UpdateGoalName struct {
	GoalIndex int
	Name      string
}

func (c UpdateGoalName) Kind() Kind { return KindUpdateGoalName }
func (c UpdateGoalName) String() string {
	return fmt.Sprintf("update-goal-name goal=%d name=%q", c.GoalIndex, c.Name)
}

// UpdateGoalType changes the type of a goal
type UpdateGoalType struct {
	GoalIndex int
	Type      goal.Type
}

func (c UpdateGoalType) Kind() Kind { return KindUpdateGoalType }
func (c UpdateGoalType) String() string {
	return fmt.Sprintf("update-goal-type goal=%d type=%s", c.GoalIndex, c.Type)
}

// UpdateGoalEndDate moves the end date of a goal
type UpdateGoalEndDate struct {
	GoalIndex int
	End       time.Time
}

func (c UpdateGoalEndDate) Kind() Kind { return KindUpdateGoalEndDate }
func (c UpdateGoalEndDate) String() string {
	return fmt.Sprintf("update-goal-end-date goal=%d end=%s", c.GoalIndex, timex.FormatCompactDate(c.End))
}

// UpdateHabitName renames a habit
type UpdateHabitName struct {
	GoalIndex  int
	HabitIndex int
	Name       string
}

func (c UpdateHabitName) Kind() Kind { return KindUpdateHabitName }
func (c UpdateHabitName) String() string {
	return fmt.Sprintf("update-habit-name goal=%d habit=%d name=%q", c.GoalIndex, c.HabitIndex, c.Name)
}

// UpdateHabitInterval changes the repeat interval of a habit. The parser
// guarantees Interval > 0 for this variant.
type UpdateHabitInterval struct {
	GoalIndex  int
	HabitIndex int
	Interval   int
}

func (c UpdateHabitInterval) Kind() Kind { return KindUpdateHabitInterval }
func (c UpdateHabitInterval) String() string {
	return fmt.Sprintf("update-habit-interval goal=%d habit=%d interval=%d", c.GoalIndex, c.HabitIndex, c.Interval)
}

// Help shows the command reference
type Help struct{}

func (c Help) Kind() Kind     { return KindHelp }
func (c Help) String() string { return "help" }

// Exit ends the interactive session
type Exit struct{}

func (c Exit) Kind() Kind     { return KindExit }
func (c Exit) String() string { return "exit" }
