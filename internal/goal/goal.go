// File: goal.go
// Title: Goal and Habit Domain Model
// Description: Defines the tracked objects of the application: goals with a
//              type, name and date range, habits with a recurrence interval,
//              and progress entries recording completed dates.
// Version: v0.1.0
// Created: 2025-08-31

package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/happybit/happybit/utils/timex"
)

// Goal is a tracked objective with a type, name and start/end date
type Goal struct {
	ID     string
	Name   string
	Type   Type
	Start  time.Time
	End    time.Time
	Habits []*Habit
}

// Habit is a recurring action under a goal with a repeat interval in days.
// Interval 0 means the habit has no recurrence and is due only once.
type Habit struct {
	ID       string
	Name     string
	Interval int
	Due      time.Time
	Progress []Progress
}

// Progress records one completed occurrence of a habit
type Progress struct {
	Date time.Time
}

// NewGoal creates a goal with a fresh identity
func NewGoal(name string, goalType Type, start, end time.Time) *Goal {
	return &Goal{
		ID:    uuid.NewString(),
		Name:  name,
		Type:  goalType,
		Start: timex.DateOnly(start),
		End:   timex.DateOnly(end),
	}
}

// NewHabit creates a habit with a fresh identity, due at the given date
func NewHabit(name string, interval int, due time.Time) *Habit {
	return &Habit{
		ID:       uuid.NewString(),
		Name:     name,
		Interval: interval,
		Due:      timex.DateOnly(due),
	}
}

// AddHabit appends a habit to the goal
func (g *Goal) AddHabit(h *Habit) {
	g.Habits = append(g.Habits, h)
}

// Done records a completed occurrence on the given date and, for recurring
// habits, advances the due date by the interval.
func (h *Habit) Done(date time.Time) {
	date = timex.DateOnly(date)
	h.Progress = append(h.Progress, Progress{Date: date})
	if h.Interval > 0 {
		h.Due = date.AddDate(0, 0, h.Interval)
	}
}

// DoneOn reports whether the habit was completed on the given date
func (h *Habit) DoneOn(date time.Time) bool {
	for _, p := range h.Progress {
		if timex.SameDate(p.Date, date) {
			return true
		}
	}
	return false
}
