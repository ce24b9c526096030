// File: printer.go
// Title: Console Result Renderer
// Description: Renders executor results and errors as styled console text.
//              Listings show one-based indices matching what the index flags
//              of the command language expect.
// Version: v0.1.0
// Created: 2025-08-31

package ui

import (
	"fmt"
	"strings"
	"time"

	hberror "github.com/happybit/happybit/core/error"
	hbcommand "github.com/happybit/happybit/hcol/command"
	"github.com/happybit/happybit/hcol/executor"
	"github.com/happybit/happybit/internal/goal"
	"github.com/happybit/happybit/utils/timex"
)

// RenderResult renders one executor result
func RenderResult(result *executor.Result) string {
	var b strings.Builder

	switch result.Command {
	case hbcommand.KindListGoals:
		renderGoalList(&b, result.Goals)
	case hbcommand.KindListHabits:
		renderHabitList(&b, result.Goal)
	case hbcommand.KindHelp:
		b.WriteString(HelpStyle.Render(result.Message))
	default:
		if result.Message != "" {
			b.WriteString(MessageStyle.Render(result.Message))
		}
	}

	return b.String()
}

// RenderError renders an error. User errors show only their message; system
// errors are prefixed so they stand out in a session transcript.
func RenderError(err error) string {
	if hberror.CodeOf(err).IsUserError() {
		return ErrorStyle.Render(hberror.UserMessage(err))
	}
	return ErrorStyle.Render("Something went wrong: " + hberror.UserMessage(err))
}

// renderGoalList renders all goals with one-based indices
func renderGoalList(b *strings.Builder, goals []*goal.Goal) {
	if len(goals) == 0 {
		b.WriteString(HelpStyle.Render("You have no goals yet. Add one with the set command"))
		return
	}

	b.WriteString(TitleStyle.Render("Your goals:"))
	for i, g := range goals {
		b.WriteString("\n")
		b.WriteString(goalLine(i+1, g))
	}
}

// renderHabitList renders the habits of one goal with one-based indices
func renderHabitList(b *strings.Builder, g *goal.Goal) {
	b.WriteString(TitleStyle.Render("Habits for goal: " + g.Name))
	if len(g.Habits) == 0 {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("This goal has no habits yet. Add one with the habit command"))
		return
	}

	today := timex.Today()
	for i, h := range g.Habits {
		b.WriteString("\n")
		b.WriteString(habitLine(i+1, h, today))
	}
}

func goalLine(index int, g *goal.Goal) string {
	return fmt.Sprintf("%s %s %s %s",
		IndexStyle.Render(fmt.Sprintf("%d.", index)),
		TypeBadgeStyle.Render(g.Type.Bracket()),
		GoalNameStyle.Render(g.Name),
		DateStyle.Render(fmt.Sprintf("(%s - %s)",
			timex.FormatCompactDate(g.Start), timex.FormatCompactDate(g.End))))
}

func habitLine(index int, h *goal.Habit, today time.Time) string {
	recurrence := "one-off"
	if h.Interval == 1 {
		recurrence = "every day"
	} else if h.Interval > 1 {
		recurrence = fmt.Sprintf("every %d days", h.Interval)
	}

	due := "due " + timex.FormatCompactDate(h.Due)
	dueStyle := DateStyle
	if h.Due.Before(today) && !h.DoneOn(today) {
		due = "overdue since " + timex.FormatCompactDate(h.Due)
		dueStyle = OverdueStyle
	}

	return fmt.Sprintf("%s %s %s %s",
		IndexStyle.Render(fmt.Sprintf("%d.", index)),
		GoalNameStyle.Render(h.Name),
		DateStyle.Render("("+recurrence+")"),
		dueStyle.Render(due))
}
