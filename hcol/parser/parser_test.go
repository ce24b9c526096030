// File: parser_test.go
// Title: Parser Dispatch and End-to-End Tests
// Description: Tests for keyword dispatch, blank input handling and complete
//              lines through every command family.
// Version: v0.1.0
// Created: 2025-08-31

package parser

import (
	"strings"
	"testing"

	hberror "github.com/happybit/happybit/core/error"
	hbcommand "github.com/happybit/happybit/hcol/command"
	"github.com/happybit/happybit/internal/goal"
	"github.com/happybit/happybit/utils/timex"
)

func TestNew_Defaults(t *testing.T) {
	p := New(Options{})
	if p.logger == nil {
		t.Error("Expected a default logger")
	}
	if p.options.MaxInputLength != defaultMaxInputLength {
		t.Errorf("Expected max input length %d, got %d",
			defaultMaxInputLength, p.options.MaxInputLength)
	}
}

func TestParse_BlankInput(t *testing.T) {
	p := newTestParser()

	for _, input := range []string{"", "   ", "\t"} {
		_, err := p.Parse(input)
		if hberror.CodeOf(err) != hberror.CodeInvalidInput {
			t.Errorf("Parse(%q) should be CodeInvalidInput, got %v", input, err)
		}
	}
}

func TestParse_InputTooLong(t *testing.T) {
	p := New(Options{MaxInputLength: 16})

	_, err := p.Parse("set n/" + strings.Repeat("a", 40) + " e/31122021")
	if hberror.CodeOf(err) != hberror.CodeInvalidInput {
		t.Errorf("Oversized input should be CodeInvalidInput, got %v", err)
	}
}

func TestParse_UnknownCommand(t *testing.T) {
	p := newTestParser()

	_, err := p.Parse("frobnicate g/1")
	if hberror.CodeOf(err) != hberror.CodeUnknownCommand {
		t.Fatalf("Expected CodeUnknownCommand, got %v", err)
	}
	if !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("Message should carry the unknown keyword, got %q", err.Error())
	}
}

func TestParse_KeywordCaseInsensitive(t *testing.T) {
	p := newTestParser()

	for _, input := range []string{"LIST", "List", "list"} {
		cmd, err := p.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		if _, ok := cmd.(hbcommand.ListGoals); !ok {
			t.Errorf("Parse(%q) = %T, want ListGoals", input, cmd)
		}
	}
}

func TestParse_AddGoal(t *testing.T) {
	p := newTestParser()

	t.Run("full form", func(t *testing.T) {
		cmd, err := p.Parse("set n/Sleep early t/sl s/01012021 e/31122021")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		got, ok := cmd.(hbcommand.AddGoal)
		if !ok {
			t.Fatalf("Expected AddGoal, got %T", cmd)
		}
		if got.Name != "Sleep early" || got.Type != goal.TypeSleep {
			t.Errorf("Unexpected command: %+v", got)
		}
		if timex.FormatCompactDate(got.Start) != "01012021" ||
			timex.FormatCompactDate(got.End) != "31122021" {
			t.Errorf("Unexpected dates: %+v", got)
		}
	})

	t.Run("type defaults when omitted", func(t *testing.T) {
		cmd, err := p.Parse("set n/Read more e/31122030")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		got := cmd.(hbcommand.AddGoal)
		if got.Type != goal.TypeDefault {
			t.Errorf("Expected TypeDefault, got %v", got.Type)
		}
	})

	t.Run("start defaults to today", func(t *testing.T) {
		cmd, err := p.Parse("set n/Read more e/31122099")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		got := cmd.(hbcommand.AddGoal)
		if !timex.SameDate(got.Start, timex.Today()) {
			t.Errorf("Expected start today, got %v", got.Start)
		}
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := p.Parse("set n/Backwards s/31122021 e/01012021")
		if hberror.CodeOf(err) != hberror.CodeInvalidInput {
			t.Errorf("Expected CodeInvalidInput, got %v", err)
		}
	})

	t.Run("missing end date", func(t *testing.T) {
		_, err := p.Parse("set n/No deadline")
		if hberror.CodeOf(err) != hberror.CodeMissingFlag {
			t.Errorf("Expected CodeMissingFlag, got %v", err)
		}
	})

	t.Run("excess flag", func(t *testing.T) {
		_, err := p.Parse("set n/Foo e/31122021 g/1")
		if hberror.CodeOf(err) != hberror.CodeInvalidCommandShape {
			t.Errorf("Expected CodeInvalidCommandShape, got %v", err)
		}
	})
}

func TestParse_AddHabit(t *testing.T) {
	p := newTestParser()

	cmd, err := p.Parse("habit g/1 n/Brush teeth i/1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got, ok := cmd.(hbcommand.AddHabit)
	if !ok {
		t.Fatalf("Expected AddHabit, got %T", cmd)
	}
	if got.GoalIndex != 0 || got.Name != "Brush teeth" || got.Interval != 1 {
		t.Errorf("Unexpected command: %+v", got)
	}
}

func TestParse_IndexCommands(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name      string
		input     string
		wantGoal  int
		wantHabit int
	}{
		{"done", "done g/2 h/3", 1, 2},
		{"delete habit", "delete g/1 h/1", 0, 0},
		{"remove goal", "remove g/4", 3, -1},
		{"view habits", "view g/2", 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}

			switch got := cmd.(type) {
			case hbcommand.LogProgress:
				if got.GoalIndex != tt.wantGoal || got.HabitIndex != tt.wantHabit {
					t.Errorf("Unexpected indices: %+v", got)
				}
			case hbcommand.DeleteHabit:
				if got.GoalIndex != tt.wantGoal || got.HabitIndex != tt.wantHabit {
					t.Errorf("Unexpected indices: %+v", got)
				}
			case hbcommand.DeleteGoal:
				if got.GoalIndex != tt.wantGoal {
					t.Errorf("Unexpected index: %+v", got)
				}
			case hbcommand.ListHabits:
				if got.GoalIndex != tt.wantGoal {
					t.Errorf("Unexpected index: %+v", got)
				}
			default:
				t.Fatalf("Unexpected command type %T", cmd)
			}
		})
	}
}

func TestParse_NoArgumentCommands(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		input string
		kind  hbcommand.Kind
	}{
		{"list", hbcommand.KindListGoals},
		{"help", hbcommand.KindHelp},
		{"exit", hbcommand.KindExit},
		{"return", hbcommand.KindExit},
		{"bye", hbcommand.KindExit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if cmd.Kind() != tt.kind {
				t.Errorf("Parse(%q).Kind() = %v, want %v", tt.input, cmd.Kind(), tt.kind)
			}
		})
	}
}

func TestParse_MissingArguments(t *testing.T) {
	p := newTestParser()

	for _, input := range []string{"set", "habit", "done", "remove", "delete", "view", "update", "change"} {
		t.Run(input, func(t *testing.T) {
			_, err := p.Parse(input)
			if hberror.CodeOf(err) != hberror.CodeInvalidInput {
				t.Errorf("Parse(%q) should be CodeInvalidInput, got %v", input, err)
			}
		})
	}
}

func TestParse_FirstFailureWins(t *testing.T) {
	p := newTestParser()

	// Both the name and the end date are invalid; the name converter runs
	// first and its failure is the one reported.
	_, err := p.Parse("set n/" + strings.Repeat("a", 60) + " e/99999999")
	if hberror.CodeOf(err) != hberror.CodeNameTooLong {
		t.Errorf("Expected the first failure (CodeNameTooLong), got %v", err)
	}
}
