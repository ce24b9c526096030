// File: export.go
// Title: Goal List Export and Import
// Description: Writes the goal list to a plain-text exchange format and to
//              YAML, and reads the text format back. The text format is one
//              record per line with semicolon-separated fields; goal lines
//              carry a bracketed type marker such as [SL].
// Version: v0.1.0
// Created: 2025-08-31

package storage

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	hberror "github.com/happybit/happybit/core/error"
	"github.com/happybit/happybit/internal/goal"
	"github.com/happybit/happybit/utils/timex"
)

const (
	goalRecord  = "G"
	habitRecord = "H"
	fieldSep    = ";"
)

// ExportText writes the goal list as semicolon-separated records:
//
//	G;<id>;[SL];<name>;<start>;<end>
//	H;<goal-id>;<name>;<due>;<interval>
//
// Habit lines follow the goal they belong to. Progress entries are not part
// of the exchange format.
func ExportText(w io.Writer, list *goal.List) error {
	bw := bufio.NewWriter(w)

	for _, g := range list.Goals() {
		fields := []string{
			goalRecord,
			g.ID,
			g.Type.Bracket(),
			g.Name,
			timex.FormatCompactDate(g.Start),
			timex.FormatCompactDate(g.End),
		}
		if _, err := bw.WriteString(strings.Join(fields, fieldSep) + "\n"); err != nil {
			return hberror.Wrap(err, "failed to write goal record").
				WithCode(hberror.CodeDatabaseError)
		}

		for _, h := range g.Habits {
			fields := []string{
				habitRecord,
				g.ID,
				h.Name,
				timex.FormatCompactDate(h.Due),
				strconv.Itoa(h.Interval),
			}
			if _, err := bw.WriteString(strings.Join(fields, fieldSep) + "\n"); err != nil {
				return hberror.Wrap(err, "failed to write habit record").
					WithCode(hberror.CodeDatabaseError)
			}
		}
	}

	return bw.Flush()
}

// ImportText reads a text export back into a goal list. Habit records must
// name a goal that appeared earlier in the stream.
func ImportText(r io.Reader) (*goal.List, error) {
	list := goal.NewList()
	byID := make(map[string]*goal.Goal)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, fieldSep)
		switch fields[0] {
		case goalRecord:
			g, err := parseGoalRecord(fields, lineNo)
			if err != nil {
				return nil, err
			}
			list.Add(g)
			byID[g.ID] = g
		case habitRecord:
			if err := parseHabitRecord(fields, byID, lineNo); err != nil {
				return nil, err
			}
		default:
			return nil, importError(lineNo, "unknown record type %q", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, hberror.Wrap(err, "failed to read import stream").
			WithCode(hberror.CodeDatabaseError)
	}

	return list, nil
}

// parseGoalRecord parses G;<id>;[SL];<name>;<start>;<end>. Names may contain
// the separator, so the name spans everything between the marker and the two
// trailing date fields.
func parseGoalRecord(fields []string, lineNo int) (*goal.Goal, error) {
	if len(fields) < 6 {
		return nil, importError(lineNo, "goal record has %d fields, want at least 6", len(fields))
	}

	start, err := timex.ParseCompactDate(fields[len(fields)-2])
	if err != nil {
		return nil, importError(lineNo, "invalid start date %q", fields[len(fields)-2])
	}
	end, err := timex.ParseCompactDate(fields[len(fields)-1])
	if err != nil {
		return nil, importError(lineNo, "invalid end date %q", fields[len(fields)-1])
	}

	return &goal.Goal{
		ID:    fields[1],
		Type:  goal.ParseBracket(fields[2]),
		Name:  strings.Join(fields[3:len(fields)-2], fieldSep),
		Start: start,
		End:   end,
	}, nil
}

// parseHabitRecord parses H;<goal-id>;<name>;<due>;<interval> and attaches
// the habit to its goal
func parseHabitRecord(fields []string, byID map[string]*goal.Goal, lineNo int) error {
	if len(fields) < 5 {
		return importError(lineNo, "habit record has %d fields, want at least 5", len(fields))
	}

	g, ok := byID[fields[1]]
	if !ok {
		return importError(lineNo, "habit references unknown goal %q", fields[1])
	}

	due, err := timex.ParseCompactDate(fields[len(fields)-2])
	if err != nil {
		return importError(lineNo, "invalid due date %q", fields[len(fields)-2])
	}
	interval, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || interval < 0 {
		return importError(lineNo, "invalid interval %q", fields[len(fields)-1])
	}

	h := goal.NewHabit(strings.Join(fields[2:len(fields)-2], fieldSep), interval, due)
	g.AddHabit(h)
	return nil
}

func importError(lineNo int, format string, args ...interface{}) error {
	return hberror.Newf(format, args...).
		WithCode(hberror.CodeDataCorruption).
		WithDetail("line", lineNo)
}

// yamlSnapshot mirrors the goal list for YAML export
type yamlSnapshot struct {
	Goals []yamlGoal `yaml:"goals"`
}

type yamlGoal struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Type   string      `yaml:"type"`
	Start  string      `yaml:"start"`
	End    string      `yaml:"end"`
	Habits []yamlHabit `yaml:"habits,omitempty"`
}

type yamlHabit struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Interval int      `yaml:"interval"`
	Due      string   `yaml:"due"`
	Done     []string `yaml:"done,omitempty"`
}

// ExportYAML writes the goal list as a YAML document including progress
// history. YAML export is one-way; the text format is the exchange format.
func ExportYAML(w io.Writer, list *goal.List) error {
	snapshot := yamlSnapshot{
		Goals: make([]yamlGoal, 0, list.Len()),
	}

	for _, g := range list.Goals() {
		yg := yamlGoal{
			ID:    g.ID,
			Name:  g.Name,
			Type:  g.Type.Label(),
			Start: timex.FormatCompactDate(g.Start),
			End:   timex.FormatCompactDate(g.End),
		}
		for _, h := range g.Habits {
			yh := yamlHabit{
				ID:       h.ID,
				Name:     h.Name,
				Interval: h.Interval,
				Due:      timex.FormatCompactDate(h.Due),
			}
			for _, p := range h.Progress {
				yh.Done = append(yh.Done, timex.FormatCompactDate(p.Date))
			}
			yg.Habits = append(yg.Habits, yh)
		}
		snapshot.Goals = append(snapshot.Goals, yg)
	}

	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	if err := encoder.Encode(snapshot); err != nil {
		return hberror.Wrap(err, "failed to encode YAML export").
			WithCode(hberror.CodeDatabaseError)
	}
	return nil
}
