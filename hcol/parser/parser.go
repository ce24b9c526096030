// File: parser.go
// Title: HCOL Parser and Command Dispatch
// Description: Implements the parsing phase of HCOL command processing.
//              Splits the command keyword off the raw line, routes the
//              argument portion to the matching command family and returns a
//              fully validated command. Parsing is synchronous and keeps no
//              state between calls.
// Version: v0.1.0
// Created: 2025-08-31

package parser

import (
	"strings"

	hblog "github.com/happybit/happybit/core/log"
	hbcommand "github.com/happybit/happybit/hcol/command"
	"github.com/happybit/happybit/utils/stringx"
)

// defaultMaxInputLength bounds a single input line
const defaultMaxInputLength = 1024

// Parser turns raw input lines into validated commands
type Parser struct {
	logger  *hblog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *hblog.Logger
	MaxInputLength int
}

// New creates a new HCOL parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = hblog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = defaultMaxInputLength
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "hcol-parser"),
		options: opts,
	}
}

// Parse parses one line of user input into a command. On failure the
// returned error carries a specific user-facing message; the parser itself
// never writes to any output stream.
func (p *Parser) Parse(line string) (hbcommand.Command, error) {
	if stringx.IsBlank(line) {
		return nil, errNoParams()
	}
	if len(line) > p.options.MaxInputLength {
		p.logger.Warn("input exceeds maximum length", hblog.Fields{
			"length": len(line),
			"max":    p.options.MaxInputLength,
		})
		return nil, errNoParams()
	}

	keyword, args := splitKeyword(line)

	p.logger.Debug("parsing input", hblog.Fields{
		"keyword": keyword,
		"length":  len(line),
	})

	cmd, err := p.dispatch(keyword, args)
	if err != nil {
		p.logger.Debug("parse failed", hblog.Fields{
			"keyword": keyword,
			"error":   err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("parse completed", hblog.Fields{
		"command": cmd.String(),
	})
	return cmd, nil
}

// dispatch routes the argument portion to the command family named by the
// keyword
func (p *Parser) dispatch(keyword, args string) (hbcommand.Command, error) {
	switch strings.ToLower(keyword) {
	case "set":
		return p.parseAddGoal(args)
	case "habit":
		return p.parseAddHabit(args)
	case "done":
		return p.parseDone(args)
	case "remove":
		return p.parseDeleteGoal(args)
	case "delete":
		return p.parseDeleteHabit(args)
	case "list":
		return hbcommand.ListGoals{}, nil
	case "view":
		return p.parseListHabits(args)
	case "update":
		return p.parseUpdateGoal(args)
	case "change":
		return p.parseUpdateHabit(args)
	case "help":
		return hbcommand.Help{}, nil
	case "return", "exit", "bye":
		return hbcommand.Exit{}, nil
	default:
		return nil, errUnknownCommand(keyword)
	}
}

// splitKeyword separates the command keyword from the argument portion
func splitKeyword(line string) (keyword, args string) {
	trimmed := strings.TrimSpace(line)
	parts := strings.SplitN(trimmed, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// checkArgs rejects an absent command body before tokenizing
func checkArgs(args string) ([]Token, error) {
	if stringx.IsBlank(args) {
		return nil, errNoParams()
	}
	return tokenize(args), nil
}
