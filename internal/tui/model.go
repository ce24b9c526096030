// File: model.go
// Title: Interactive Session Model
// Description: Bubbletea model for the interactive tracker session. One text
//              input at the bottom, a scrollable transcript above it. Every
//              submitted line goes through the parser and executor; results
//              and errors are appended to the transcript.
// Version: v0.1.0
// Created: 2025-08-31

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	hblog "github.com/happybit/happybit/core/log"
	"github.com/happybit/happybit/hcol/executor"
	"github.com/happybit/happybit/hcol/parser"
	"github.com/happybit/happybit/internal/ui"
	"github.com/happybit/happybit/utils/stringx"
)

// Model is the Bubbletea model for the interactive session
type Model struct {
	parser *parser.Parser
	engine *executor.Engine
	logger *hblog.Logger

	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	history    []string
	historyPos int

	width  int
	height int
	ready  bool
}

// Config holds session configuration
type Config struct {
	Parser *parser.Parser
	Engine *executor.Engine
	Logger *hblog.Logger
}

// New creates a new session model
func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = hblog.GetDefault()
	}

	input := textinput.New()
	input.Placeholder = "Enter a command (help shows the reference)"
	input.Focus()
	input.CharLimit = 512
	input.Prompt = "> "
	input.PromptStyle = ui.IndexStyle
	input.PlaceholderStyle = ui.HelpStyle

	return Model{
		parser:     cfg.Parser,
		engine:     cfg.Engine,
		logger:     cfg.Logger.WithField("component", "tui-session"),
		input:      input,
		historyPos: -1,
		transcript: []string{
			ui.TitleStyle.Render(ui.Banner),
			ui.HelpStyle.Render("Track your goals and habits. Type help for the command reference, exit to leave."),
		},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - inputHeight
		}
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.recallHistory(-1)
			return m, nil
		case tea.KeyDown:
			m.recallHistory(1)
			return m, nil
		}
	}

	var inputCmd, viewportCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, viewportCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, viewportCmd)
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Starting session..."
	}
	return m.viewport.View() + "\n" + m.input.View()
}

// submit runs the current input line through the parser and executor
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	if stringx.IsBlank(line) {
		return m, nil
	}

	m.history = append(m.history, line)
	m.historyPos = -1
	m.input.SetValue("")
	m.append(ui.IndexStyle.Render("> ") + line)

	cmd, err := m.parser.Parse(line)
	if err != nil {
		m.append(ui.RenderError(err))
		return m, nil
	}

	result, err := m.engine.Execute(context.Background(), cmd)
	if err != nil {
		m.append(ui.RenderError(err))
		return m, nil
	}

	if out := ui.RenderResult(result); out != "" {
		m.append(out)
	}
	if result.Exit {
		return m, tea.Quit
	}
	return m, nil
}

// recallHistory moves through previously submitted lines
func (m *Model) recallHistory(direction int) {
	if len(m.history) == 0 {
		return
	}

	if m.historyPos == -1 {
		if direction > 0 {
			return
		}
		m.historyPos = len(m.history) - 1
	} else {
		m.historyPos += direction
		if m.historyPos < 0 {
			m.historyPos = 0
		}
		if m.historyPos >= len(m.history) {
			m.historyPos = -1
			m.input.SetValue("")
			return
		}
	}
	m.input.SetValue(m.history[m.historyPos])
	m.input.CursorEnd()
}

// append adds one entry to the transcript and scrolls to the bottom
func (m *Model) append(entry string) {
	m.transcript = append(m.transcript, entry)
	m.refreshTranscript()
}

func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}
