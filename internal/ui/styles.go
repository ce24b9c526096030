// File: styles.go
// Title: Console Styles
// Description: Lipgloss styles and the color palette shared by the console
//              printer and the interactive session.
// Version: v0.1.0
// Created: 2025-08-31

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorAccent  = lipgloss.Color("#F59E0B") // Amber
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	GoalNameStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	TypeBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	DateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	IndexStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	OverdueStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// Banner shown when an interactive session starts
const Banner = "Ha(ppy)Bit"
