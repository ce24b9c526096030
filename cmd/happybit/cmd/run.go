// File: run.go
// Title: Interactive Session Command
// Description: Starts the interactive tracker session in the terminal.
// Version: v0.1.0
// Created: 2025-08-31

package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/happybit/happybit/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive session",
	Long: `Starts the interactive tracker session.

Every line is one command, e.g.:

  set n/Sleep early t/sl e/31122021
  habit g/1 n/In bed by ten i/1
  done g/1 h/1
  list

Keys:
  Enter     - run the command
  Up/Down   - recall earlier commands
  Ctrl+C    - leave the session`,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		printError("failed to start", err)
		return err
	}
	defer app.close()

	program := tea.NewProgram(
		tui.New(tui.Config{
			Parser: app.parser,
			Engine: app.engine,
			Logger: app.logger,
		}),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		printError("session failed", err)
		return err
	}
	return nil
}
