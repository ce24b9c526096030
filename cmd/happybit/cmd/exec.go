// File: exec.go
// Title: One-Shot Command Execution
// Description: Parses and executes a single tracker command without starting
//              the interactive session.
// Version: v0.1.0
// Created: 2025-08-31

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	hberror "github.com/happybit/happybit/core/error"
	"github.com/happybit/happybit/internal/ui"
)

var execCmd = &cobra.Command{
	Use:   "exec <command line>",
	Short: "Execute one tracker command and exit",
	Long: `Parses and executes a single tracker command, then exits.

Examples:
  happybit exec "set n/Sleep early t/sl e/31122021"
  happybit exec list
  happybit exec done g/1 h/1

The arguments are joined with spaces, so quoting the whole line is optional
unless it contains shell metacharacters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		printError("failed to start", err)
		return err
	}
	defer app.close()

	line := strings.Join(args, " ")

	parsed, err := app.parser.Parse(line)
	if err != nil {
		fmt.Println(ui.RenderError(err))
		if hberror.CodeOf(err).IsUserError() {
			cmd.SilenceUsage = true
		}
		return err
	}

	result, err := app.engine.Execute(cmd.Context(), parsed)
	if err != nil {
		fmt.Println(ui.RenderError(err))
		cmd.SilenceUsage = true
		return err
	}

	if out := ui.RenderResult(result); out != "" {
		fmt.Println(out)
	}
	return nil
}
