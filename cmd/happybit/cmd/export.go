// File: export.go
// Title: Export Command
// Description: Writes the goal list to a file or stdout in the text exchange
//              format or as YAML.
// Version: v0.1.0
// Created: 2025-08-31

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/happybit/happybit/internal/goal"
	"github.com/happybit/happybit/internal/storage"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export goals and habits",
	Long: `Exports the goal list.

The text format is the exchange format and can be imported again; the YAML
format additionally includes progress history and is meant for backups and
inspection.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "text", "export format: text or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		printError("failed to start", err)
		return err
	}
	defer app.close()

	var out io.Writer = os.Stdout
	if exportOutput != "" {
		file, err := os.Create(exportOutput)
		if err != nil {
			printError("failed to create output file", err)
			return err
		}
		defer file.Close()
		out = file
	}

	if err := writeExport(out, app.engine.List(), exportFormat); err != nil {
		printError("export failed", err)
		return err
	}

	if exportOutput != "" {
		fmt.Printf("Exported %d goals to %s\n", app.engine.List().Len(), exportOutput)
	}
	return nil
}

func writeExport(out io.Writer, list *goal.List, format string) error {
	switch format {
	case "text":
		return storage.ExportText(out, list)
	case "yaml":
		return storage.ExportYAML(out, list)
	default:
		return fmt.Errorf("unknown export format %q, use text or yaml", format)
	}
}
