// File: import.go
// Title: Import Command
// Description: Reads a text export and replaces the stored goal list.
// Version: v0.1.0
// Created: 2025-08-31

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/happybit/happybit/core/config"
	hblog "github.com/happybit/happybit/core/log"
	"github.com/happybit/happybit/internal/goal"
	"github.com/happybit/happybit/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import goals and habits from a text export",
	Long: `Reads a text export and replaces the stored goal list with its
contents. The current list is overwritten, so export it first if you want to
keep it.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load config", err)
		return err
	}
	logger := setupLogger(cfg)

	list, err := readImport(args[0])
	if err != nil {
		printError("import failed", err)
		return err
	}

	store, err := newStore(cfg, logger)
	if err != nil {
		printError("failed to open store", err)
		return err
	}
	defer store.Close()

	if err := store.Save(cmd.Context(), list); err != nil {
		printError("failed to save imported goals", err)
		return err
	}

	fmt.Printf("Imported %d goals from %s\n", list.Len(), args[0])
	return nil
}

func readImport(path string) (*goal.List, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return storage.ImportText(file)
}

func newStore(cfg *config.Config, logger *hblog.Logger) (*storage.SQLiteStore, error) {
	return storage.NewSQLiteStore(storage.SQLiteConfig{
		Path:   cfg.GetString("storage.path", "./data/happybit.db"),
		Logger: logger,
	})
}
