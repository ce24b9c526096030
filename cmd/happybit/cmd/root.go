// File: root.go
// Title: Root Command and Application Bootstrap
// Description: Defines the root cobra command, the shared flags and the
//              bootstrap helpers that wire configuration, logging, storage,
//              parser and executor together for the subcommands.
// Version: v0.1.0
// Created: 2025-08-31

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/happybit/happybit/core/config"
	hblog "github.com/happybit/happybit/core/log"
	"github.com/happybit/happybit/hcol/executor"
	"github.com/happybit/happybit/hcol/parser"
	"github.com/happybit/happybit/internal/storage"
)

var (
	cfgFile string
	verbose bool
)

const defaultConfigPath = "./configs/config.toml"

var rootCmd = &cobra.Command{
	Use:   "happybit",
	Short: "Ha(ppy)Bit - track goals and the habits that get you there",
	Long: `Ha(ppy)Bit is a habit tracker built around goals.

A goal has a name, a type and a date range; habits are recurring actions
attached to a goal. Commands use flag-prefixed parameters:

  set n/Sleep early t/sl e/31122021
  habit g/1 n/In bed by ten i/1
  done g/1 h/1

Run "happybit run" for the interactive session or "happybit exec" for
one-shot commands.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// configDefaults are the built-in settings used when the config file does
// not override them
func configDefaults() map[string]interface{} {
	return map[string]interface{}{
		"log_level":  "info",
		"log_format": "console",
		"storage": map[string]interface{}{
			"path":      "./data/happybit.db",
			"auto_save": true,
		},
		"parser": map[string]interface{}{
			"max_input_length": 1024,
		},
	}
}

// loadConfig loads the configuration file. A missing default config file is
// not an error; the built-in defaults apply.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = defaultConfigPath
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.NewFromDefaults(configDefaults()), nil
		}
	}
	return config.LoadWithOptions(path, config.LoadOptions{
		Defaults: configDefaults(),
	})
}

// setupLogger configures the default logger from config and flags
func setupLogger(cfg *config.Config) *hblog.Logger {
	levelName := cfg.GetString("log_level", "info")
	if verbose {
		levelName = "debug"
	}

	logger := hblog.GetDefault().WithName("happybit")
	if level, err := hblog.ParseLevel(levelName); err == nil {
		logger = logger.WithLevel(level)
	}
	if format, err := hblog.ParseFormat(cfg.GetString("log_format", "console")); err == nil {
		logger = logger.WithFormat(format)
	}
	return logger
}

// app bundles everything a subcommand needs
type app struct {
	config *config.Config
	logger *hblog.Logger
	parser *parser.Parser
	engine *executor.Engine
}

// newApp bootstraps the application: config, logger, store, parser, engine
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := setupLogger(cfg)

	store, err := storage.NewSQLiteStore(storage.SQLiteConfig{
		Path:   cfg.GetString("storage.path", "./data/happybit.db"),
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	engine, err := executor.New(ctx, executor.Options{
		Logger:   logger,
		Store:    store,
		AutoSave: cfg.GetBool("storage.auto_save", true),
	})
	if err != nil {
		store.Close()
		return nil, err
	}

	return &app{
		config: cfg,
		logger: logger,
		parser: parser.New(parser.Options{
			Logger:         logger,
			MaxInputLength: cfg.GetInt("parser.max_input_length", 1024),
		}),
		engine: engine,
	}, nil
}

// close releases the application's resources
func (a *app) close() {
	if err := a.engine.Close(); err != nil {
		a.logger.ErrorErr("failed to close engine", err)
	}
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
