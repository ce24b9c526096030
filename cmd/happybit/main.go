// File: main.go
// Title: Ha(ppy)Bit Entry Point
// Description: Starts the command line interface.
// Version: v0.1.0
// Created: 2025-08-31

package main

import (
	"os"

	"github.com/happybit/happybit/cmd/happybit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
