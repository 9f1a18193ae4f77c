// Package main is the entry point for the catlog CLI.
package main

import (
	"os"

	"github.com/thoreinstein/catlog/cmd/catlog/commands"
	"github.com/thoreinstein/catlog/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
