// Package main implements the todos CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "todos",
	Short:        "Todos - a local todo list",
	SilenceUsage: true,
}

var (
	globalDataDir  string
	globalBackend  string
	globalLogLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&globalDataDir, "data-dir", "", "Directory todo state is stored in")
	rootCmd.PersistentFlags().StringVar(&globalBackend, "backend", "", "Storage backend (file, sqlite, memory)")
	rootCmd.PersistentFlags().StringVar(&globalLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
