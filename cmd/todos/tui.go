package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amonks/todos/internal/editor"
	"github.com/amonks/todos/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive todo list",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !editor.IsInteractive() {
		return fmt.Errorf("tui requires an interactive terminal")
	}

	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	return tui.Run(store)
}
