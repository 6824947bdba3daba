package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the color theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	if len(args) > 0 {
		dark, err := nextDarkMode(store.DarkMode(), args[0])
		if err != nil {
			return err
		}
		store.SetDarkMode(dark)
	}

	fmt.Println(themeName(store.DarkMode()))
	return nil
}

func nextDarkMode(current bool, arg string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "dark":
		return true, nil
	case "light":
		return false, nil
	case "toggle":
		return !current, nil
	default:
		return current, fmt.Errorf("invalid theme %q (expected dark, light, or toggle)", arg)
	}
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
