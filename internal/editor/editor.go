// Package editor opens todos in the user's $EDITOR.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"golang.org/x/term"
)

const fallbackEditor = "vi"

// IsInteractive returns true if stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Command returns the argv used to edit path. $VISUAL wins over $EDITOR, and
// either may carry arguments such as "code --wait".
func Command(path string) ([]string, error) {
	value := os.Getenv("VISUAL")
	if value == "" {
		value = os.Getenv("EDITOR")
	}
	if value == "" {
		return []string{fallbackEditor, path}, nil
	}

	argv, err := shellquote.Split(value)
	if err != nil {
		return nil, fmt.Errorf("parse editor command %q: %w", value, err)
	}
	if len(argv) == 0 {
		return []string{fallbackEditor, path}, nil
	}
	return append(argv, path), nil
}

// Edit opens path in the editor and waits for it to exit.
func Edit(path string) error {
	argv, err := Command(path)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
