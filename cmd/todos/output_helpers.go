package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	internalstrings "github.com/amonks/todos/internal/strings"
)

func encodeJSONToStdout(value any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	return internalstrings.TrimTrailingNewlines(string(input)), nil
}
