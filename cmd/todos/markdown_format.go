package main

import (
	"strings"

	"github.com/amonks/todos/internal/markdown"
)

func renderMarkdownOrDash(value string, width int, theme markdown.Theme) string {
	if width < 1 {
		width = 1
	}
	formatted := string(markdown.Render(width, 0, theme, []byte(value)))
	if strings.TrimSpace(formatted) == "" {
		return "-"
	}
	return formatted
}
