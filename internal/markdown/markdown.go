// Package markdown renders todo descriptions for the terminal.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"

	internalstrings "github.com/amonks/todos/internal/strings"
)

// Theme selects the glamour style descriptions are rendered with.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	// ThemePlain renders without colour.
	ThemePlain Theme = "plain"
)

// ThemeFor returns the theme matching the dark-mode setting.
func ThemeFor(dark, color bool) Theme {
	switch {
	case !color:
		return ThemePlain
	case dark:
		return ThemeDark
	default:
		return ThemeLight
	}
}

type renderer interface {
	Render(string) (string, error)
}

type rendererKey struct {
	width int
	theme Theme
}

var (
	rendererMu sync.Mutex
	renderers  = map[rendererKey]renderer{}
)

// Render formats markdown text for terminal output. Rendering failures fall
// back to the raw text.
func Render(width, indent int, theme Theme, input []byte) []byte {
	if len(input) == 0 {
		return nil
	}
	value := internalstrings.NormalizeNewlines(string(input))
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	renderWidth := max(max(width, 1)-max(indent, 0), 1)

	rendered := value
	if r := markdownRenderer(renderWidth, theme); r != nil {
		if formatted, ok := safeRender(r, value); ok {
			rendered = formatted
		}
	}
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	return []byte(indentBlock(rendered, indent))
}

func safeRender(r renderer, value string) (out string, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = "", false
		}
	}()
	formatted, err := r.Render(value)
	if err != nil {
		return "", false
	}
	return formatted, true
}

func markdownRenderer(width int, theme Theme) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	key := rendererKey{width: width, theme: theme}
	if cached, ok := renderers[key]; ok {
		return cached
	}
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(styleFor(theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[key] = created
	return created
}

func styleFor(theme Theme) ansi.StyleConfig {
	var style ansi.StyleConfig
	switch theme {
	case ThemeDark:
		style = styles.DarkStyleConfig
	case ThemeLight:
		style = styles.LightStyleConfig
	default:
		style = styles.ASCIIStyleConfig
		style.Item.BlockPrefix = "- "
	}
	return style
}

func indentBlock(value string, spaces int) string {
	if spaces <= 0 {
		return value
	}
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
