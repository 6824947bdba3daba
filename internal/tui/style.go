package tui

import "github.com/charmbracelet/lipgloss"

// styles holds every style the view renders with, for one theme.
type styles struct {
	header    lipgloss.Style
	stats     lipgloss.Style
	filter    lipgloss.Style
	normal    lipgloss.Style
	selected  lipgloss.Style
	done      lipgloss.Style
	overdue   lipgloss.Style
	muted     lipgloss.Style
	label     lipgloss.Style
	pane      lipgloss.Style
	statusErr lipgloss.Style
	statusOK  lipgloss.Style
}

var borderASCII = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

type palette struct {
	fg, bg, muted, accent, selectedBg lipgloss.Color
}

var (
	darkPalette = palette{
		fg:         lipgloss.Color("252"),
		bg:         lipgloss.Color("236"),
		muted:      lipgloss.Color("244"),
		accent:     lipgloss.Color("33"),
		selectedBg: lipgloss.Color("24"),
	}
	lightPalette = palette{
		fg:         lipgloss.Color("235"),
		bg:         lipgloss.Color("254"),
		muted:      lipgloss.Color("245"),
		accent:     lipgloss.Color("26"),
		selectedBg: lipgloss.Color("153"),
	}
)

func newStyles(dark bool) styles {
	p := darkPalette
	if !dark {
		p = lightPalette
	}

	return styles{
		header:    lipgloss.NewStyle().Foreground(p.fg).Background(p.bg).Bold(true).Padding(0, 1),
		stats:     lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		filter:    lipgloss.NewStyle().Foreground(p.accent),
		normal:    lipgloss.NewStyle().Foreground(p.fg),
		selected:  lipgloss.NewStyle().Foreground(p.fg).Background(p.selectedBg).Bold(true),
		done:      lipgloss.NewStyle().Foreground(p.muted).Strikethrough(true),
		overdue:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		muted:     lipgloss.NewStyle().Foreground(p.muted),
		label:     lipgloss.NewStyle().Bold(true),
		pane:      lipgloss.NewStyle().Border(borderASCII).BorderForeground(p.accent).Padding(0, 1),
		statusErr: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		statusOK:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}
