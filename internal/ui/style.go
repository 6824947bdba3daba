package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/todos/todo"
)

var priorityColors = map[todo.Priority]lipgloss.Color{
	todo.PriorityUrgent: lipgloss.Color("#ef4444"),
	todo.PriorityHigh:   lipgloss.Color("#f97316"),
	todo.PriorityMedium: lipgloss.Color("#eab308"),
	todo.PriorityLow:    lipgloss.Color("#6b7280"),
}

// StatusIcon returns the checkbox shown next to a todo.
func StatusIcon(status todo.Status) string {
	switch status {
	case todo.StatusDone:
		return "[x]"
	case todo.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

// PriorityLabel renders a priority, coloured when color is true.
func PriorityLabel(priority todo.Priority, color bool) string {
	label := string(priority)
	if !color {
		return label
	}
	fg, ok := priorityColors[priority]
	if !ok {
		return label
	}
	style := lipgloss.NewStyle().Foreground(fg)
	if priority == todo.PriorityUrgent {
		style = style.Bold(true)
	}
	return style.Render(label)
}

// CategoryBadge renders a category as its icon and name, in the category's
// colour when color is true.
func CategoryBadge(category todo.Category, color bool) string {
	label := category.Name
	if category.Icon != "" {
		label = category.Icon + " " + label
	}
	if !color || category.Color == "" {
		return label
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(category.Color)).Render(label)
}

// CategoryLabel resolves a todo's category reference for display. Missing
// references render as "-".
func CategoryLabel(categories []todo.Category, id *string, color bool) string {
	if id == nil {
		return "-"
	}
	category, ok := todo.CategoryByID(categories, *id)
	if !ok {
		return "-"
	}
	return CategoryBadge(category, color)
}
