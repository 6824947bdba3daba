package main

import (
	"fmt"
	"time"

	"github.com/amonks/todos/internal/markdown"
	"github.com/amonks/todos/internal/ui"
	"github.com/amonks/todos/todo"
)

const todoDetailLineWidth = 80

// printTodoDetail prints detailed information about a todo.
func printTodoDetail(t todo.Todo, categories []todo.Category, highlight func(string) string, theme markdown.Theme, now time.Time) {
	color := theme != markdown.ThemePlain

	fmt.Printf("ID:        %s\n", highlight(t.ID))
	fmt.Printf("Title:     %s\n", t.Title)
	fmt.Printf("Status:    %s\n", t.Status)
	fmt.Printf("Priority:  %s\n", ui.PriorityLabel(t.Priority, color))
	fmt.Printf("Category:  %s\n", ui.CategoryLabel(categories, t.CategoryID, color))
	if t.DueDate != nil {
		fmt.Printf("Due:       %s (%s)\n", *t.DueDate, formatTodoDue(t, now))
	}
	fmt.Printf("Created:   %s\n", formatTimestamp(t.CreatedAt, now))
	fmt.Printf("Updated:   %s\n", formatTimestamp(t.UpdatedAt, now))
	if t.CompletedAt != nil {
		fmt.Printf("Completed: %s\n", formatTimestamp(*t.CompletedAt, now))
	}
	fmt.Printf("Duration:  %s\n", formatTodoDuration(t, now))

	if t.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", renderMarkdownOrDash(t.Description, todoDetailLineWidth, theme))
	}
}

func formatTimestamp(value string, now time.Time) string {
	parsed, err := todo.ParseTimestamp(value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%s (%s)", parsed.Local().Format("2006-01-02 15:04:05"), ui.FormatTimeAgo(parsed, now))
}
