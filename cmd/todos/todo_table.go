package main

import (
	"fmt"
	"time"

	"github.com/amonks/todos/internal/ui"
	"github.com/amonks/todos/todo"
)

// printTodoTable prints todos in a table format.
func printTodoTable(todos []todo.Todo, categories []todo.Category, prefixLengths map[string]int, now time.Time) {
	if len(todos) == 0 {
		fmt.Println("No todos found.")
		return
	}

	highlight := logHighlighter(prefixLengths, ui.HighlightID)
	fmt.Print(formatTodoTable(todos, categories, highlight, ui.ColorEnabled(), now))
}

func formatTodoTable(todos []todo.Todo, categories []todo.Category, highlight func(string) string, color bool, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "PRIORITY", "CATEGORY", "DUE", "AGE", "TITLE"}, len(todos))

	for _, t := range todos {
		builder.AddRow([]string{
			highlight(t.ID),
			ui.StatusIcon(t.Status),
			ui.PriorityLabel(t.Priority, color),
			ui.CategoryLabel(categories, t.CategoryID, color),
			formatTodoDue(t, now),
			formatTodoAge(t, now),
			ui.TruncateTableCell(t.Title),
		})
	}

	return builder.String()
}

func formatTodoDue(item todo.Todo, now time.Time) string {
	if item.DueDate == nil {
		return "-"
	}
	due, err := todo.ParseDueDate(*item.DueDate)
	if err != nil {
		return *item.DueDate
	}
	if item.Status == todo.StatusDone {
		return *item.DueDate
	}
	return ui.FormatDueIn(due, now)
}

func formatTodoAge(item todo.Todo, now time.Time) string {
	ageValue, ok := todo.AgeData(item, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(ageValue)
}

func formatTodoDuration(item todo.Todo, now time.Time) string {
	duration, ok := todo.DurationData(item, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(duration)
}
