package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	internalstrings "github.com/amonks/todos/internal/strings"
	"github.com/amonks/todos/internal/ui"
	"github.com/amonks/todos/todo"
)

type todoItem struct {
	todo todo.Todo
}

func (item todoItem) FilterValue() string {
	return item.todo.Title
}

type todoItemDelegate struct {
	feed *feed
}

func (d todoItemDelegate) Height() int                             { return 1 }
func (d todoItemDelegate) Spacing() int                            { return 0 }
func (d todoItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d todoItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(todoItem)
	if !ok {
		return
	}

	snap := d.feed.current
	line := formatTodoLine(item.todo, snap.categories, snap.now, m.Width())
	style := snap.styles.normal
	switch {
	case index == m.Index():
		style = snap.styles.selected
	case item.todo.Status == todo.StatusDone:
		style = snap.styles.done
	case item.todo.IsOverdue(snap.now):
		style = snap.styles.overdue
	}
	fmt.Fprint(w, style.Render(line))
}

func formatTodoLine(t todo.Todo, categories []todo.Category, now time.Time, width int) string {
	title := internalstrings.NormalizeWhitespace(t.Title)
	if title == "" {
		title = "(untitled)"
	}

	parts := []string{ui.StatusIcon(t.Status), title}
	meta := []string{string(t.Priority)}
	if t.CategoryID != nil {
		if category, ok := todo.CategoryByID(categories, *t.CategoryID); ok {
			meta = append(meta, ui.CategoryBadge(category, false))
		}
	}
	if t.DueDate != nil && t.Status != todo.StatusDone {
		if due, err := todo.ParseDueDate(*t.DueDate); err == nil {
			meta = append(meta, "due "+ui.FormatDueIn(due, now))
		}
	}
	parts = append(parts, "["+strings.Join(meta, ", ")+"]")

	line := strings.Join(parts, " ")
	if width <= 0 {
		return line
	}
	return ui.TruncateWidth(line, width)
}

// formatDetail renders the selected todo for the detail pane.
func formatDetail(t todo.Todo, categories []todo.Category, s styles, now time.Time, width int) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", s.label.Render(label), value)
	}

	row("Title:   ", t.Title)
	row("Status:  ", string(t.Status))
	row("Priority:", string(t.Priority))
	row("Category:", ui.CategoryLabel(categories, t.CategoryID, false))
	if t.DueDate != nil {
		due := *t.DueDate
		if parsed, err := todo.ParseDueDate(due); err == nil && t.Status != todo.StatusDone {
			due += " (" + ui.FormatDueIn(parsed, now) + ")"
		}
		row("Due:     ", due)
	}
	if age, ok := todo.AgeData(t, now); ok {
		value := ui.FormatDurationShort(age)
		if updated, ok := todo.UpdatedData(t, now); ok && t.UpdatedAt != t.CreatedAt {
			value += " (updated " + ui.FormatDurationShort(updated) + " ago)"
		}
		row("Age:     ", value)
	}

	if description := strings.TrimSpace(t.Description); description != "" {
		b.WriteString("\n")
		if width > 0 {
			description = wordwrap.String(description, width)
		}
		b.WriteString(description)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
