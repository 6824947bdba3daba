package ui

import (
	"testing"

	"github.com/amonks/todos/todo"
)

func TestStatusIcon(t *testing.T) {
	tests := map[todo.Status]string{
		todo.StatusTodo:       "[ ]",
		todo.StatusInProgress: "[~]",
		todo.StatusDone:       "[x]",
	}
	for status, want := range tests {
		if got := StatusIcon(status); got != want {
			t.Errorf("StatusIcon(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestPlainLabels(t *testing.T) {
	if got := PriorityLabel(todo.PriorityUrgent, false); got != "urgent" {
		t.Errorf("PriorityLabel = %q", got)
	}

	work := todo.DefaultCategories()[0]
	if got := CategoryBadge(work, false); got != "💼 Work" {
		t.Errorf("CategoryBadge = %q", got)
	}
}

func TestCategoryLabel(t *testing.T) {
	categories := todo.DefaultCategories()

	if got := CategoryLabel(categories, nil, false); got != "-" {
		t.Errorf("expected - for uncategorized, got %q", got)
	}
	if got := CategoryLabel(categories, todo.StringPtr("gone"), false); got != "-" {
		t.Errorf("expected - for dangling reference, got %q", got)
	}
	if got := CategoryLabel(categories, todo.StringPtr("study"), false); got != "📚 Study" {
		t.Errorf("expected study badge, got %q", got)
	}
}
