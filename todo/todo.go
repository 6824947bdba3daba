package todo

import "time"

// TimestampLayout is the layout of every persisted timestamp. Fixed width
// UTC keeps lexicographic and chronological order identical.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DueDateLayout is the layout of a due date.
const DueDateLayout = "2006-01-02"

// Todo represents a single task.
type Todo struct {
	// ID is a unique identifier (uuid v4), assigned at creation.
	ID string `json:"id"`

	// Title is the short summary of the todo.
	Title string `json:"title"`

	// Description provides additional context about the todo.
	Description string `json:"description"`

	// Status is the current state of the todo.
	Status Status `json:"status"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// CategoryID references a Category (nil when uncategorized).
	CategoryID *string `json:"categoryId"`

	// DueDate is a calendar date in DueDateLayout (nil when unset).
	DueDate *string `json:"dueDate"`

	// CreatedAt is when the todo was created.
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is when the todo was last modified.
	UpdatedAt string `json:"updatedAt"`

	// CompletedAt is when the todo entered done (nil unless done).
	CompletedAt *string `json:"completedAt"`

	// Order is the position of the todo in the manual sequence.
	Order int `json:"order"`
}

// Category is a user-defined tag attachable to todos.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// FormatTimestamp formats t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a persisted timestamp.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}

// ParseDueDate parses a due date. Date-only values are midnight UTC; full
// RFC 3339 timestamps are also accepted.
func ParseDueDate(value string) (time.Time, error) {
	t, err := time.Parse(DueDateLayout, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}

// IsOverdue reports whether the todo has a due date before now and is not done.
func (t Todo) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	due, err := ParseDueDate(*t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(now)
}

// clone returns a copy of t that shares no pointers with it.
func (t Todo) clone() Todo {
	t.CategoryID = copyString(t.CategoryID)
	t.DueDate = copyString(t.DueDate)
	t.CompletedAt = copyString(t.CompletedAt)
	return t
}

func cloneTodos(todos []Todo) []Todo {
	cloned := make([]Todo, len(todos))
	for i, t := range todos {
		cloned[i] = t.clone()
	}
	return cloned
}

// StringPtr returns a pointer to the provided string.
func StringPtr(value string) *string {
	return &value
}
