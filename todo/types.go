// Package todo implements the todo state store.
//
// Todos and categories live in memory as the canonical collection and are
// written to named persistence slots after every mutation. Presentation code
// reads derived views (filtered, sorted, with aggregate statistics) and calls
// the mutation operations:
//   - Create, Update, Delete, Toggle, Reorder, ClearCompleted for todos
//   - CreateCategory, UpdateCategory, DeleteCategory for categories
//   - View, Todos, AllTodos, Stats for querying
package todo

// Status represents the state of a todo.
type Status string

const (
	// StatusTodo indicates the todo has not been started.
	StatusTodo Status = "todo"

	// StatusInProgress indicates the todo is currently being worked on.
	StatusInProgress Status = "in_progress"

	// StatusDone indicates the todo has been completed.
	StatusDone Status = "done"

	// StatusAll matches every status in a filter.
	StatusAll Status = "all"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the importance of a todo.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium" // default
	PriorityLow    Priority = "low"

	// PriorityAll matches every priority in a filter.
	PriorityAll Priority = "all"
)

// ValidPriorities returns all valid priorities, most urgent first.
func ValidPriorities() []Priority {
	return []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority (0 = urgent).
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// SortKey selects the field a view is ordered by.
type SortKey string

const (
	SortOrder     SortKey = "order"
	SortCreatedAt SortKey = "createdAt"
	SortDueDate   SortKey = "dueDate"
	SortPriority  SortKey = "priority"
	SortTitle     SortKey = "title"
)

// ValidSortKeys returns all valid sort keys.
func ValidSortKeys() []SortKey {
	return []SortKey{SortOrder, SortCreatedAt, SortDueDate, SortPriority, SortTitle}
}

// IsValid returns true if the sort key is a known valid value.
func (k SortKey) IsValid() bool {
	for _, valid := range ValidSortKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// SortDir is the direction of a sort.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// CategoryAll matches every todo in a category filter.
const CategoryAll = "all"

// CategoryNone matches only uncategorized todos in a category filter.
const CategoryNone = ""

// FilterState selects and orders the todos shown in a view.
type FilterState struct {
	// Status is StatusAll or an exact status to match.
	Status Status

	// Priority is PriorityAll or an exact priority to match.
	Priority Priority

	// CategoryID is CategoryAll, CategoryNone, or an exact category ID.
	CategoryID string

	// Search matches title or description, case-insensitively.
	Search string

	SortKey SortKey
	SortDir SortDir
}

// DefaultFilter returns a filter that shows every todo in manual order.
func DefaultFilter() FilterState {
	return FilterState{
		Status:     StatusAll,
		Priority:   PriorityAll,
		CategoryID: CategoryAll,
		Search:     "",
		SortKey:    SortOrder,
		SortDir:    SortAsc,
	}
}
