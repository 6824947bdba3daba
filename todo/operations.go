package todo

import (
	"cmp"
	"slices"
	"time"
)

// Collection is the canonical state: every todo and every category.
//
// Its methods are the only way state changes. None of them validate input
// and none of them fail: an unknown ID makes the operation a no-op, reported
// through the returned bool.
type Collection struct {
	Todos      []Todo
	Categories []Category
}

// CreateOptions configures a new todo.
type CreateOptions struct {
	// Description provides additional context.
	Description string

	// Priority defaults to PriorityMedium when empty.
	Priority Priority

	// CategoryID references a category; nil leaves the todo uncategorized.
	CategoryID *string

	// DueDate is a YYYY-MM-DD date; nil means no due date.
	DueDate *string
}

// UpdateOptions configures fields to update on a todo.
// Nil pointers and unset Optionals mean "don't update this field".
type UpdateOptions struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	CategoryID  Optional[string]
	DueDate     Optional[string]
	Order       *int
}

// CategoryUpdate configures fields to update on a category.
type CategoryUpdate struct {
	Name  *string
	Color *string
	Icon  *string
}

// CreateTodo appends a new todo after every existing one.
func (c *Collection) CreateTodo(id, title string, opts CreateOptions, now time.Time) Todo {
	maxOrder := -1
	for _, t := range c.Todos {
		maxOrder = max(maxOrder, t.Order)
	}

	priority := opts.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	timestamp := FormatTimestamp(now)
	todo := Todo{
		ID:          id,
		Title:       title,
		Description: opts.Description,
		Status:      StatusTodo,
		Priority:    priority,
		CategoryID:  copyString(opts.CategoryID),
		DueDate:     copyString(opts.DueDate),
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
		CompletedAt: nil,
		Order:       maxOrder + 1,
	}

	c.Todos = append(slices.Clone(c.Todos), todo)
	return todo
}

// UpdateTodo merges opts into the todo with the given ID.
//
// completedAt follows the status only when opts sets a status: entering done
// stamps it, leaving done clears it.
func (c *Collection) UpdateTodo(id string, opts UpdateOptions, now time.Time) bool {
	i := c.todoIndex(id)
	if i < 0 {
		return false
	}

	todos := slices.Clone(c.Todos)
	t := todos[i]
	previousStatus := t.Status

	if opts.Title != nil {
		t.Title = *opts.Title
	}
	if opts.Description != nil {
		t.Description = *opts.Description
	}
	if opts.Status != nil {
		t.Status = *opts.Status
	}
	if opts.Priority != nil {
		t.Priority = *opts.Priority
	}
	if opts.CategoryID.IsSet() {
		t.CategoryID = opts.CategoryID.Value()
	}
	if opts.DueDate.IsSet() {
		t.DueDate = opts.DueDate.Value()
	}
	if opts.Order != nil {
		t.Order = *opts.Order
	}

	timestamp := FormatTimestamp(now)
	t.UpdatedAt = timestamp
	if opts.Status != nil {
		t.CompletedAt = completedAtForTransition(previousStatus, t.Status, t.CompletedAt, timestamp)
	}

	todos[i] = t
	c.Todos = todos
	return true
}

// DeleteTodo removes the todo with the given ID.
func (c *Collection) DeleteTodo(id string) bool {
	i := c.todoIndex(id)
	if i < 0 {
		return false
	}
	c.Todos = slices.Delete(slices.Clone(c.Todos), i, i+1)
	return true
}

// ToggleStatus flips a todo between done and todo. Any status other than
// done becomes done.
func (c *Collection) ToggleStatus(id string, now time.Time) bool {
	i := c.todoIndex(id)
	if i < 0 {
		return false
	}

	next := StatusDone
	if c.Todos[i].Status == StatusDone {
		next = StatusTodo
	}
	return c.UpdateTodo(id, UpdateOptions{Status: &next}, now)
}

// ReorderTodo moves the todo fromID to the position toID occupies in the
// manual sequence, then renumbers every todo 0..N-1.
//
// The moved todo is removed first and reinserted at toID's original index,
// so it lands exactly where toID was and toID shifts one step toward the
// moved todo's old slot.
func (c *Collection) ReorderTodo(fromID, toID string) bool {
	todos := slices.Clone(c.Todos)
	slices.SortStableFunc(todos, func(a, b Todo) int {
		return cmp.Compare(a.Order, b.Order)
	})

	fromIdx := slices.IndexFunc(todos, func(t Todo) bool { return t.ID == fromID })
	toIdx := slices.IndexFunc(todos, func(t Todo) bool { return t.ID == toID })
	if fromIdx < 0 || toIdx < 0 {
		return false
	}

	moved := todos[fromIdx]
	todos = slices.Delete(todos, fromIdx, fromIdx+1)
	todos = slices.Insert(todos, toIdx, moved)

	for i := range todos {
		todos[i].Order = i
	}
	c.Todos = todos
	return true
}

// ClearCompleted removes every done todo and returns how many were removed.
// The remaining todos keep their relative order.
func (c *Collection) ClearCompleted() int {
	remaining := make([]Todo, 0, len(c.Todos))
	for _, t := range c.Todos {
		if t.Status != StatusDone {
			remaining = append(remaining, t)
		}
	}
	removed := len(c.Todos) - len(remaining)
	if removed > 0 {
		c.Todos = remaining
	}
	return removed
}

// CreateCategory appends a new category.
func (c *Collection) CreateCategory(id, name, color, icon string) Category {
	category := Category{ID: id, Name: name, Color: color, Icon: icon}
	c.Categories = append(slices.Clone(c.Categories), category)
	return category
}

// UpdateCategory edits the category with the given ID.
func (c *Collection) UpdateCategory(id string, upd CategoryUpdate) bool {
	i := slices.IndexFunc(c.Categories, func(cat Category) bool { return cat.ID == id })
	if i < 0 {
		return false
	}

	categories := slices.Clone(c.Categories)
	if upd.Name != nil {
		categories[i].Name = *upd.Name
	}
	if upd.Color != nil {
		categories[i].Color = *upd.Color
	}
	if upd.Icon != nil {
		categories[i].Icon = *upd.Icon
	}
	c.Categories = categories
	return true
}

// DeleteCategory removes a category and detaches every todo that referenced
// it. Both collections are replaced together. It reports whether the
// category existed and how many todos were detached.
func (c *Collection) DeleteCategory(id string) (removed bool, detached int) {
	categories := slices.DeleteFunc(slices.Clone(c.Categories), func(cat Category) bool {
		return cat.ID == id
	})
	removed = len(categories) != len(c.Categories)

	todos := slices.Clone(c.Todos)
	for i := range todos {
		if todos[i].CategoryID != nil && *todos[i].CategoryID == id {
			todos[i].CategoryID = nil
			detached++
		}
	}

	c.Categories = categories
	c.Todos = todos
	return removed, detached
}

// DetachUnknownCategories clears every categoryId that names no existing
// category and returns how many todos changed.
func (c *Collection) DetachUnknownCategories() int {
	detached := 0
	todos := slices.Clone(c.Todos)
	for i := range todos {
		if todos[i].CategoryID == nil {
			continue
		}
		if _, ok := CategoryByID(c.Categories, *todos[i].CategoryID); !ok {
			todos[i].CategoryID = nil
			detached++
		}
	}
	if detached > 0 {
		c.Todos = todos
	}
	return detached
}

// ManualOrder returns the todos sorted by their order field.
func (c *Collection) ManualOrder() []Todo {
	todos := slices.Clone(c.Todos)
	slices.SortStableFunc(todos, func(a, b Todo) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return todos
}

func (c *Collection) todoIndex(id string) int {
	return slices.IndexFunc(c.Todos, func(t Todo) bool { return t.ID == id })
}

func completedAtForTransition(from, to Status, current *string, timestamp string) *string {
	switch {
	case to == StatusDone && from != StatusDone:
		return &timestamp
	case to != StatusDone && from == StatusDone:
		return nil
	default:
		return current
	}
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
