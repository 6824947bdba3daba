package todo

import (
	"errors"
	"fmt"
	"regexp"

	internalstrings "github.com/amonks/todos/internal/strings"
)

// MaxTitleLength is the maximum allowed length for a todo title.
const MaxTitleLength = 500

var (
	// ErrEmptyTitle is returned when a todo title is empty or whitespace.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a todo title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidSortKey is returned when an invalid sort key is provided.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrInvalidSortDir is returned when an invalid sort direction is provided.
	ErrInvalidSortDir = errors.New("invalid sort direction")

	// ErrInvalidDueDate is returned when a due date cannot be parsed.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrInvalidColor is returned when a category color is not a hex color.
	ErrInvalidColor = errors.New("invalid color")

	// ErrEmptyCategoryName is returned when a category name is empty.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrTodoNotFound is returned when a todo with the given ID doesn't exist.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrAmbiguousTodoIDPrefix is returned when an ID prefix matches multiple todos.
	ErrAmbiguousTodoIDPrefix = errors.New("ambiguous todo ID prefix")

	// ErrCategoryNotFound is returned when a category doesn't exist.
	ErrCategoryNotFound = errors.New("category not found")
)

// The store accepts whatever it is given. These checks belong to the
// presentation layer, which runs them before calling into the store.

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if internalstrings.IsBlank(title) {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateDueDate checks that value is a YYYY-MM-DD date.
func ValidateDueDate(value string) error {
	if _, err := ParseDueDate(value); err != nil {
		return fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDueDate, value)
	}
	return nil
}

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor checks that value is a #rgb or #rrggbb color.
func ValidateColor(value string) error {
	if !hexColorPattern.MatchString(value) {
		return fmt.Errorf("%w: %q (expected #rrggbb)", ErrInvalidColor, value)
	}
	return nil
}

// ValidateCategoryName checks if the category name is valid.
func ValidateCategoryName(name string) error {
	if internalstrings.IsBlank(name) {
		return ErrEmptyCategoryName
	}
	return nil
}
