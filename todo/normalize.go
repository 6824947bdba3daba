package todo

import (
	"strings"

	internalstrings "github.com/amonks/todos/internal/strings"
	"github.com/amonks/todos/internal/validation"
)

// ParseStatus normalizes user input into a Status.
// "in-progress" and "in progress" are accepted for in_progress.
func ParseStatus(value string) (Status, error) {
	normalized := internalstrings.NormalizeLowerTrimSpace(value)
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	status := Status(normalized)
	if !status.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidStatus, value, ValidStatuses())
	}
	return status, nil
}

// ParsePriority normalizes user input into a Priority.
func ParsePriority(value string) (Priority, error) {
	priority := Priority(internalstrings.NormalizeLowerTrimSpace(value))
	if !priority.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidPriority, value, ValidPriorities())
	}
	return priority, nil
}

// ParseSortKey normalizes user input into a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	trimmed := strings.TrimSpace(value)
	for _, key := range ValidSortKeys() {
		if strings.EqualFold(string(key), trimmed) {
			return key, nil
		}
	}
	switch internalstrings.NormalizeLowerTrimSpace(value) {
	case "created", "created_at", "created-at":
		return SortCreatedAt, nil
	case "due", "due_date", "due-date":
		return SortDueDate, nil
	}
	return "", validation.FormatInvalidValueError(ErrInvalidSortKey, value, ValidSortKeys())
}

// ParseSortDir normalizes user input into a SortDir.
func ParseSortDir(value string) (SortDir, error) {
	switch internalstrings.NormalizeLowerTrimSpace(value) {
	case "asc", "ascending":
		return SortAsc, nil
	case "desc", "descending":
		return SortDesc, nil
	}
	return "", validation.FormatInvalidValueError(ErrInvalidSortDir, value, []SortDir{SortAsc, SortDesc})
}
