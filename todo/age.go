package todo

import (
	"time"

	internalage "github.com/amonks/todos/internal/age"
)

// AgeData computes how long ago the todo was created and whether the
// creation time is known.
func AgeData(item Todo, now time.Time) (time.Duration, bool) {
	return internalage.AgeData(parseOptionalTimestamp(&item.CreatedAt), now)
}

// UpdatedData computes how long ago the todo was last modified.
func UpdatedData(item Todo, now time.Time) (time.Duration, bool) {
	return internalage.AgeData(parseOptionalTimestamp(&item.UpdatedAt), now)
}

// DurationData computes how long the todo has been open, or how long it took
// to complete once done.
func DurationData(item Todo, now time.Time) (time.Duration, bool) {
	createdAt := parseOptionalTimestamp(&item.CreatedAt)
	if item.Status == StatusDone {
		completedAt := parseOptionalTimestamp(item.CompletedAt)
		if completedAt.IsZero() {
			return 0, false
		}
		return internalage.DurationData(createdAt, completedAt, now)
	}
	return internalage.DurationData(createdAt, time.Time{}, now)
}

func parseOptionalTimestamp(value *string) time.Time {
	if value == nil || *value == "" {
		return time.Time{}
	}
	t, err := ParseTimestamp(*value)
	if err != nil {
		return time.Time{}
	}
	return t
}
