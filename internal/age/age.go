// Package age computes elapsed times for display.
package age

import "time"

// AgeData returns how long ago then was and whether then is set.
// Times in the future report a zero age.
func AgeData(then, now time.Time) (time.Duration, bool) {
	if then.IsZero() {
		return 0, false
	}
	return max(now.Sub(then), 0), true
}

// DurationData returns the time between start and end. An unset end means
// the span is still open and is measured up to now.
func DurationData(start, end, now time.Time) (time.Duration, bool) {
	if start.IsZero() {
		return 0, false
	}
	if end.IsZero() {
		end = now
	}
	return max(end.Sub(start), 0), true
}
