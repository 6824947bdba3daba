package todo

import (
	"math"
	"time"
)

// Stats aggregates the whole todo collection.
type Stats struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
	Overdue    int `json:"overdue"`
}

// ComputeStats counts todos by status and counts overdue todos as of now.
func ComputeStats(todos []Todo, now time.Time) Stats {
	stats := Stats{Total: len(todos)}
	for _, t := range todos {
		switch t.Status {
		case StatusTodo:
			stats.Todo++
		case StatusInProgress:
			stats.InProgress++
		case StatusDone:
			stats.Done++
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats
}

// CompletionRate returns the share of done todos as a rounded percentage.
func (s Stats) CompletionRate() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Done) / float64(s.Total) * 100))
}
