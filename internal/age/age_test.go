package age

import (
	"testing"
	"time"
)

func TestAgeData(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		then time.Time
		want time.Duration
		ok   bool
	}{
		{name: "past", then: now.Add(-10 * time.Minute), want: 10 * time.Minute, ok: true},
		{name: "now", then: now, want: 0, ok: true},
		{name: "future clamps", then: now.Add(time.Hour), want: 0, ok: true},
		{name: "zero", then: time.Time{}, want: 0, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AgeData(tc.then, now)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("expected (%s, %v), got (%s, %v)", tc.want, tc.ok, got, ok)
			}
		})
	}
}

func TestDurationData(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(-10 * time.Minute)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  time.Duration
		ok    bool
	}{
		{name: "closed span", start: start, end: start.Add(3 * time.Minute), want: 3 * time.Minute, ok: true},
		{name: "open span uses now", start: start, want: 10 * time.Minute, ok: true},
		{name: "end before start clamps", start: start, end: start.Add(-time.Minute), want: 0, ok: true},
		{name: "missing start", end: now, want: 0, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DurationData(tc.start, tc.end, now)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("expected (%s, %v), got (%s, %v)", tc.want, tc.ok, got, ok)
			}
		})
	}
}
