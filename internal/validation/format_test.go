package validation

import (
	"errors"
	"testing"
)

type sample string

const (
	first  sample = "first"
	second sample = "second"
)

func TestFormatValidValues(t *testing.T) {
	got := FormatValidValues([]sample{first, second})
	want := "first, second"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatValidValuesEmpty(t *testing.T) {
	if got := FormatValidValues([]sample(nil)); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestFormatInvalidValueError(t *testing.T) {
	base := errors.New("invalid sample")
	err := FormatInvalidValueError(base, "bad", []sample{first, second})
	if !errors.Is(err, base) {
		t.Fatalf("expected error to wrap %v", base)
	}

	want := "invalid sample: \"bad\" (expected first, second)"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
