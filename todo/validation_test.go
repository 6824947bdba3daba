package todo

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  error
	}{
		{"valid", "Buy milk", nil},
		{"empty", "", ErrEmptyTitle},
		{"whitespace only", " \t\n", ErrEmptyTitle},
		{"max length", strings.Repeat("a", MaxTitleLength), nil},
		{"too long", strings.Repeat("a", MaxTitleLength+1), ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if !errors.Is(err, tt.want) || (tt.want == nil && err != nil) {
				t.Errorf("ValidateTitle() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateDueDate(t *testing.T) {
	valid := []string{"2024-01-31", "2024-02-29", "2024-06-01T10:00:00Z"}
	for _, value := range valid {
		if err := ValidateDueDate(value); err != nil {
			t.Errorf("ValidateDueDate(%q) = %v, want nil", value, err)
		}
	}

	invalid := []string{"", "tomorrow", "2023-02-29", "2024/01/01"}
	for _, value := range invalid {
		if err := ValidateDueDate(value); !errors.Is(err, ErrInvalidDueDate) {
			t.Errorf("ValidateDueDate(%q) = %v, want ErrInvalidDueDate", value, err)
		}
	}
}

func TestValidateColor(t *testing.T) {
	for _, value := range []string{"#fff", "#3b82f6", "#ABCDEF"} {
		if err := ValidateColor(value); err != nil {
			t.Errorf("ValidateColor(%q) = %v, want nil", value, err)
		}
	}
	for _, value := range []string{"", "blue", "3b82f6", "#12345", "#ggg"} {
		if err := ValidateColor(value); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ValidateColor(%q) = %v, want ErrInvalidColor", value, err)
		}
	}
}

func TestValidateCategoryName(t *testing.T) {
	if err := ValidateCategoryName("Garden"); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := ValidateCategoryName("  "); !errors.Is(err, ErrEmptyCategoryName) {
		t.Errorf("expected ErrEmptyCategoryName, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"todo", StatusTodo},
		{" DONE ", StatusDone},
		{"in_progress", StatusInProgress},
		{"in-progress", StatusInProgress},
		{"In Progress", StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if err != nil || got != tt.want {
				t.Fatalf("ParseStatus(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
			}
		})
	}

	if _, err := ParseStatus("archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestParsePriority(t *testing.T) {
	if got, err := ParsePriority(" Urgent"); err != nil || got != PriorityUrgent {
		t.Fatalf("ParsePriority = %q, %v", got, err)
	}
	_, err := ParsePriority("p0")
	if !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
	if !strings.Contains(err.Error(), "urgent") {
		t.Fatalf("expected error to list valid priorities, got %q", err)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input string
		want  SortKey
	}{
		{"order", SortOrder},
		{"createdAt", SortCreatedAt},
		{"createdat", SortCreatedAt},
		{"created", SortCreatedAt},
		{"due", SortDueDate},
		{"due-date", SortDueDate},
		{"Priority", SortPriority},
		{"title", SortTitle},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			if err != nil || got != tt.want {
				t.Fatalf("ParseSortKey(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
			}
		})
	}

	if _, err := ParseSortKey("random"); !errors.Is(err, ErrInvalidSortKey) {
		t.Fatalf("expected ErrInvalidSortKey, got %v", err)
	}
}

func TestParseSortDir(t *testing.T) {
	if got, _ := ParseSortDir("DESC"); got != SortDesc {
		t.Fatalf("expected desc, got %q", got)
	}
	if got, _ := ParseSortDir("ascending"); got != SortAsc {
		t.Fatalf("expected asc, got %q", got)
	}
	if _, err := ParseSortDir("up"); !errors.Is(err, ErrInvalidSortDir) {
		t.Fatalf("expected ErrInvalidSortDir, got %v", err)
	}
}

func TestFindCategory(t *testing.T) {
	categories := DefaultCategories()

	if c, ok := FindCategory(categories, "health"); !ok || c.Name != "Health" {
		t.Fatalf("expected lookup by ID, got %+v", c)
	}
	if c, ok := FindCategory(categories, "STUDY"); !ok || c.ID != "study" {
		t.Fatalf("expected lookup by name, got %+v", c)
	}
	if _, ok := FindCategory(categories, "garden"); ok {
		t.Fatal("expected unknown category to be missing")
	}
}

func TestIDIndex_Resolve(t *testing.T) {
	index := NewIDIndex([]Todo{{ID: "0f3a9c2e"}, {ID: "0f7b1d44"}, {ID: "c9e2a001"}})

	if id, err := index.Resolve("0F3"); err != nil || id != "0f3a9c2e" {
		t.Fatalf("expected 0f3a9c2e, got %q (%v)", id, err)
	}
	if _, err := index.Resolve("0f"); !errors.Is(err, ErrAmbiguousTodoIDPrefix) {
		t.Fatalf("expected ambiguous error, got %v", err)
	}
	if _, err := index.Resolve(""); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected not found for empty prefix, got %v", err)
	}

	lengths := index.PrefixLengths()
	if lengths["0f3a9c2e"] != 3 || lengths["c9e2a001"] != 1 {
		t.Fatalf("unexpected prefix lengths %v", lengths)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	if NewID() == NewID() {
		t.Fatal("expected distinct IDs")
	}
}
