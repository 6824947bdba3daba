package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/amonks/todos/internal/config"
	"github.com/amonks/todos/internal/testsupport"
	"github.com/amonks/todos/todo"
)

func TestResolveDescriptionFromStdin(t *testing.T) {
	cases := []struct {
		name string
		desc string
		in   string
		want string
	}{
		{
			name: "stdin with newline",
			desc: "-",
			in:   "Hello from stdin\n",
			want: "Hello from stdin",
		},
		{
			name: "stdin without newline",
			desc: "-",
			in:   "No newline",
			want: "No newline",
		},
		{
			name: "stdin with multiple newlines",
			desc: "-",
			in:   "Trim me\n\n\r\n",
			want: "Trim me",
		},
		{
			name: "literal description",
			desc: "Already set",
			in:   "ignored",
			want: "Already set",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveDescriptionFromStdin(tc.desc, strings.NewReader(tc.in))
			if err != nil {
				t.Fatalf("resolve description: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestShouldUseUpdateEditor(t *testing.T) {
	cases := []struct {
		name        string
		hasFlags    bool
		edit        bool
		noEdit      bool
		interactive bool
		want        bool
	}{
		{name: "edit flag wins", hasFlags: true, edit: true, want: true},
		{name: "no-edit flag wins", noEdit: true, interactive: true, want: false},
		{name: "flags skip editor", hasFlags: true, interactive: true, want: false},
		{name: "interactive without flags", interactive: true, want: true},
		{name: "non-interactive without flags", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := shouldUseUpdateEditor(tc.hasFlags, tc.edit, tc.noEdit, tc.interactive)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNextDarkMode(t *testing.T) {
	cases := []struct {
		current bool
		arg     string
		want    bool
	}{
		{current: false, arg: "dark", want: true},
		{current: true, arg: "light", want: false},
		{current: true, arg: "Toggle", want: false},
		{current: false, arg: "toggle", want: true},
	}

	for _, tc := range cases {
		got, err := nextDarkMode(tc.current, tc.arg)
		if err != nil {
			t.Fatalf("nextDarkMode(%v, %q): %v", tc.current, tc.arg, err)
		}
		if got != tc.want {
			t.Errorf("nextDarkMode(%v, %q) = %v, want %v", tc.current, tc.arg, got, tc.want)
		}
	}

	if _, err := nextDarkMode(true, "sepia"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestInitialFilter(t *testing.T) {
	cfg := config.Defaults()
	cfg.View.SortKey = "due"
	cfg.View.SortDir = "descending"

	filter, err := initialFilter(&cfg)
	if err != nil {
		t.Fatalf("initial filter: %v", err)
	}
	if filter.SortKey != todo.SortDueDate || filter.SortDir != todo.SortDesc {
		t.Fatalf("unexpected sort %s %s", filter.SortKey, filter.SortDir)
	}
	if filter.Status != todo.StatusAll || filter.CategoryID != todo.CategoryAll {
		t.Fatalf("expected default filters, got %+v", filter)
	}

	cfg.View.SortKey = "colour"
	if _, err := initialFilter(&cfg); err == nil || !strings.Contains(err.Error(), "view.sort-key") {
		t.Fatalf("expected sort-key error, got %v", err)
	}
}

func TestResolveConfigPrecedence(t *testing.T) {
	testsupport.SetupTestHome(t)
	restoreGlobals(t)

	projectDir := t.TempDir()
	content := "[store]\nbackend = \"sqlite\"\n\n[log]\nlevel = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(projectDir, config.ProjectFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := resolveConfig(projectDir)
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	if cfg.Store.Backend != "sqlite" || cfg.Log.Level != "debug" {
		t.Fatalf("expected project config, got %+v", cfg)
	}

	t.Setenv("TODOS_BACKEND", "memory")
	cfg, err = resolveConfig(projectDir)
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	if cfg.Store.Backend != "memory" {
		t.Fatalf("expected environment to override config, got %q", cfg.Store.Backend)
	}

	globalBackend = "file"
	globalLogLevel = "error"
	cfg, err = resolveConfig(projectDir)
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	if cfg.Store.Backend != "file" || cfg.Log.Level != "error" {
		t.Fatalf("expected flags to override environment, got %+v", cfg)
	}
}

func restoreGlobals(t *testing.T) {
	t.Helper()
	dataDir, backend, level := globalDataDir, globalBackend, globalLogLevel
	globalDataDir, globalBackend, globalLogLevel = "", "", ""
	t.Cleanup(func() {
		globalDataDir, globalBackend, globalLogLevel = dataDir, backend, level
	})
}

func TestFormatTodoTablePreservesAlignmentWithANSI(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	created := todo.FormatTimestamp(now.Add(-2 * time.Hour))
	todos := []todo.Todo{
		{ID: "abc123", Title: "First item", Status: todo.StatusTodo, Priority: todo.PriorityHigh, CreatedAt: created, UpdatedAt: created},
		{ID: "abd456", Title: "Second item", Status: todo.StatusInProgress, Priority: todo.PriorityUrgent, CategoryID: todo.StringPtr("work"), CreatedAt: created, UpdatedAt: created},
	}
	categories := todo.DefaultCategories()

	plain := formatTodoTable(todos, categories, func(id string) string { return id }, false, now)
	colored := formatTodoTable(todos, categories, func(id string) string {
		return "\x1b[1m\x1b[36m" + id[:3] + "\x1b[0m" + id[3:]
	}, true, now)

	if ansi.Strip(colored) != ansi.Strip(plain) {
		t.Fatalf("expected ANSI output to align with plain output\nplain:\n%s\nansi:\n%s", plain, colored)
	}
	if !strings.Contains(plain, "2h") {
		t.Fatalf("expected age column, got:\n%s", plain)
	}
	if !strings.Contains(plain, "Work") {
		t.Fatalf("expected category column, got:\n%s", plain)
	}
}

func TestFormatTodoDue(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		todo todo.Todo
		want string
	}{
		{name: "none", todo: todo.Todo{Status: todo.StatusTodo}, want: "-"},
		{name: "future", todo: todo.Todo{Status: todo.StatusTodo, DueDate: todo.StringPtr("2024-06-03")}, want: "in 2d"},
		{name: "overdue", todo: todo.Todo{Status: todo.StatusTodo, DueDate: todo.StringPtr("2024-05-30")}, want: "2d overdue"},
		{name: "done shows the date", todo: todo.Todo{Status: todo.StatusDone, DueDate: todo.StringPtr("2024-05-30")}, want: "2024-05-30"},
		{name: "unparseable", todo: todo.Todo{Status: todo.StatusTodo, DueDate: todo.StringPtr("soon")}, want: "soon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatTodoDue(tc.todo, now); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLogHighlighterShortensIDs(t *testing.T) {
	highlight := logHighlighter(map[string]int{"3f2a1b4c-0000-4000-8000-000000000000": 2}, func(id string, prefix int) string {
		return id + ":" + string(rune('0'+prefix))
	})

	if got := highlight("3f2a1b4c-0000-4000-8000-000000000000"); got != "3f2a1b4c:2" {
		t.Fatalf("unexpected highlight %q", got)
	}
	if got := highlight(""); got != "" {
		t.Fatalf("expected empty id untouched, got %q", got)
	}
}

func TestFormatStats(t *testing.T) {
	output := formatStats(todo.Stats{Total: 3, Todo: 1, InProgress: 1, Done: 1, Overdue: 0})

	if !strings.Contains(output, "COMPLETE") || !strings.Contains(output, "33%") {
		t.Fatalf("unexpected stats output:\n%s", output)
	}
}

func TestFormatCategoryTableCountsTodos(t *testing.T) {
	todos := []todo.Todo{
		{ID: "a", CategoryID: todo.StringPtr("work")},
		{ID: "b", CategoryID: todo.StringPtr("work")},
		{ID: "c"},
	}

	output := formatCategoryTable(todo.DefaultCategories()[:1], todos, false)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got:\n%s", output)
	}
	fields := strings.Fields(lines[1])
	if fields[0] != "work" || fields[len(fields)-1] != "2" {
		t.Fatalf("unexpected row %q", lines[1])
	}
}
