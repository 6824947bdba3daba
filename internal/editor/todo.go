package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	internalstrings "github.com/amonks/todos/internal/strings"
	"github.com/amonks/todos/todo"
)

// TodoData represents the data used to render the TOML template.
type TodoData struct {
	// IsUpdate is true when editing an existing todo.
	IsUpdate bool
	// ID is the todo ID (only for updates).
	ID string
	// Title is the todo title.
	Title string
	// Priority is the todo priority (urgent, high, medium, low).
	Priority string
	// Status is the todo status (only for updates).
	Status string
	// Category is the category name, or empty for none.
	Category string
	// Due is the YYYY-MM-DD due date, or empty for none.
	Due string
	// Description is the todo description.
	Description string
}

// DefaultCreateData returns TodoData with default values for creating a new todo.
func DefaultCreateData() TodoData {
	return TodoData{
		IsUpdate: false,
		Priority: string(todo.PriorityMedium),
	}
}

// DataFromTodo creates TodoData from an existing todo for editing.
func DataFromTodo(t todo.Todo, categories []todo.Category) TodoData {
	data := TodoData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Description: t.Description,
	}
	if t.CategoryID != nil {
		data.Category = *t.CategoryID
		if category, ok := todo.CategoryByID(categories, *t.CategoryID); ok {
			data.Category = category.Name
		}
	}
	if t.DueDate != nil {
		data.Due = *t.DueDate
	}
	return data
}

var todoTemplate = template.Must(template.New("todo").Parse(`title = {{ printf "%q" .Title }}
priority = {{ printf "%q" .Priority }} # urgent, high, medium, low
{{- if .IsUpdate }}
status = {{ printf "%q" .Status }} # todo, in_progress, done
{{- end }}
category = {{ printf "%q" .Category }} # name or ID, empty for none
due = {{ printf "%q" .Due }} # YYYY-MM-DD, empty for none
---
{{ .Description }}
`))

// RenderTodoTOML renders the todo data as a TOML string for editing.
func RenderTodoTOML(data TodoData) (string, error) {
	var buf bytes.Buffer
	if err := todoTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTodo represents the parsed result from the TOML editor output.
type ParsedTodo struct {
	Title       string  `toml:"title"`
	Priority    string  `toml:"priority"`
	Status      *string `toml:"status"`
	Category    string  `toml:"category"`
	Due         string  `toml:"due"`
	Description string
}

// ParseTodoTOML parses the TOML content from the editor.
func ParseTodoTOML(content string) (*ParsedTodo, error) {
	frontmatter, body := splitFrontmatter(internalstrings.NormalizeNewlines(content))

	var parsed ParsedTodo
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Title = strings.TrimSpace(parsed.Title)
	parsed.Description = internalstrings.TrimTrailingNewlines(strings.TrimLeft(body, "\n"))
	parsed.Category = strings.TrimSpace(parsed.Category)
	parsed.Due = strings.TrimSpace(parsed.Due)

	// Validate required fields
	if err := todo.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	priority, err := todo.ParsePriority(parsed.Priority)
	if err != nil {
		return nil, err
	}
	parsed.Priority = string(priority)
	if parsed.Status != nil {
		status, err := todo.ParseStatus(*parsed.Status)
		if err != nil {
			return nil, err
		}
		normalized := string(status)
		parsed.Status = &normalized
	}
	if parsed.Due != "" {
		if err := todo.ValidateDueDate(parsed.Due); err != nil {
			return nil, err
		}
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

// EditTodo opens the editor for a todo and returns the parsed result.
// For create: pass nil for existing.
// For update: pass the existing todo.
func EditTodo(existing *todo.Todo, categories []todo.Category) (*ParsedTodo, error) {
	data := DefaultCreateData()
	if existing != nil {
		data = DataFromTodo(*existing, categories)
	}
	return EditTodoWithData(data)
}

// EditTodoWithData opens the editor with pre-populated data and returns the parsed result.
func EditTodoWithData(data TodoData) (*ParsedTodo, error) {
	content, err := RenderTodoTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "todos-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTodoTOML(string(edited))
}

// ToCreateOptions converts a ParsedTodo to todo.CreateOptions, resolving the
// category against categories.
func (p *ParsedTodo) ToCreateOptions(categories []todo.Category) (todo.CreateOptions, error) {
	opts := todo.CreateOptions{
		Description: p.Description,
		Priority:    todo.Priority(p.Priority),
	}
	if p.Category != "" {
		category, ok := todo.FindCategory(categories, p.Category)
		if !ok {
			return todo.CreateOptions{}, fmt.Errorf("%w: %s", todo.ErrCategoryNotFound, p.Category)
		}
		opts.CategoryID = todo.StringPtr(category.ID)
	}
	if p.Due != "" {
		opts.DueDate = todo.StringPtr(p.Due)
	}
	return opts, nil
}

// ToUpdateOptions converts a ParsedTodo to todo.UpdateOptions. Every field
// is written: an empty category or due date clears it.
func (p *ParsedTodo) ToUpdateOptions(categories []todo.Category) (todo.UpdateOptions, error) {
	priority := todo.Priority(p.Priority)
	opts := todo.UpdateOptions{
		Title:       &p.Title,
		Description: &p.Description,
		Priority:    &priority,
		CategoryID:  todo.Null[string](),
		DueDate:     todo.Null[string](),
	}

	if p.Status != nil {
		status := todo.Status(*p.Status)
		opts.Status = &status
	}
	if p.Category != "" {
		category, ok := todo.FindCategory(categories, p.Category)
		if !ok {
			return todo.UpdateOptions{}, fmt.Errorf("%w: %s", todo.ErrCategoryNotFound, p.Category)
		}
		opts.CategoryID = todo.Set(category.ID)
	}
	if p.Due != "" {
		opts.DueDate = todo.Set(p.Due)
	}
	return opts, nil
}
