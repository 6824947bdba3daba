package state

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Slots reads and writes named JSON values in a Backend.
type Slots struct {
	backend Backend
	schemas map[string]*jsonschema.Schema
	logger  *log.Logger
}

// NewSlots wraps backend. A nil logger discards warnings.
func NewSlots(backend Backend, logger *log.Logger) *Slots {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Slots{
		backend: backend,
		schemas: make(map[string]*jsonschema.Schema),
		logger:  logger,
	}
}

// RegisterSchema compiles a JSON Schema that content stored under key must
// satisfy to be loaded.
func (s *Slots) RegisterSchema(key, schema string) error {
	compiler := jsonschema.NewCompiler()
	url := "https://todos.local/schemas/" + SanitizeKey(key) + ".json"
	if err := compiler.AddResource(url, strings.NewReader(schema)); err != nil {
		return fmt.Errorf("add schema for %s: %w", key, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("compile schema for %s: %w", key, err)
	}
	s.schemas[key] = compiled
	return nil
}

// Raw returns the content stored under key if it is present, readable,
// well-formed JSON, and satisfies the key's schema. Anything else is
// reported as absent and logged.
func (s *Slots) Raw(key string) ([]byte, bool) {
	data, ok, err := s.backend.Get(key)
	if err != nil {
		s.logger.Warn("discarding unreadable slot", "key", key, "err", err)
		return nil, false
	}
	if !ok || len(strings.TrimSpace(string(data))) == 0 {
		return nil, false
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		s.logger.Warn("discarding malformed slot", "key", key, "err", err)
		return nil, false
	}

	if schema, ok := s.schemas[key]; ok {
		if err := schema.Validate(decoded); err != nil {
			s.logger.Warn("discarding invalid slot", "key", key, "err", firstSchemaError(err))
			return nil, false
		}
	}

	return data, true
}

// Save marshals value and stores it under key.
func (s *Slots) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.backend.Put(key, data); err != nil {
		return err
	}
	return nil
}

// Close closes the underlying backend.
func (s *Slots) Close() error {
	return s.backend.Close()
}

// Reader is the read half of Slots.
type Reader interface {
	Raw(key string) ([]byte, bool)
}

// Load returns the value stored under key, or fallback when the slot is
// absent or its content cannot be decoded into T.
func Load[T any](r Reader, key string, fallback T) T {
	data, ok := r.Raw(key)
	if !ok {
		return fallback
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return fallback
	}
	return value
}

// firstSchemaError returns the most specific cause of a validation failure.
func firstSchemaError(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	location := ve.InstanceLocation
	if location == "" {
		location = "/"
	}
	return location + ": " + ve.Message
}
