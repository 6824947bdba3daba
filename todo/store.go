package todo

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/collate"

	"github.com/amonks/todos/internal/state"
)

// Slots is the persistence the store reads from and writes to.
type Slots interface {
	// Raw returns the validated content of a slot, or false when the slot is
	// absent or unusable.
	Raw(key string) ([]byte, bool)

	// Save persists value under key.
	Save(key string, value any) error
}

type schemaRegistrar interface {
	RegisterSchema(key, schema string) error
}

// EventKind describes what changed in the store.
type EventKind string

const (
	EventCreated         EventKind = "created"
	EventUpdated         EventKind = "updated"
	EventDeleted         EventKind = "deleted"
	EventToggled         EventKind = "toggled"
	EventReordered       EventKind = "reordered"
	EventCleared         EventKind = "cleared"
	EventCategoryCreated EventKind = "category-created"
	EventCategoryUpdated EventKind = "category-updated"
	EventCategoryDeleted EventKind = "category-deleted"
	EventFilterChanged   EventKind = "filter-changed"
	EventDarkModeChanged EventKind = "dark-mode-changed"
	EventEditingChanged  EventKind = "editing-changed"
)

// Event is delivered to subscribers after a change has been applied and
// persisted.
type Event struct {
	Kind EventKind

	// IDs lists the todos or categories the change touched, if any.
	IDs []string
}

// OpenOptions configures a Store.
type OpenOptions struct {
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time

	// NewID generates IDs for todos and categories. Defaults to NewID.
	NewID func() string

	// Collator orders titles. Defaults to the DefaultLocale collation.
	Collator *collate.Collator

	// Logger receives persistence warnings. Defaults to discarding them.
	Logger *log.Logger

	// Filter is the initial filter. The zero value means DefaultFilter.
	Filter FilterState
}

type subscriber struct {
	id int
	fn func(Event)
}

// Store owns the todo state for one session. Every mutation is applied in
// memory, written to its slot, and then announced to subscribers. A failed
// write is logged and otherwise ignored: memory stays authoritative.
//
// A Store is not safe for concurrent use.
type Store struct {
	slots    Slots
	logger   *log.Logger
	clock    func() time.Time
	newID    func() string
	collator *collate.Collator

	collection Collection
	filter     FilterState
	darkMode   bool
	editingID  string

	subscribers []subscriber
	nextSubID   int
}

// Open loads the persisted state from slots.
//
// Missing or unusable slots fall back to an empty todo list, the default
// categories, and dark mode on. Todos left pointing at a category that did
// not load are uncategorized. If slots can validate content, the slot
// schemas are registered first.
func Open(slots Slots, opts OpenOptions) (*Store, error) {
	if registrar, ok := slots.(schemaRegistrar); ok {
		for key, schema := range SlotSchemas() {
			if err := registrar.RegisterSchema(key, schema); err != nil {
				return nil, fmt.Errorf("register schema: %w", err)
			}
		}
	}

	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = NewID
	}
	if opts.Collator == nil {
		opts.Collator = NewCollator(DefaultLocale)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Filter == (FilterState{}) {
		opts.Filter = DefaultFilter()
	}

	collection := Collection{
		Todos:      state.Load(slots, TodosKey, []Todo{}),
		Categories: state.Load(slots, CategoriesKey, DefaultCategories()),
	}
	if detached := collection.DetachUnknownCategories(); detached > 0 {
		opts.Logger.Warn("detached todos from unknown categories", "count", detached)
	}

	return &Store{
		slots:      slots,
		logger:     opts.Logger,
		clock:      opts.Clock,
		newID:      opts.NewID,
		collator:   opts.Collator,
		collection: collection,
		filter:     opts.Filter,
		darkMode:   state.Load(slots, DarkModeKey, true),
	}, nil
}

// Create adds a new todo at the end of the manual order.
func (s *Store) Create(title string, opts CreateOptions) Todo {
	todo := s.collection.CreateTodo(s.newID(), title, opts, s.clock())
	s.saveTodos()
	s.notify(EventCreated, todo.ID)
	return todo.clone()
}

// Update merges opts into the todo with the given ID. Unknown IDs are
// ignored.
func (s *Store) Update(id string, opts UpdateOptions) bool {
	if !s.collection.UpdateTodo(id, opts, s.clock()) {
		return false
	}
	s.saveTodos()
	s.notify(EventUpdated, id)
	return true
}

// Delete removes the todo with the given ID. Unknown IDs are ignored.
func (s *Store) Delete(id string) bool {
	if !s.collection.DeleteTodo(id) {
		return false
	}
	if s.editingID == id {
		s.editingID = ""
	}
	s.saveTodos()
	s.notify(EventDeleted, id)
	return true
}

// Toggle flips the todo with the given ID between done and todo.
func (s *Store) Toggle(id string) bool {
	if !s.collection.ToggleStatus(id, s.clock()) {
		return false
	}
	s.saveTodos()
	s.notify(EventToggled, id)
	return true
}

// Reorder moves fromID to toID's position in the manual order.
func (s *Store) Reorder(fromID, toID string) bool {
	if !s.collection.ReorderTodo(fromID, toID) {
		return false
	}
	s.saveTodos()
	s.notify(EventReordered, fromID, toID)
	return true
}

// ClearCompleted removes every done todo and returns how many were removed.
func (s *Store) ClearCompleted() int {
	var cleared []string
	for _, t := range s.collection.Todos {
		if t.Status == StatusDone {
			cleared = append(cleared, t.ID)
		}
	}

	removed := s.collection.ClearCompleted()
	if removed == 0 {
		return 0
	}
	s.saveTodos()
	s.notify(EventCleared, cleared...)
	return removed
}

// CreateCategory adds a new category.
func (s *Store) CreateCategory(name, color, icon string) Category {
	category := s.collection.CreateCategory(s.newID(), name, color, icon)
	s.saveCategories()
	s.notify(EventCategoryCreated, category.ID)
	return category
}

// UpdateCategory edits the category with the given ID.
func (s *Store) UpdateCategory(id string, upd CategoryUpdate) bool {
	if !s.collection.UpdateCategory(id, upd) {
		return false
	}
	s.saveCategories()
	s.notify(EventCategoryUpdated, id)
	return true
}

// DeleteCategory removes a category and uncategorizes every todo that
// referenced it.
func (s *Store) DeleteCategory(id string) bool {
	removed, detached := s.collection.DeleteCategory(id)
	if !removed && detached == 0 {
		return false
	}
	s.saveCategories()
	if detached > 0 {
		s.saveTodos()
	}
	if s.filter.CategoryID == id {
		s.filter.CategoryID = CategoryAll
	}
	s.notify(EventCategoryDeleted, id)
	return removed
}

// View returns the todos visible under the current filter plus statistics
// over every todo.
func (s *Store) View() View {
	view := DeriveView(s.collection.Todos, s.filter, s.clock(), s.collator)
	view.Todos = cloneTodos(view.Todos)
	return view
}

// Todos returns the todos visible under the current filter.
func (s *Store) Todos() []Todo {
	return s.View().Todos
}

// AllTodos returns every todo in manual order.
func (s *Store) AllTodos() []Todo {
	return cloneTodos(s.collection.ManualOrder())
}

// Categories returns every category.
func (s *Store) Categories() []Category {
	return slices.Clone(s.collection.Categories)
}

// Stats returns statistics over every todo.
func (s *Store) Stats() Stats {
	return ComputeStats(s.collection.Todos, s.clock())
}

// Todo returns the todo with the given ID.
func (s *Store) Todo(id string) (Todo, bool) {
	i := s.collection.todoIndex(id)
	if i < 0 {
		return Todo{}, false
	}
	return s.collection.Todos[i].clone(), true
}

// ResolveID returns the full ID of the todo a unique prefix identifies.
func (s *Store) ResolveID(prefix string) (string, error) {
	return NewIDIndex(s.collection.Todos).Resolve(prefix)
}

// IDIndex returns an index over every todo ID.
func (s *Store) IDIndex() IDIndex {
	return NewIDIndex(s.collection.Todos)
}

// ResolveCategory finds a category by ID or case-insensitive name.
func (s *Store) ResolveCategory(value string) (Category, error) {
	category, ok := FindCategory(s.collection.Categories, value)
	if !ok {
		return Category{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, value)
	}
	return category, nil
}

// Filter returns the current filter.
func (s *Store) Filter() FilterState {
	return s.filter
}

// SetFilter replaces the current filter. Filters are session state and are
// not persisted.
func (s *Store) SetFilter(filter FilterState) {
	if filter == s.filter {
		return
	}
	s.filter = filter
	s.notify(EventFilterChanged)
}

// DarkMode reports whether the dark theme is selected.
func (s *Store) DarkMode() bool {
	return s.darkMode
}

// SetDarkMode selects the dark or light theme.
func (s *Store) SetDarkMode(dark bool) {
	s.darkMode = dark
	if err := s.slots.Save(DarkModeKey, dark); err != nil {
		s.logger.Warn("failed to persist slot", "key", DarkModeKey, "err", err)
	}
	s.notify(EventDarkModeChanged)
}

// EditingID returns the ID of the todo being edited, or "".
func (s *Store) EditingID() string {
	return s.editingID
}

// SetEditingID marks a todo as being edited. Pass "" to stop editing.
func (s *Store) SetEditingID(id string) {
	if id == s.editingID {
		return
	}
	s.editingID = id
	s.notify(EventEditingChanged, id)
}

// Subscribe registers fn to be called after every change. The returned
// function unregisters it.
func (s *Store) Subscribe(fn func(Event)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

func (s *Store) notify(kind EventKind, ids ...string) {
	event := Event{Kind: kind, IDs: ids}
	for _, sub := range slices.Clone(s.subscribers) {
		sub.fn(event)
	}
}

func (s *Store) saveTodos() {
	todos := s.collection.Todos
	if todos == nil {
		todos = []Todo{}
	}
	if err := s.slots.Save(TodosKey, todos); err != nil {
		s.logger.Warn("failed to persist slot", "key", TodosKey, "err", err)
	}
}

func (s *Store) saveCategories() {
	categories := s.collection.Categories
	if categories == nil {
		categories = []Category{}
	}
	if err := s.slots.Save(CategoriesKey, categories); err != nil {
		s.logger.Warn("failed to persist slot", "key", CategoriesKey, "err", err)
	}
}
