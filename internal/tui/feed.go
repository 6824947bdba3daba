package tui

import (
	"time"

	"github.com/amonks/todos/todo"
)

// snapshot is everything the view renders from the store.
type snapshot struct {
	version    int
	view       todo.View
	categories []todo.Category
	filter     todo.FilterState
	dark       bool
	editingID  string
	now        time.Time
	styles     styles
}

// feed keeps a snapshot of the store current. The store calls back into the
// feed synchronously after each change, so a snapshot read after a mutation
// already reflects it.
type feed struct {
	store       *todo.Store
	clock       func() time.Time
	current     snapshot
	unsubscribe func()
}

func newFeed(store *todo.Store, clock func() time.Time) *feed {
	if clock == nil {
		clock = time.Now
	}
	f := &feed{store: store, clock: clock}
	f.reload(todo.Event{})
	f.unsubscribe = store.Subscribe(f.reload)
	return f
}

func (f *feed) reload(todo.Event) {
	f.current = snapshot{
		version:    f.current.version + 1,
		view:       f.store.View(),
		categories: f.store.Categories(),
		filter:     f.store.Filter(),
		dark:       f.store.DarkMode(),
		editingID:  f.store.EditingID(),
		now:        f.clock(),
	}
	f.current.styles = newStyles(f.current.dark)
}

func (f *feed) close() {
	if f.unsubscribe != nil {
		f.unsubscribe()
		f.unsubscribe = nil
	}
}
