// Package tui implements the interactive todo list.
package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/todos/todo"
)

type inputMode int

const (
	modeList inputMode = iota
	modeAdd
	modeEdit
	modeSearch
	modeHelp
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

// detailHeight is the height of the detail pane, borders included.
const detailHeight = 9

// chromeHeight counts the header, filter, help, and status lines.
const chromeHeight = 4

type model struct {
	store       *todo.Store
	feed        *feed
	seen        int
	width       int
	height      int
	list        list.Model
	input       textinput.Model
	mode        inputMode
	status      string
	statusLevel statusLevel
}

// Run shows the interactive todo list until the user quits.
func Run(store *todo.Store) error {
	if store == nil {
		return fmt.Errorf("todo store is required")
	}
	m := newModel(store, nil)
	defer m.feed.close()

	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func newModel(store *todo.Store, clock func() time.Time) model {
	f := newFeed(store, clock)

	todoList := list.New(nil, todoItemDelegate{feed: f}, 0, 0)
	todoList.SetShowTitle(false)
	todoList.SetShowStatusBar(false)
	todoList.SetFilteringEnabled(false)
	todoList.SetShowHelp(false)
	todoList.SetShowPagination(false)

	input := textinput.New()
	input.CharLimit = todo.MaxTitleLength

	m := model{
		store: store,
		feed:  f,
		list:  todoList,
		input: input,
		mode:  modeList,
	}
	m.syncItems()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	}

	if m.feed.current.version != m.seen {
		m.syncItems()
	}
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading todos..."
	}
	snap := m.feed.current
	s := snap.styles

	if m.mode == modeHelp {
		return strings.Join([]string{m.renderHeader(), "", helpText, "", s.muted.Render("press any key to return")}, "\n")
	}

	sections := []string{m.renderHeader(), m.renderFilter()}
	if len(m.list.Items()) == 0 {
		sections = append(sections, s.muted.Render(emptyMessage(snap)))
	} else {
		sections = append(sections, m.list.View())
	}
	if pane := m.renderDetail(); pane != "" {
		sections = append(sections, pane)
	}
	sections = append(sections, m.renderPrompt(), m.renderStatus())
	return strings.Join(sections, "\n")
}

func (m *model) resize() {
	listHeight := m.height - chromeHeight
	if m.showDetail() {
		listHeight -= detailHeight
	}
	m.list.SetSize(m.width, max(listHeight, 1))
}

func (m model) showDetail() bool {
	return m.height >= detailHeight+chromeHeight+3
}

// syncItems rebuilds the list from the latest snapshot, keeping the
// selection on the same todo when it is still visible.
func (m *model) syncItems() {
	selectedID := ""
	if t, ok := m.selectedTodo(); ok {
		selectedID = t.ID
	}

	snap := m.feed.current
	items := make([]list.Item, 0, len(snap.view.Todos))
	for _, t := range snap.view.Todos {
		items = append(items, todoItem{todo: t})
	}
	m.list.SetItems(items)
	m.selectByID(selectedID)
	m.seen = snap.version
}

func (m *model) selectByID(id string) {
	items := m.list.Items()
	if len(items) == 0 {
		return
	}
	for i, item := range items {
		if t, ok := item.(todoItem); ok && t.todo.ID == id {
			m.list.Select(i)
			return
		}
	}
	if m.list.Index() >= len(items) {
		m.list.Select(len(items) - 1)
	}
}

func (m model) selectedTodo() (todo.Todo, bool) {
	item, ok := m.list.SelectedItem().(todoItem)
	if !ok {
		return todo.Todo{}, false
	}
	return item.todo, true
}

func (m *model) setStatus(message string, level statusLevel) {
	m.status = message
	m.statusLevel = level
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeHelp:
		m.mode = modeList
		return m, nil
	case modeAdd, modeEdit, modeSearch:
		return m.handleInputKey(msg)
	}

	m.setStatus("", statusNone)
	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		m.mode = modeHelp
	case "a":
		return m.beginInput(modeAdd, "New todo: ", "")
	case "e", "enter":
		if t, ok := m.selectedTodo(); ok {
			m.store.SetEditingID(t.ID)
			return m.beginInput(modeEdit, "Edit: ", t.Title)
		}
	case "/":
		return m.beginInput(modeSearch, "Search: ", m.feed.current.filter.Search)
	case " ", "space", "x":
		if t, ok := m.selectedTodo(); ok {
			m.store.Toggle(t.ID)
		}
	case "i":
		m.toggleInProgress()
	case "d", "delete":
		if t, ok := m.selectedTodo(); ok {
			m.store.Delete(t.ID)
			m.setStatus("Deleted "+t.Title, statusInfo)
		}
	case "K", "shift+up":
		m.moveSelected(-1)
	case "J", "shift+down":
		m.moveSelected(1)
	case "p":
		if t, ok := m.selectedTodo(); ok {
			next := cycle(todo.ValidPriorities(), t.Priority)
			m.store.Update(t.ID, todo.UpdateOptions{Priority: &next})
		}
	case "s":
		m.updateFilter(func(f *todo.FilterState) {
			f.Status = cycle([]todo.Status{todo.StatusAll, todo.StatusTodo, todo.StatusInProgress, todo.StatusDone}, f.Status)
		})
	case "P":
		m.updateFilter(func(f *todo.FilterState) {
			f.Priority = cycle(append([]todo.Priority{todo.PriorityAll}, todo.ValidPriorities()...), f.Priority)
		})
	case "c":
		m.updateFilter(func(f *todo.FilterState) {
			f.CategoryID = cycle(categoryFilterValues(m.feed.current.categories), f.CategoryID)
		})
	case "o":
		m.updateFilter(func(f *todo.FilterState) {
			f.SortKey = cycle(todo.ValidSortKeys(), f.SortKey)
		})
	case "r":
		m.updateFilter(func(f *todo.FilterState) {
			f.SortDir = cycle([]todo.SortDir{todo.SortAsc, todo.SortDesc}, f.SortDir)
		})
	case "esc":
		m.updateFilter(func(f *todo.FilterState) {
			reset := todo.DefaultFilter()
			reset.SortKey = f.SortKey
			reset.SortDir = f.SortDir
			*f = reset
		})
	case "C":
		removed := m.store.ClearCompleted()
		m.setStatus(fmt.Sprintf("Cleared %d completed", removed), statusInfo)
	case "t":
		m.store.SetDarkMode(!m.feed.current.dark)
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) beginInput(mode inputMode, prompt, value string) (model, tea.Cmd) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m model) endInput() model {
	m.mode = modeList
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m model) handleInputKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		switch m.mode {
		case modeEdit:
			m.store.SetEditingID("")
		case modeSearch:
			m.updateFilter(func(f *todo.FilterState) { f.Search = "" })
		}
		return m.endInput(), nil
	case "enter":
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeSearch {
		value := m.input.Value()
		m.updateFilter(func(f *todo.FilterState) { f.Search = value })
	}
	return m, cmd
}

func (m model) submitInput() (model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAdd:
		if err := todo.ValidateTitle(value); err != nil {
			m.setStatus(err.Error(), statusError)
			return m, nil
		}
		opts := todo.CreateOptions{}
		if id := m.feed.current.filter.CategoryID; id != todo.CategoryAll && id != todo.CategoryNone {
			opts.CategoryID = todo.StringPtr(id)
		}
		created := m.store.Create(value, opts)
		m.syncItems()
		m.selectByID(created.ID)
		m.setStatus("Added "+created.Title, statusInfo)
	case modeEdit:
		if err := todo.ValidateTitle(value); err != nil {
			m.setStatus(err.Error(), statusError)
			return m, nil
		}
		id := m.feed.current.editingID
		m.store.Update(id, todo.UpdateOptions{Title: &value})
		m.store.SetEditingID("")
	}
	return m.endInput(), nil
}

func (m *model) toggleInProgress() {
	t, ok := m.selectedTodo()
	if !ok {
		return
	}
	next := todo.StatusInProgress
	if t.Status == todo.StatusInProgress {
		next = todo.StatusTodo
	}
	m.store.Update(t.ID, todo.UpdateOptions{Status: &next})
}

// moveSelected swaps the selected todo's manual position with its visible
// neighbour.
func (m *model) moveSelected(delta int) {
	t, ok := m.selectedTodo()
	if !ok {
		return
	}
	if m.feed.current.filter.SortKey != todo.SortOrder {
		m.setStatus("Reordering needs manual order (press o)", statusError)
		return
	}

	items := m.list.Items()
	target := m.list.Index() + delta
	if target < 0 || target >= len(items) {
		return
	}
	neighbour, ok := items[target].(todoItem)
	if !ok {
		return
	}
	m.store.Reorder(t.ID, neighbour.todo.ID)
}

func (m *model) updateFilter(change func(*todo.FilterState)) {
	filter := m.store.Filter()
	change(&filter)
	m.store.SetFilter(filter)
}

func cycle[T comparable](values []T, current T) T {
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

func categoryFilterValues(categories []todo.Category) []string {
	values := make([]string, 0, len(categories)+2)
	values = append(values, todo.CategoryAll, todo.CategoryNone)
	for _, c := range categories {
		values = append(values, c.ID)
	}
	return values
}

func categoryFilterLabel(categories []todo.Category, id string) string {
	switch id {
	case todo.CategoryAll:
		return "all"
	case todo.CategoryNone:
		return "none"
	}
	if category, ok := todo.CategoryByID(categories, id); ok {
		return category.Name
	}
	return id
}

func emptyMessage(snap snapshot) string {
	if snap.view.Stats.Total == 0 {
		return "No todos yet. Press a to add one."
	}
	return "No todos match the current filter. Press esc to reset it."
}

func (m model) renderHeader() string {
	snap := m.feed.current
	stats := snap.view.Stats
	summary := fmt.Sprintf("%d todos, %d in progress, %d done (%d%%), %d overdue",
		stats.Total, stats.InProgress, stats.Done, stats.CompletionRate(), stats.Overdue)
	return lipgloss.JoinHorizontal(lipgloss.Top, snap.styles.header.Render("Todos"), snap.styles.stats.Render(summary))
}

func (m model) renderFilter() string {
	snap := m.feed.current
	f := snap.filter
	parts := []string{
		"status: " + string(f.Status),
		"priority: " + string(f.Priority),
		"category: " + categoryFilterLabel(snap.categories, f.CategoryID),
		"sort: " + string(f.SortKey) + " " + string(f.SortDir),
	}
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", f.Search))
	}
	return snap.styles.filter.Render(strings.Join(parts, "  "))
}

func (m model) renderDetail() string {
	if !m.showDetail() {
		return ""
	}
	t, ok := m.selectedTodo()
	if !ok {
		return ""
	}
	snap := m.feed.current
	innerWidth := max(m.width-4, 1)
	body := formatDetail(t, snap.categories, snap.styles, snap.now, innerWidth)

	lines := strings.Split(body, "\n")
	if limit := detailHeight - 2; len(lines) > limit {
		lines = lines[:limit]
	}
	return snap.styles.pane.Width(innerWidth).Render(strings.Join(lines, "\n"))
}

func (m model) renderPrompt() string {
	if m.mode != modeList {
		return m.input.View()
	}
	return m.feed.current.styles.muted.Render(shortHelp)
}

func (m model) renderStatus() string {
	s := m.feed.current.styles
	switch m.statusLevel {
	case statusError:
		return s.statusErr.Render(m.status)
	case statusInfo:
		return s.statusOK.Render(m.status)
	default:
		return ""
	}
}

const shortHelp = "a add  e edit  space done  d delete  / search  s/P/c filter  o sort  ? help  q quit"

const helpText = `Keys

  j/k, up/down   move the cursor
  a              add a todo
  e, enter       edit the selected title
  space, x       toggle done
  i              toggle in progress
  p              cycle priority
  d              delete
  K/J            move up/down in manual order
  /              search titles and descriptions
  s              cycle status filter
  P              cycle priority filter
  c              cycle category filter
  o              cycle sort key
  r              reverse sort direction
  esc            reset filters
  C              clear completed todos
  t              toggle dark/light theme
  q              quit`
