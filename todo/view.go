package todo

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the locale used to collate titles when none is configured.
const DefaultLocale = "ja"

// View is the derived output presentation code renders: the filtered and
// sorted todos plus statistics over the whole collection.
type View struct {
	Todos []Todo
	Stats Stats
}

// NewCollator returns a title collator for the given BCP 47 locale.
// Unknown locales fall back to the root collation order.
func NewCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return collate.New(tag)
}

// DeriveView filters and sorts todos according to filter. Stats are computed
// over every todo, not just the ones that pass the filter.
//
// collator may be nil, in which case titles compare bytewise.
func DeriveView(todos []Todo, filter FilterState, now time.Time, collator *collate.Collator) View {
	return View{
		Todos: SortTodos(FilterTodos(todos, filter), filter.SortKey, filter.SortDir, collator),
		Stats: ComputeStats(todos, now),
	}
}

// FilterTodos returns the todos that pass every condition of filter.
func FilterTodos(todos []Todo, filter FilterState) []Todo {
	query := strings.ToLower(filter.Search)

	result := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if filter.Status != StatusAll && filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != PriorityAll && filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if !matchesCategory(t, filter.CategoryID) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func matchesCategory(t Todo, categoryID string) bool {
	switch categoryID {
	case CategoryAll:
		return true
	case CategoryNone:
		return t.CategoryID == nil
	default:
		return t.CategoryID != nil && *t.CategoryID == categoryID
	}
}

// SortTodos returns a stably sorted copy of todos.
//
// Todos without a due date sort after every dated todo in both directions:
// the direction only flips comparisons between two dated todos.
func SortTodos(todos []Todo, key SortKey, dir SortDir, collator *collate.Collator) []Todo {
	sorted := slices.Clone(todos)
	slices.SortStableFunc(sorted, func(a, b Todo) int {
		if key == SortDueDate {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return 0
			case a.DueDate == nil:
				return 1
			case b.DueDate == nil:
				return -1
			}
		}
		result := compareTodos(a, b, key, collator)
		if dir == SortDesc {
			return -result
		}
		return result
	})
	return sorted
}

func compareTodos(a, b Todo, key SortKey, collator *collate.Collator) int {
	switch key {
	case SortCreatedAt:
		return strings.Compare(a.CreatedAt, b.CreatedAt)
	case SortDueDate:
		return strings.Compare(*a.DueDate, *b.DueDate)
	case SortPriority:
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	case SortTitle:
		if collator == nil {
			return strings.Compare(a.Title, b.Title)
		}
		return collator.CompareString(a.Title, b.Title)
	default:
		return cmp.Compare(a.Order, b.Order)
	}
}
