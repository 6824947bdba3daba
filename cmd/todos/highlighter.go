package main

import (
	"github.com/amonks/todos/internal/ui"
	"github.com/amonks/todos/todo"
)

// minDisplayIDLength keeps short IDs readable when the unique prefix is a
// single character.
const minDisplayIDLength = 8

func logHighlighter(prefixLengths map[string]int, highlight func(string, int) string) func(string) string {
	if prefixLengths == nil {
		prefixLengths = map[string]int{}
	}
	return func(id string) string {
		if id == "" {
			return id
		}
		prefixLen := ui.PrefixLength(prefixLengths, id)
		return highlight(ui.ShortID(id, prefixLen, minDisplayIDLength), prefixLen)
	}
}

func storeHighlighter(store *todo.Store) func(string) string {
	return logHighlighter(store.IDIndex().PrefixLengths(), ui.HighlightID)
}
