package app

import (
	"fmt"

	"github.com/dshills/keychord/internal/input/fuzzy"
	"github.com/dshills/keychord/internal/input/keymap"
)

// Bindings lists every binding of mode in table order.
func (app *Application) Bindings(mode keymap.Mode) []keymap.Entry {
	table, ok := app.dispatcher.Keymaps().Get(mode)
	if !ok {
		return nil
	}
	node, ok := table.(*keymap.Node)
	if !ok {
		return nil
	}
	return node.Bindings()
}

// FindBindings fuzzy-matches query against the keys, commands and group
// of each binding in mode, best match first. A limit of zero returns all
// matches.
func (app *Application) FindBindings(mode keymap.Mode, query string, limit int) []keymap.Entry {
	entries := app.Bindings(mode)
	items := make([]fuzzy.Item, len(entries))
	for i, e := range entries {
		items[i] = fuzzy.Item{Text: FormatBinding(e), Data: e}
	}

	results := fuzzy.NewMatcher(fuzzy.DefaultOptions()).Match(query, items, limit)
	out := make([]keymap.Entry, len(results))
	for i, r := range results {
		out[i] = r.Item.Data.(keymap.Entry)
	}
	return out
}

// FormatBinding renders an entry as "keys -> commands (group)".
func FormatBinding(e keymap.Entry) string {
	s := fmt.Sprintf("%s -> %s", e.Keys, e.Describe())
	if e.Group != "" {
		s += " (" + e.Group + ")"
	}
	return s
}
