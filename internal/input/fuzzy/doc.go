// Package fuzzy ranks strings against a short query.
//
// It backs two lookups: suggesting registered command names when a
// configuration file names an unknown one, and searching bindings by
// command name or description from the command line.
//
// A query matches a text when its runes appear in order within the text.
// Matches are ranked by:
//   - consecutive runes
//   - runes at word boundaries (after '_', '.', '-', space, or a camelCase hump)
//   - a match starting at the first rune, and an exact prefix
//   - shorter texts and smaller gaps
//
// # Usage
//
//	m := fuzzy.NewMatcher(fuzzy.DefaultOptions())
//	for _, r := range m.Match("gtdef", fuzzy.Strings(names), 3) {
//	    fmt.Println(r.Item.Text, r.Score)
//	}
package fuzzy
