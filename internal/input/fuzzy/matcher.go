package fuzzy

import (
	"sort"
	"strings"
)

// Item represents a searchable item.
type Item struct {
	// Text is the string to match against.
	Text string

	// Data is arbitrary data associated with this item.
	Data any
}

// Strings wraps plain strings as items.
func Strings(texts []string) []Item {
	items := make([]Item, len(texts))
	for i, s := range texts {
		items[i] = Item{Text: s}
	}
	return items
}

// Result represents a match result with scoring information.
type Result struct {
	Item Item

	// Score is the match score (higher is better).
	Score int

	// Matches contains the rune indices of matched characters.
	Matches []int
}

// Options configures the matcher behavior.
type Options struct {
	// MinScore is the minimum score for a match to be included.
	MinScore int

	// CaseSensitive enables case-sensitive matching.
	CaseSensitive bool

	// Scorer overrides DefaultWeights when set.
	Scorer Scorer
}

// DefaultOptions returns case-insensitive options with the default weights.
func DefaultOptions() Options {
	return Options{}
}

// Matcher performs fuzzy string matching. It holds no mutable state and
// is safe for concurrent use.
type Matcher struct {
	scorer  Scorer
	options Options
}

// NewMatcher creates a new fuzzy matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	scorer := opts.Scorer
	if scorer == nil {
		scorer = DefaultWeights()
	}
	return &Matcher{
		scorer:  scorer,
		options: opts,
	}
}

// Match finds items matching the query and returns results sorted by
// score, then text. A limit of zero or less returns every match.
func (m *Matcher) Match(query string, items []Item, limit int) []Result {
	query = strings.TrimSpace(query)
	if !m.options.CaseSensitive {
		query = strings.ToLower(query)
	}

	if query == "" {
		return applyLimit(emptyQueryResults(items), limit)
	}

	queryRunes := []rune(query)
	results := make([]Result, 0, len(items))
	for _, item := range items {
		score, matches := m.matchItem(queryRunes, item.Text)
		if score > m.options.MinScore {
			results = append(results, Result{
				Item:    item,
				Score:   score,
				Matches: matches,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Item.Text < results[j].Item.Text
	})

	return applyLimit(results, limit)
}

// Best returns the texts of the top limit matches.
func (m *Matcher) Best(query string, texts []string, limit int) []string {
	results := m.Match(query, Strings(texts), limit)
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Item.Text
	}
	return out
}

// matchItem scores a single item against the query using a greedy
// left-to-right scan. Returns score and matched rune indices.
func (m *Matcher) matchItem(queryRunes []rune, text string) (int, []int) {
	if text == "" || len(queryRunes) == 0 {
		return 0, nil
	}

	originalRunes := []rune(text)
	textRunes := originalRunes
	if !m.options.CaseSensitive {
		textRunes = []rune(strings.ToLower(text))
	}
	if len(textRunes) != len(originalRunes) {
		// Lowercasing changed the rune count; fall back to the original.
		textRunes = originalRunes
	}

	matches := make([]int, 0, len(queryRunes))
	queryIdx := 0
	for i := 0; i < len(textRunes) && queryIdx < len(queryRunes); i++ {
		if textRunes[i] == queryRunes[queryIdx] {
			matches = append(matches, i)
			queryIdx++
		}
	}
	if queryIdx != len(queryRunes) {
		return 0, nil
	}

	return m.scorer.Score(queryRunes, originalRunes, textRunes, matches), matches
}

func emptyQueryResults(items []Item) []Result {
	results := make([]Result, len(items))
	for i, item := range items {
		results[i] = Result{Item: item}
	}
	return results
}

func applyLimit(results []Result, limit int) []Result {
	if limit <= 0 || limit >= len(results) {
		return results
	}
	return results[:limit]
}
