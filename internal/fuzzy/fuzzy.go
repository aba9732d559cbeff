// Package fuzzy wraps sahilm/fuzzy with the note-name matching rules used by
// the browser: in-order subsequence matching where an empty query matches
// everything.
package fuzzy

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Match reports whether every character of query appears in candidate in
// order, not necessarily contiguously. Matching ignores case.
func Match(query, candidate string) bool {
	if query == "" {
		return true
	}
	return len(fuzzy.Find(query, []string{candidate})) == 1
}

// Filter returns the candidates matching query, preserving their relative
// order. The result is a fresh slice even when query is empty.
func Filter(query string, candidates []string) []string {
	if query == "" {
		return append([]string{}, candidates...)
	}

	matches := fuzzy.Find(query, candidates)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Index < matches[j].Index
	})

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, candidates[m.Index])
	}
	return out
}

// Rank returns the candidates matching query ordered by descending score.
// Equal scores keep their original order.
func Rank(query string, candidates []string) []string {
	if query == "" {
		return append([]string{}, candidates...)
	}

	matches := fuzzy.Find(query, candidates)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
