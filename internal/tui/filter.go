package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// filterIndices returns the indices of items matching query, best match
// first. An empty query keeps every item in order.
func filterIndices(query string, items []string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]int, len(items))
		for i := range items {
			out[i] = i
		}
		return out
	}

	matches := fuzzy.Find(query, items)
	out := make([]int, len(matches))
	for i, match := range matches {
		out[i] = match.Index
	}
	return out
}

func searchText(parts ...string) string {
	return strings.Join(parts, " ")
}

func filterable(path string) bool {
	switch path {
	case pathWork, pathNotes, pathNeurons:
		return true
	}
	return false
}
