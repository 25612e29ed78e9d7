package core

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// FilterHistory narrows recent searches down to those matching query.
// Substring matches come first in recency order, followed by fuzzy matches
// ordered by score.
func FilterHistory(items []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]string, len(items))
		copy(out, items)
		return out
	}

	direct := make([]string, 0)
	isDirect := make(map[int]bool)
	lowered := strings.ToLower(query)
	for i, item := range items {
		if strings.Contains(strings.ToLower(item), lowered) {
			direct = append(direct, item)
			isDirect[i] = true
		}
	}

	matches := fuzzy.Find(query, items)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Index < matches[j].Index
		}
		return matches[i].Score > matches[j].Score
	})
	for _, match := range matches {
		if !isDirect[match.Index] {
			direct = append(direct, items[match.Index])
		}
	}
	return direct
}
