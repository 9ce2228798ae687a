package dispatchers

import (
	"cmp"
	"slices"
	"strings"
)

const maxSuggestionDistance = 3

// levenshtein is the case-insensitive edit distance between a and b.
func levenshtein(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// FindSimilarCommands returns up to maxResults children of node whose names
// are close to input, closest first.
func FindSimilarCommands(input string, node *DispatchNode, maxResults int) []string {
	if node == nil {
		return nil
	}

	type candidate struct {
		name     string
		distance int
	}

	var found []candidate
	for name := range node.Children {
		if d := levenshtein(input, name); d > 0 && d <= maxSuggestionDistance {
			found = append(found, candidate{name, d})
		}
	}

	slices.SortFunc(found, func(a, b candidate) int {
		return cmp.Or(cmp.Compare(a.distance, b.distance), strings.Compare(a.name, b.name))
	})

	if len(found) > maxResults {
		found = found[:maxResults]
	}

	names := make([]string, len(found))
	for i, c := range found {
		names[i] = c.name
	}
	return names
}
