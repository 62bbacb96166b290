package command

import (
	"sort"
	"strings"
)

// maxSuggestDistance is the largest edit distance still worth suggesting.
const maxSuggestDistance = 3

// levenshtein calculates the case-insensitive edit distance between two
// strings, rune by rune.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(
				prev[j]+1,      // deletion
				cur[j-1]+1,     // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, cur = cur, prev
	}

	return prev[len(rb)]
}

type suggestion struct {
	name     string
	distance int
}

// Suggest returns up to maxResults visible root names close to name,
// nearest first. Invisible roots are never suggested.
func (p *Processor[T]) Suggest(name string, maxResults int) []string {
	var suggestions []suggestion
	for _, root := range p.roots {
		if root.invisible {
			continue
		}
		dist := levenshtein(name, root.base)
		if dist > 0 && dist <= maxSuggestDistance {
			suggestions = append(suggestions, suggestion{name: root.base, distance: dist})
		}
	}

	// Sort by distance, then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if maxResults >= 0 && len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
