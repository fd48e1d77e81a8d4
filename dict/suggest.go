package dict

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestions bounds Suggest's result length, per spec.md §5.
const maxSuggestions = 10

// candidate pairs a main-wordlist surface form with its edit distance to
// the queried word.
type candidate struct {
	word     string
	distance int
}

// Suggest ranks every word in the main wordlist by Levenshtein distance to
// word and returns the closest maxSuggestions, ties broken lexically for a
// deterministic result. Words in the nosuggest or forbidden lists never
// appear here, matching their names.
func (d *Dictionary) Suggest(word string) []string {
	lw := strings.ToLower(word)

	candidates := make([]candidate, 0, d.lists.main.len())
	for surface := range d.lists.main.entries {
		if surface == word {
			continue
		}
		if _, ok := d.lists.nosuggest.lookup(surface); ok {
			continue
		}
		if _, ok := d.lists.forbidden.lookup(surface); ok {
			continue
		}
		dist := levenshtein.ComputeDistance(lw, strings.ToLower(surface))
		candidates = append(candidates, candidate{word: surface, distance: dist})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].word < candidates[j].word
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out
}
