package dict

import (
	"strings"

	"github.com/steosofficial/spellkeep/morph"
)

// PersonalEntry is one parsed line of a personal-dictionary overlay: a
// stem, an optional friend stem whose rule set it borrows, optional morph
// info, and whether the leading "*" marked it forbidden.
type PersonalEntry struct {
	Stem   string
	Friend string
	Morph  []morph.Info
	Forbid bool
}

// ParsePersonal parses personal-dictionary text: "[*]stem[/friend] [morph...]"
// per line, using the same comment/blank-line filtering as the main
// dictionary parser (spec.md §4.6).
func ParsePersonal(text string) ([]PersonalEntry, error) {
	lines := extractContent(text)
	entries := make([]PersonalEntry, 0, len(lines))
	for _, line := range lines {
		head, morphPart := separateIntoParts(line)
		forbid := strings.HasPrefix(head, "*")
		if forbid {
			head = head[1:]
		}
		stem, friend, _ := strings.Cut(head, "/")

		var morphInfo []morph.Info
		if morphPart != "" {
			morphInfo = morph.ManyFromStr(morphPart)
		}

		entries = append(entries, PersonalEntry{
			Stem:   stem,
			Friend: friend,
			Morph:  morphInfo,
			Forbid: forbid,
		})
	}
	return entries, nil
}
