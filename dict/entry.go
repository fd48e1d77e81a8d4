package dict

import (
	"strconv"
	"strings"

	"github.com/steosofficial/spellkeep/affix"
	"github.com/steosofficial/spellkeep/morph"
)

// Entry is one parsed line of a dictionary file: a stem, the flags
// attached to it, and any morphological info carried on the same line.
type Entry struct {
	Stem  string
	Flags []affix.Flag
	Morph []morph.Info
}

// ParseDictionary splits dictionary-file text into Entry values, per
// spec.md §4.6: tab-prefixed lines, "#"-to-end-of-line comments, and blank
// lines are ignored; if the first surviving line is a bare non-negative
// integer it's a capacity hint and is dropped rather than treated as an
// entry.
func ParseDictionary(text string, flagType affix.FlagType) ([]Entry, error) {
	lines := extractContent(text)
	if len(lines) == 0 {
		return nil, nil
	}

	start := 0
	if n, err := strconv.Atoi(strings.TrimSpace(lines[0])); err == nil && n >= 0 {
		start = 1
	}

	entries := make([]Entry, 0, len(lines)-start)
	for _, line := range lines[start:] {
		entry, err := parseEntryLine(line, flagType)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// extractContent filters out tab-prefixed lines (the historical Hunspell
// comment convention), strips "#"-to-end-of-line, and drops blank lines,
// preserving the order of everything that remains.
func extractContent(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.HasPrefix(line, "\t") {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// separateIntoParts splits a dictionary/personal line into its stem[/flags]
// portion and its trailing morph-info portion.
func separateIntoParts(line string) (head string, morphPart string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func parseEntryLine(line string, flagType affix.FlagType) (Entry, error) {
	head, morphPart := separateIntoParts(line)
	stem, flagsText, _ := strings.Cut(head, "/")

	var flags []affix.Flag
	if flagsText != "" {
		f, err := affix.ParseMany(flagType, flagsText)
		if err != nil {
			return Entry{}, err
		}
		flags = f
	}

	var morphInfo []morph.Info
	if morphPart != "" {
		morphInfo = morph.ManyFromStr(morphPart)
	}

	return Entry{Stem: stem, Flags: flags, Morph: morphInfo}, nil
}
