package dict

import (
	"strings"

	"github.com/steosofficial/spellkeep/affix"
	"github.com/steosofficial/spellkeep/morph"
)

// Dictionary is the built, immutable query surface: three wordlists, the
// compiled rule store, and the resolved config they were built from. Once
// returned from a Builder, nothing in a Dictionary is ever mutated again,
// so it is safe to share across any number of concurrent readers.
type Dictionary struct {
	cfg   *affix.ParsedConfig
	rules map[affix.Flag]*AfxRule
	lists *wordLists
}

// buildDictionary runs the expansion engine (§4.8) over every dictionary
// entry, then overlays personal entries (§4.11, Design Notes
// "Self-referential entries"), producing an immutable Dictionary.
func buildDictionary(cfg *affix.ParsedConfig, entries []Entry, personal []PersonalEntry) (*Dictionary, error) {
	rules := make(map[affix.Flag]*AfxRule, len(cfg.AfxRules))
	for _, group := range cfg.AfxRules {
		rules[group.Flag] = NewAfxRule(group)
	}

	for _, e := range entries {
		if err := cfg.ValidateFlags(e.Stem, e.Flags); err != nil {
			return nil, err
		}
	}

	exp := newExpander(cfg, rules)
	for _, e := range entries {
		exp.expandEntry(e.Stem, e.Flags, e.Morph)
	}

	d := &Dictionary{cfg: cfg, rules: rules, lists: exp.lists}
	d.applyPersonal(exp, personal)
	return d, nil
}

// applyPersonal overlays personal-dictionary entries onto the already-built
// wordlists. Forbidden entries move (or add) the stem into the forbidden
// list; a "/friend" entry borrows the friend's flag set and is re-expanded
// through the same engine, resolved only now that the main wordlist
// already exists (Design Notes: "build the main wordlist first, then
// resolve personal entries against it").
func (d *Dictionary) applyPersonal(exp *expander, personal []PersonalEntry) {
	for _, p := range personal {
		if p.Forbid {
			stem := exp.internStem(p.Stem)
			delete(d.lists.main.entries, p.Stem)
			delete(d.lists.nosuggest.entries, p.Stem)
			d.lists.forbidden.insert(p.Stem, NewPersonalMeta(stem, p.Friend, p.Morph))
			continue
		}
		if p.Friend != "" {
			if metas, ok := d.lists.main.lookup(p.Friend); ok {
				flags := friendFlags(metas)
				exp.expandEntry(p.Stem, flags, p.Morph)
				continue
			}
		}
		stem := exp.internStem(p.Stem)
		d.lists.main.insert(p.Stem, NewPersonalMeta(stem, p.Friend, p.Morph))
	}
}

// friendFlags recovers the set of rule flags that produced a friend's
// metas, so a "/friend" personal entry can be expanded under the same
// rules without re-parsing the original dictionary line.
func friendFlags(metas []*Meta) []affix.Flag {
	seen := make(map[affix.Flag]bool)
	var flags []affix.Flag
	for _, m := range metas {
		if m.Source.Kind != SourceAffix || m.Source.Rule == nil {
			continue
		}
		f := m.Source.Rule.Flag
		if seen[f] {
			continue
		}
		seen[f] = true
		flags = append(flags, f)
	}
	return flags
}

// CheckWord reports whether w is accepted. Exact match is tried first in
// all three wordlists (forbidden wins ties); if nothing matches exactly,
// the lowercase form is tried the same way. Per spec.md §4.10.
func (d *Dictionary) CheckWord(w string) bool {
	correct, _, _, _ := d.classify(w)
	return correct
}

func (d *Dictionary) classify(w string) (correct, forbidden bool, metas []*Meta, matchedKey string) {
	if m, ok := d.lists.forbidden.lookup(w); ok {
		return false, true, m, w
	}
	if m, ok := d.lists.main.lookup(w); ok {
		return true, false, m, w
	}
	if m, ok := d.lists.nosuggest.lookup(w); ok {
		return true, false, m, w
	}
	lw := strings.ToLower(w)
	if lw != w {
		if m, ok := d.lists.forbidden.lookup(lw); ok {
			return false, true, m, lw
		}
		if m, ok := d.lists.main.lookup(lw); ok {
			return true, false, m, lw
		}
		if m, ok := d.lists.nosuggest.lookup(lw); ok {
			return true, false, m, lw
		}
	}
	return false, false, nil, w
}

// Check reports whether every word-bounded token in sentence is accepted.
func (d *Dictionary) Check(sentence string) bool {
	for _, t := range segmentWords(sentence) {
		if !d.CheckWord(t.Word) {
			return false
		}
	}
	return true
}

// IndexResult is one entry of CheckIndices' output: the byte offset and
// text of a word that failed the spelling check.
type IndexResult struct {
	Offset int
	Word   string
}

// CheckIndices segments sentence into word tokens (see segmentWords) and returns one
// (offset, word) pair for every token that fails CheckWord, preserving the
// byte offset into the original string.
func (d *Dictionary) CheckIndices(sentence string) []IndexResult {
	var out []IndexResult
	for _, t := range segmentWords(sentence) {
		if !d.CheckWord(t.Word) {
			out = append(out, IndexResult{Offset: t.Offset, Word: t.Word})
		}
	}
	return out
}

// Entry classifies a single word and returns its WordEntry.
func (d *Dictionary) Entry(word string) *WordEntry {
	correct, forbidden, metas, matchedKey := d.classify(word)
	return &WordEntry{
		dict:       d,
		word:       word,
		index:      0,
		correct:    correct,
		forbidden:  forbidden,
		metas:      metas,
		matchedKey: matchedKey,
	}
}

// Entries segments sentence and returns one WordEntry per token, in order,
// each carrying its byte offset.
func (d *Dictionary) Entries(sentence string) []*WordEntry {
	tokens := segmentWords(sentence)
	out := make([]*WordEntry, 0, len(tokens))
	for _, t := range tokens {
		correct, forbidden, metas, matchedKey := d.classify(t.Word)
		out = append(out, &WordEntry{
			dict:       d,
			word:       t.Word,
			index:      t.Offset,
			correct:    correct,
			forbidden:  forbidden,
			metas:      metas,
			matchedKey: matchedKey,
		})
	}
	return out
}

// WordEntry is the result of classifying one word against a Dictionary.
type WordEntry struct {
	dict       *Dictionary
	word       string
	index      int
	correct    bool
	forbidden  bool
	metas      []*Meta
	matchedKey string
}

func (e *WordEntry) Word() string      { return e.word }
func (e *WordEntry) Index() int        { return e.index }
func (e *WordEntry) Correct() bool     { return e.correct }
func (e *WordEntry) Forbidden() bool   { return e.forbidden }
func (e *WordEntry) MatchedEntry() string {
	return e.matchedKey
}

// Stems returns the matched surface form first, followed by every distinct
// stem contributed by its meta records (preferring a Stem-tagged morph
// entry over the stored stem, per the stem-precedence rule), in
// encounter order and deduplicated.
func (e *WordEntry) Stems() []string {
	if !e.correct {
		return nil
	}
	out := []string{e.matchedKey}
	seen := map[string]bool{e.matchedKey: true}
	for _, m := range e.metas {
		s := m.StemValue()
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Analyze returns the morph info contributed by every meta record attached
// to this entry, in storage order.
func (e *WordEntry) Analyze() []morph.Info {
	if !e.correct {
		return nil
	}
	var out []morph.Info
	for _, m := range e.metas {
		out = append(out, m.Analyze()...)
	}
	return out
}

// Suggest returns up to 10 candidates from the main wordlist ranked by
// edit distance to this entry's word, for an incorrect word. Returns nil
// for a correct word.
func (e *WordEntry) Suggest() []string {
	if e.correct {
		return nil
	}
	return e.dict.Suggest(e.word)
}
