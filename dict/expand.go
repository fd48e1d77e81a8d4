package dict

import (
	"github.com/steosofficial/spellkeep/affix"
	"github.com/steosofficial/spellkeep/morph"
)

// wordLists bundles the three disjoint wordlists a Dictionary maintains:
// accepted-and-suggested, accepted-but-nosuggest, and forbidden.
type wordLists struct {
	main      *WordList
	nosuggest *WordList
	forbidden *WordList
}

func newWordLists() *wordLists {
	return &wordLists{main: newWordList(), nosuggest: newWordList(), forbidden: newWordList()}
}

// expander holds everything the expansion engine needs while it processes
// every dictionary entry: the resolved flag→meaning map, the compiled
// rule store, the stem intern pool, and the destination wordlists.
type expander struct {
	cfg      *affix.ParsedConfig
	rules    map[affix.Flag]*AfxRule
	stemPool map[string]*string
	lists    *wordLists
}

func newExpander(cfg *affix.ParsedConfig, rules map[affix.Flag]*AfxRule) *expander {
	return &expander{cfg: cfg, rules: rules, stemPool: make(map[string]*string), lists: newWordLists()}
}

func (e *expander) internStem(s string) *string {
	if p, ok := e.stemPool[s]; ok {
		return p
	}
	v := s
	e.stemPool[s] = &v
	return &v
}

// combinablePrefix is a remembered prefixed surface form eligible for
// further suffixation in the cross-product step.
type combinablePrefix struct {
	word         string
	rule         *AfxRule
	patternIndex int
}

// expandEntry implements spec.md §4.8's procedure for a single stem: it
// partitions the stem's flags into markers and rule groups, chooses a
// destination wordlist, inserts the bare stem (unless AfxNeeded applies),
// applies every prefix/suffix rule group, and finally cross-applies
// combinable suffix rules to combinable prefixed forms.
func (e *expander) expandEntry(stem string, flags []affix.Flag, morphInfo []morph.Info) {
	var forbidden, noSuggest, afxNeeded bool
	var prefixGroups, suffixGroups []*AfxRule

	for _, f := range flags {
		fv, ok := e.cfg.FlagMap[f]
		if !ok {
			// Unknown flag in expansion: silently skipped (spec.md §4.8
			// Failure semantics / §9 Open Questions resolution #1). Flags
			// requiring hard validation are checked separately, before
			// expansion ever runs (see Builder.Build).
			continue
		}
		switch fv.Kind {
		case affix.FVForbiddenWord:
			forbidden = true
		case affix.FVNoSuggest:
			noSuggest = true
		case affix.FVAfxNeeded:
			afxNeeded = true
		case affix.FVRule:
			rule := e.rules[f]
			if rule == nil {
				continue
			}
			if rule.IsPrefix() {
				prefixGroups = append(prefixGroups, rule)
			} else {
				suffixGroups = append(suffixGroups, rule)
			}
		default:
			// Compound/WarnRare/KeepCase/Circumfix/Substandard markers are
			// recognized flag meanings but don't drive expansion's
			// destination choice or rule application (compounding itself
			// is out of scope per spec.md Non-goals).
		}
	}

	dest := e.lists.main
	switch {
	case forbidden:
		dest = e.lists.forbidden
	case noSuggest:
		dest = e.lists.nosuggest
	}

	internedStem := e.internStem(stem)

	if !afxNeeded {
		dest.insert(stem, NewDictMeta(internedStem, morphInfo))
	}

	var prefixedCombinable []combinablePrefix
	for _, p := range prefixGroups {
		for _, a := range p.applyPatterns(stem) {
			dest.insert(a.word, NewAffixMeta(internedStem, p, a.patternIndex))
			if p.CanCombine {
				prefixedCombinable = append(prefixedCombinable, combinablePrefix{word: a.word, rule: p, patternIndex: a.patternIndex})
			}
		}
	}

	var suffixCombinable []*AfxRule
	for _, q := range suffixGroups {
		for _, a := range q.applyPatterns(stem) {
			dest.insert(a.word, NewAffixMeta(internedStem, q, a.patternIndex))
		}
		if q.CanCombine {
			suffixCombinable = append(suffixCombinable, q)
		}
	}

	for _, pc := range prefixedCombinable {
		for _, q := range suffixCombinable {
			for _, a := range q.applyPatterns(pc.word) {
				dest.insert(a.word, NewAffixMeta(internedStem, pc.rule, pc.patternIndex))
				dest.insert(a.word, NewAffixMeta(internedStem, q, a.patternIndex))
			}
		}
	}
}
