// Package dict implements the dictionary/personal file parser, the word
// expansion engine, the wordlist store, and the entry/lookup API that
// together form the query-facing half of a built Hunspell-compatible
// dictionary.
package dict

import (
	"regexp"
	"strings"

	"github.com/steosofficial/spellkeep/affix"
	"github.com/steosofficial/spellkeep/morph"
)

// AfxRule is the compiled, shareable form of an affix rule group: the
// parser's ParsedRuleGroup, ready to be referenced by both the
// flag→FlagValue map and by every wordlist meta record it produces. The
// Rust source's AfxRule.is_sfx has a copy-paste bug (it checks
// RuleType.Prefix where it means Suffix); this port implements both
// predicates correctly.
type AfxRule struct {
	Flag       affix.Flag
	Kind       affix.RuleType
	CanCombine bool
	Patterns   []AfxRulePattern
}

// AfxRulePattern is one PFX/SFX body row, ready for application.
type AfxRulePattern struct {
	Affix     string
	Strip     string
	MorphInfo []morph.Info
	condition *regexp.Regexp // nil means unconditional
}

// NewAfxRule compiles a ParsedRuleGroup (from the affix parser) into an
// AfxRule ready for expansion-time use.
func NewAfxRule(group *affix.ParsedRuleGroup) *AfxRule {
	r := &AfxRule{Flag: group.Flag, Kind: group.Kind, CanCombine: group.CanCombine, Patterns: make([]AfxRulePattern, 0, len(group.Rules))}
	for _, rule := range group.Rules {
		r.Patterns = append(r.Patterns, AfxRulePattern{
			Affix:     rule.Affix,
			Strip:     rule.Strip,
			MorphInfo: rule.MorphInfo,
			condition: rule.CompiledCondition,
		})
	}
	return r
}

// IsPrefix and IsSuffix report the rule's kind explicitly and correctly.
func (r *AfxRule) IsPrefix() bool { return r.Kind == affix.Prefix }
func (r *AfxRule) IsSuffix() bool { return r.Kind == affix.Suffix }

// applied is one successful application of a pattern against a stem.
type applied struct {
	word         string
	patternIndex int
}

// applyPatterns returns every pattern in r whose condition matches stem,
// together with the resulting surface form.
func (r *AfxRule) applyPatterns(stem string) []applied {
	var out []applied
	for i, p := range r.Patterns {
		if w, ok := p.apply(stem, r.Kind); ok {
			out = append(out, applied{word: w, patternIndex: i})
		}
	}
	return out
}

func (p *AfxRulePattern) checkCondition(s string) bool {
	if p.condition == nil {
		return true
	}
	return p.condition.MatchString(s)
}

// apply verifies the pattern's condition and, if it matches, produces the
// derived surface form: prefixes prepend (after stripping a leading strip
// sequence), suffixes append (after stripping a trailing strip sequence).
func (p *AfxRulePattern) apply(s string, kind affix.RuleType) (string, bool) {
	if !p.checkCondition(s) {
		return "", false
	}
	switch kind {
	case affix.Prefix:
		rest := s
		if p.Strip != "" {
			rest = strings.TrimPrefix(s, p.Strip)
		}
		return p.Affix + rest, true
	default: // Suffix
		rest := s
		if p.Strip != "" {
			rest = strings.TrimSuffix(s, p.Strip)
		}
		return rest + p.Affix, true
	}
}
