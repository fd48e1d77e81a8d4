package dict

import "github.com/steosofficial/spellkeep/morph"

// SourceKind discriminates how a Meta record's surface form was produced.
type SourceKind uint8

const (
	SourceAffix SourceKind = iota
	SourceDict
	SourcePersonal
	SourceRaw
)

// Source is the provenance of a single surface form: which mechanism
// produced it and whatever data that mechanism carries along.
type Source struct {
	Kind SourceKind

	// SourceAffix
	Rule         *AfxRule
	PatternIndex int

	// SourceDict
	DictMorph []morph.Info

	// SourcePersonal
	Friend        string
	PersonalMorph []morph.Info
}

// Meta is a provenance record attached to one surface form in a wordlist:
// which interned stem it traces back to, and how it was produced.
type Meta struct {
	Stem   *string
	Source Source
}

// NewDictMeta builds a Meta record for a bare dictionary-entry insertion.
func NewDictMeta(stem *string, morphInfo []morph.Info) *Meta {
	return &Meta{Stem: stem, Source: Source{Kind: SourceDict, DictMorph: morphInfo}}
}

// NewAffixMeta builds a Meta record produced by applying an affix rule's
// pattern at patternIndex to stem.
func NewAffixMeta(stem *string, rule *AfxRule, patternIndex int) *Meta {
	return &Meta{Stem: stem, Source: Source{Kind: SourceAffix, Rule: rule, PatternIndex: patternIndex}}
}

// NewPersonalMeta builds a Meta record for a personal-dictionary entry.
func NewPersonalMeta(stem *string, friend string, morphInfo []morph.Info) *Meta {
	return &Meta{Stem: stem, Source: Source{Kind: SourcePersonal, Friend: friend, PersonalMorph: morphInfo}}
}

// StemValue returns this meta's contribution to stem(). The primary stem is
// the stored stem, but a Stem-tagged morph entry (dict or affix-pattern
// sourced) takes precedence, matching the original source's stem()
// precedence rule.
func (m *Meta) StemValue() string {
	for _, info := range m.morphInfo() {
		if info.IsStem() {
			return info.Value
		}
	}
	if m.Stem != nil {
		return *m.Stem
	}
	return ""
}

// morphInfo returns the morph-info list relevant to this meta's source:
// the affix pattern's morph info for affix-sourced metas, the stored list
// for dict/personal sources, nothing for raw.
func (m *Meta) morphInfo() []morph.Info {
	switch m.Source.Kind {
	case SourceAffix:
		if m.Source.Rule == nil || m.Source.PatternIndex >= len(m.Source.Rule.Patterns) {
			return nil
		}
		return m.Source.Rule.Patterns[m.Source.PatternIndex].MorphInfo
	case SourceDict:
		return m.Source.DictMorph
	case SourcePersonal:
		return m.Source.PersonalMorph
	default:
		return nil
	}
}

// Analyze returns the morph info this meta contributes to an Analyze()
// query, in the same order it's stored.
func (m *Meta) Analyze() []morph.Info {
	return m.morphInfo()
}
