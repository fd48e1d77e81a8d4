package morph

import "strings"

// PartOfSpeech is a closed part-of-speech enumeration with an open escape
// for values Hunspell dictionaries use that aren't in the closed set. It is
// the value carried by a "po:" morph tag.
type PartOfSpeech struct {
	Kind  PartOfSpeechKind
	Other string // populated only when Kind == POOther
}

type PartOfSpeechKind uint8

const (
	PONoun PartOfSpeechKind = iota
	POVerb
	POAdjective
	PODeterminer
	POAdverb
	POPronoun
	POPreposition
	POConjunction
	POInterjection
	POOther
)

var posNames = map[string]PartOfSpeechKind{
	"noun":         PONoun,
	"verb":         POVerb,
	"adjective":    POAdjective,
	"determiner":   PODeterminer,
	"adverb":       POAdverb,
	"pronoun":      POPronoun,
	"preposition":  POPreposition,
	"conjunction":  POConjunction,
	"interjection": POInterjection,
}

// ParsePartOfSpeech is case-insensitive and never fails: unrecognized values
// fall through to POOther, preserving the original text.
func ParsePartOfSpeech(s string) PartOfSpeech {
	if kind, ok := posNames[strings.ToLower(s)]; ok {
		return PartOfSpeech{Kind: kind}
	}
	return PartOfSpeech{Kind: POOther, Other: s}
}

func (p PartOfSpeech) String() string {
	if p.Kind == POOther {
		return p.Other
	}
	for name, k := range posNames {
		if k == p.Kind {
			return name
		}
	}
	return "other"
}
