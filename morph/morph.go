// Package morph parses and represents Hunspell morphological attribute
// tags: short two-character markers such as "st:" or "po:" attached to
// dictionary entries and affix rules to describe stems, parts of speech,
// derivation history, and related grammatical metadata.
package morph

import (
	"fmt"
	"strings"
)

// Tag identifies which of the twelve Hunspell morphographic fields an Info
// carries.
type Tag uint8

const (
	TagStem Tag = iota
	TagPhonetic
	TagAllomorph
	TagPartOfSpeech
	TagDerivSfx
	TagInflecSfx
	TagTermSfx
	TagDerivPfx
	TagInflecPfx
	TagTermPfx
	TagSurfacePfx
	TagCompPart
)

var tagStrings = map[Tag]string{
	TagStem:         "st",
	TagPhonetic:     "ph",
	TagAllomorph:    "al",
	TagPartOfSpeech: "po",
	TagDerivSfx:     "ds",
	TagInflecSfx:    "is",
	TagTermSfx:      "ts",
	TagDerivPfx:     "dp",
	TagInflecPfx:    "ip",
	TagTermPfx:      "tp",
	TagSurfacePfx:   "sp",
	TagCompPart:     "pa",
}

var stringTags = func() map[string]Tag {
	m := make(map[string]Tag, len(tagStrings))
	for t, s := range tagStrings {
		m[s] = t
	}
	return m
}()

func (t Tag) String() string {
	if s, ok := tagStrings[t]; ok {
		return s
	}
	return "??"
}

// Info is a single tagged morphological attribute. Exactly one of Value or
// PartOfSpeech is meaningful, discriminated by Tag: TagPartOfSpeech carries
// PartOfSpeech, every other tag carries a short interned Value string.
type Info struct {
	Tag          Tag
	Value        string
	PartOfSpeech PartOfSpeech // populated only when Tag == TagPartOfSpeech
}

// IsStem reports whether this entry contributes a stem override, used by
// the dictionary's stem-precedence rule.
func (m Info) IsStem() bool {
	return m.Tag == TagStem
}

// String re-renders the tag:value form.
func (m Info) String() string {
	if m.Tag == TagPartOfSpeech {
		return m.Tag.String() + ":" + m.PartOfSpeech.String()
	}
	return m.Tag.String() + ":" + m.Value
}

// FromStr strictly parses a single "tag:value" token. Unlike ManyFromStr,
// malformed input is an error rather than being skipped.
func FromStr(s string) (Info, error) {
	tagStr, val, ok := strings.Cut(s, ":")
	if !ok {
		return Info{}, fmt.Errorf("morph info %q missing ':' delimiter", s)
	}
	if len(tagStr) != 2 {
		return Info{}, fmt.Errorf("morph tag %q is not two characters", tagStr)
	}
	tag, ok := stringTags[tagStr]
	if !ok {
		return Info{}, fmt.Errorf("morph tag %q does not match any morphographic type", tagStr)
	}
	if tag == TagPartOfSpeech {
		return Info{Tag: tag, PartOfSpeech: ParsePartOfSpeech(val)}, nil
	}
	return Info{Tag: tag, Value: val}, nil
}

// ManyFromStr parses whitespace-separated morph tokens from a dictionary or
// affix-rule line. Unlike FromStr, it is forgiving: real-world dictionaries
// occasionally embed stray non-morph tokens on the same line, so malformed
// tokens are silently skipped rather than aborting the whole line.
func ManyFromStr(s string) []Info {
	fields := strings.Fields(s)
	out := make([]Info, 0, len(fields))
	for _, f := range fields {
		info, err := FromStr(f)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	return out
}
