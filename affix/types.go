// Package affix implements the Hunspell affix-file parser: flag encoding,
// the directive tokenizer, and the fold step that turns a parsed directive
// sequence into a validated ParsedConfig.
package affix

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Encoding names a text encoding declared by a SET directive. Only UTF-8 is
// ever exercised by this module's own decoding (source text is read as Go
// strings, which are UTF-8); the others are recognized and stored for
// round-trip fidelity only, per spec.
type Encoding uint8

const (
	EncodingUTF8 Encoding = iota
	EncodingISO8859_1
	EncodingISO8859_10
	EncodingISO8859_13
	EncodingISO8859_15
	EncodingKOI8R
	EncodingKOI8U
	EncodingCP1251
	EncodingISCIIDevanagari
)

var encodingNames = map[string]Encoding{
	"UTF-8":            EncodingUTF8,
	"ISO8859-1":        EncodingISO8859_1,
	"ISO8859-10":       EncodingISO8859_10,
	"ISO8859-13":       EncodingISO8859_13,
	"ISO8859-15":       EncodingISO8859_15,
	"KOI8-R":           EncodingKOI8R,
	"KOI8-U":           EncodingKOI8U,
	"microsoft-cp1251": EncodingCP1251,
	"ISCII-DEVANAGARI": EncodingISCIIDevanagari,
}

// ParseEncoding matches a SET directive's value against the closed set of
// recognized encoding names.
func ParseEncoding(s string) (Encoding, error) {
	if enc, ok := encodingNames[s]; ok {
		return enc, nil
	}
	return 0, fmt.Errorf("unrecognized encoding %q", s)
}

func (e Encoding) String() string {
	for name, v := range encodingNames {
		if v == e {
			return name
		}
	}
	return "UTF-8"
}

// Conversion is one row of a REP/ICONV/OCONV table: an input pattern
// replaced by an output pattern, optionally applied in both directions.
type Conversion struct {
	Input         string
	Output        string
	Bidirectional bool
}

// ParseConversion splits a whitespace-delimited two-field table row.
func ParseConversion(s string) (Conversion, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Conversion{}, fmt.Errorf("expected 2 items in conversion row but got %d", len(fields))
	}
	return Conversion{Input: fields[0], Output: fields[1]}, nil
}

// Phonetic is one row of a PHONE table: a pattern and its replacement, used
// for phonetic-similarity suggestion ranking (not implemented beyond
// storage in this module — see spec Non-goals).
type Phonetic struct {
	Pattern string
	Replace string
}

// ParsePhonetic splits a whitespace-delimited two-field PHONE row.
func ParsePhonetic(s string) (Phonetic, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Phonetic{}, fmt.Errorf("expected 2 items in phonetic row but got %d", len(fields))
	}
	return Phonetic{Pattern: fields[0], Replace: fields[1]}, nil
}

// CompoundSyllable is the COMPOUNDSYLLABLE directive's payload: a maximum
// syllable count paired with the set of characters counted as vowels.
type CompoundSyllable struct {
	Count  uint16
	Vowels string
}

// ParseCompoundSyllable splits a whitespace-delimited "<count> <vowels>" row.
func ParseCompoundSyllable(s string) (CompoundSyllable, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return CompoundSyllable{}, fmt.Errorf("expected 2 items in compound syllable spec but got %d", len(fields))
	}
	n, err := strconv.ParseUint(fields[0], 10, 16)
	if err != nil {
		return CompoundSyllable{}, fmt.Errorf("unable to parse compound syllable count: %w", err)
	}
	return CompoundSyllable{Count: uint16(n), Vowels: fields[1]}, nil
}

// RuleType distinguishes prefix from suffix affix rule groups.
type RuleType uint8

const (
	Prefix RuleType = iota
	Suffix
)

// ParseRuleType accepts the case-insensitive "pfx"/"sfx" directive keys.
func ParseRuleType(s string) (RuleType, error) {
	switch strings.ToLower(s) {
	case "pfx":
		return Prefix, nil
	case "sfx":
		return Suffix, nil
	default:
		return 0, fmt.Errorf("%q is not a recognized affix rule type", s)
	}
}

func (r RuleType) String() string {
	if r == Prefix {
		return "prefix"
	}
	return "suffix"
}

// CompoundPattern is a CHECKCOMPOUNDPATTERN row: forbids a compound formed
// by joining a word ending in endchars (optionally flagged) to a word
// beginning with beginchars (optionally flagged), optionally replacing the
// joint with replacement.
type CompoundPattern struct {
	EndChars    string
	EndFlag     string
	BeginChars  string
	BeginFlag   string
	Replacement string
}

var reCompoundPattern = regexp.MustCompile(`^(\w+)(?:/(\w+))?\s+(\w+)(?:/(\w+))?(?:\s+(\w+))?$`)

// ParseCompoundPattern parses a CHECKCOMPOUNDPATTERN table row.
func ParseCompoundPattern(s string) (CompoundPattern, error) {
	m := reCompoundPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return CompoundPattern{}, fmt.Errorf("invalid compound pattern %q", s)
	}
	return CompoundPattern{
		EndChars:    m[1],
		EndFlag:     m[2],
		BeginChars:  m[3],
		BeginFlag:   m[4],
		Replacement: m[5],
	}, nil
}
