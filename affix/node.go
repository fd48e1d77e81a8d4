package affix

import (
	"regexp"

	"github.com/steosofficial/spellkeep/morph"
)

// NodeKind discriminates the directive each parsed Node represents. The
// full list mirrors every directive an affix file may contain (spec.md §6
// plus the SPEC_FULL.md §4.4 supplement).
type NodeKind uint8

const (
	NodeEncoding NodeKind = iota
	NodeFlagType
	NodeComplexPrefixes
	NodeLanguage
	NodeIgnoreChars
	NodeAffixAlias
	NodeMorphAlias
	NodeNeighborKeys
	NodeTryCharacters
	NodeNoSuggestFlag
	NodeCompoundSugMax
	NodeNGramSugMax
	NodeNGramDiffMax
	NodeNGramLimitToDiffMax
	NodeNoSplitSuggestions
	NodeKeepTermDots
	NodeReplacement
	NodeMapping
	NodePhonetic
	NodeWarnRareFlag
	NodeForbidWarnWords
	NodeBreakSeparator
	NodeCompoundRule
	NodeCompoundMinLen
	NodeCompoundFlag
	NodeCompoundBeginFlag
	NodeCompoundEndFlag
	NodeCompoundMiddleFlag
	NodeCompoundOnlyFlag
	NodeCompoundPermitFlag
	NodeCompoundForbidFlag
	NodeCompoundMoreSuffixes
	NodeCompoundRoot
	NodeCompoundWordMax
	NodeCompoundForbidDup
	NodeCompoundForbidRepeat
	NodeCompoundCheckCase
	NodeCompoundCheckTriple
	NodeCompoundSimplifyTriple
	NodeCompoundForbidPats
	NodeCompoundForceUpper
	NodeCompoundSyllable
	NodeSyllableNum
	NodeAffixRule
	NodeAfxCircumfixFlag
	NodeForbiddenWordFlag
	NodeAfxFullStrip
	NodeAfxKeepCaseFlag
	NodeAfxInputConversion
	NodeAfxOutputConversion
	NodeAfxLemmaPresentFlag
	NodeAfxNeededFlag
	NodeAfxPseudoRootFlag
	NodeAfxSubstandardFlag
	NodeAfxWordChars
	NodeAfxCheckSharps
	NodeComment
	NodeName
	NodeHomePage
	NodeVersion
)

// Node is a single parsed affix-file directive. Only the fields relevant to
// Kind are populated; this tagged-union shape (one struct, a Kind
// discriminant, and a handful of typed payload fields) mirrors the
// directive's own simple shape more directly than a 50-case interface
// hierarchy would, while staying just as exhaustively switch-matched in the
// fold step (config.go).
type Node struct {
	Kind NodeKind

	Str   string   // language/ignore-chars/try-chars/neighbor-keys/word-chars/name/home/version
	Flag  Flag
	Int   int
	Bool  bool
	Flags []string // raw alias bodies (AF/AM), preserved verbatim

	Encoding Encoding
	FlagType FlagType

	Conversions []Conversion      // REP / ICONV / OCONV
	Mappings    []string          // MAP rows, each a string of equivalent characters
	Phonetics   []Phonetic
	Patterns    []CompoundPattern // CHECKCOMPOUNDPATTERN rows
	CompoundSet []string          // BREAK / COMPOUNDRULE rows

	Syllable CompoundSyllable
	Rule     *ParsedRuleGroup
}

// ParsedRuleGroup is the raw, pre-fold form of a PFX/SFX table: a header
// flag, the cross-product indicator, and an ordered list of body rows.
type ParsedRuleGroup struct {
	Flag       Flag
	Kind       RuleType
	CanCombine bool
	Rules      []ParsedRule
}

// ParsedRule is a single PFX/SFX body row: FLAG STRIP AFFIX CONDITION [MORPH...].
type ParsedRule struct {
	Affix             string
	Strip             string // "0" in the source file decodes to ""
	Condition         string // raw condition text, "." for unconditional
	CompiledCondition *regexp.Regexp
	MorphInfo         []morph.Info
}
