// Package spellerr defines the structured error taxonomy shared by the
// affix parser, the dictionary parser, and the builder: location-tagged
// parse errors and fatal build errors.
package spellerr

import "fmt"

// LineCol is a 1-indexed location within a source file.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Span is the approximate location a ParseError occurred at.
type Span struct {
	Start LineCol
	End   LineCol
}

// NewSpan builds a Span covering just the given line; End defaults to the
// following line, matching the source's "new" convention of a one-line span
// when no better end is known.
func NewSpan(line, col uint32) Span {
	return Span{Start: LineCol{Line: line, Col: col}, End: LineCol{Line: line + 1, Col: col}}
}

// ParseErrorKind enumerates the distinct kinds of parse failure, per
// spec.md §7.
type ParseErrorKind uint8

const (
	ErrBoolean ParseErrorKind = iota
	ErrChar
	ErrInt
	ErrTableCount
	ErrAffixHeader
	ErrAffixBody
	ErrAffixFlagMismatch
	ErrAffixCrossProduct
	ErrNonWhitespace
	ErrContainsWhitespace
	ErrMorphInfoDelim
	ErrMorphInvalidTag
	ErrConversionSplit
	ErrEncoding
	ErrFlagType
	ErrFlagParse
	ErrInvalidFlag
	ErrCompoundSyllableCount
	ErrCompoundSyllableParse
	ErrPersonal
	ErrCompoundPattern
	ErrPhonetic
	ErrPartOfSpeech
	ErrDictEntry
	ErrRegex
)

// ParseError is a single parse failure with its approximate source location
// and the context string that produced it.
type ParseError struct {
	Kind    ParseErrorKind
	Span    *Span // nil when no location is known
	Ctx     string
	Message string // pre-rendered kind-specific detail
}

func (e *ParseError) Error() string {
	if e.Span != nil {
		return fmt.Sprintf("parse error at line %d: %s", e.Span.Start.Line, e.Message)
	}
	return fmt.Sprintf("error: %s", e.Message)
}

// NewParseError builds a ParseError at the given line/column.
func NewParseError(kind ParseErrorKind, ctx string, line, col uint32, message string) *ParseError {
	span := NewSpan(line, col)
	return &ParseError{Kind: kind, Span: &span, Ctx: ctx, Message: message}
}

// NewParseErrorNoSpan builds a ParseError with no known source location.
func NewParseErrorNoSpan(kind ParseErrorKind, ctx, message string) *ParseError {
	return &ParseError{Kind: kind, Ctx: ctx, Message: message}
}

// BuildErrorKind enumerates the ways building a Dictionary can fail fatally.
type BuildErrorKind uint8

const (
	ErrBuilderCfgSpecTwice BuildErrorKind = iota
	ErrBuilderCfgUnspecified
	ErrUnknownFlag
	ErrFlagTypeMismatch
	ErrDuplicateFlag
	ErrNonmatchingFlag
)

// BuildError is a fatal error raised while assembling a Dictionary from a
// ParsedConfig and dictionary entries. No partial dictionary is ever
// returned once a BuildError has been raised.
type BuildError struct {
	Kind    BuildErrorKind
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build error: %s", e.Message)
}

// NewDuplicateFlagError reports a flag assigned two meanings. t2 is empty
// when the second assignment came from an affix rule group rather than a
// named flag field.
func NewDuplicateFlagError(flag, t1, t2 string) *BuildError {
	msg := fmt.Sprintf("flag '%s' used for two or more flags: '%s' and ", flag, t1)
	if t2 != "" {
		msg += "'" + t2 + "'"
	} else {
		msg += "affix rule"
	}
	return &BuildError{Kind: ErrDuplicateFlag, Message: msg}
}

// NewUnknownFlagError reports a flag that was never declared anywhere in
// the affix configuration.
func NewUnknownFlagError(flag string) *BuildError {
	return &BuildError{Kind: ErrUnknownFlag, Message: fmt.Sprintf("got flag `%s` that wasn't present in affix configuration", flag)}
}

// NewNonmatchingFlagError reports a dictionary stem whose flag does not
// resolve to any known rule or marker in a validated context.
func NewNonmatchingFlagError(stem, flag string) *BuildError {
	return &BuildError{Kind: ErrNonmatchingFlag, Message: fmt.Sprintf("stem '%s' is marked with flag '%s' but it does not match any patterns", stem, flag)}
}

// ErrCfgSpecifiedTwice and ErrCfgUnspecified are the builder's two
// immediate fail-fast conditions.
var (
	ErrCfgSpecifiedTwice = &BuildError{Kind: ErrBuilderCfgSpecTwice, Message: "configuration specified twice in builder"}
	ErrCfgUnspecified    = &BuildError{Kind: ErrBuilderCfgUnspecified, Message: "configuration unspecified in builder"}
)
