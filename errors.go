package spellkeep

import "github.com/steosofficial/spellkeep/spellerr"

// ParseError and BuildError are re-exported here so callers never need to
// import spellerr directly; everything a caller type-asserts against lives
// at the package root.
type (
	ParseError     = spellerr.ParseError
	ParseErrorKind = spellerr.ParseErrorKind
	BuildError     = spellerr.BuildError
	BuildErrorKind = spellerr.BuildErrorKind
)

// ErrCfgSpecifiedTwice and ErrCfgUnspecified are the two fixed Builder
// configuration errors; compare against them with errors.Is.
var (
	ErrCfgSpecifiedTwice = spellerr.ErrCfgSpecifiedTwice
	ErrCfgUnspecified    = spellerr.ErrCfgUnspecified
)
