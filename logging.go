package spellkeep

import (
	"github.com/rs/zerolog"

	"github.com/steosofficial/spellkeep/affix"
)

// SetLogger replaces the logger used for build-time diagnostics across
// every package that emits them (currently affix, for deprecated
// directives). It defaults to discarding everything.
func SetLogger(l zerolog.Logger) {
	affix.Logger = l
}
