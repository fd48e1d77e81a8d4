package dict

import (
	"github.com/steosofficial/spellkeep/affix"
	"github.com/steosofficial/spellkeep/spellerr"
)

// Builder is a fluent façade over config/dictionary/personal parsing and
// the expansion engine: set the pieces you have, then call Build once.
// Each piece may be set at most once; Build fails fast if the
// configuration piece was never given.
type Builder struct {
	configText   *string
	dictText     *string
	personalText []string

	err error
}

// NewBuilder returns an empty Builder ready for ConfigString/DictString/
// PersonalString calls.
func NewBuilder() *Builder {
	return &Builder{}
}

// ConfigString sets the affix-file text to build from. Calling it twice is
// a fatal builder error, surfaced at Build time.
func (b *Builder) ConfigString(s string) *Builder {
	if b.configText != nil {
		b.err = spellerr.ErrCfgSpecifiedTwice
		return b
	}
	b.configText = &s
	return b
}

// DictString sets the dictionary-file text to build from.
func (b *Builder) DictString(s string) *Builder {
	if b.dictText != nil {
		b.err = spellerr.ErrCfgSpecifiedTwice
		return b
	}
	b.dictText = &s
	return b
}

// PersonalString appends a personal-dictionary overlay's text. Unlike
// ConfigString/DictString, this may be called more than once: overlays
// apply in call order.
func (b *Builder) PersonalString(s string) *Builder {
	b.personalText = append(b.personalText, s)
	return b
}

// Build parses everything given to the Builder and runs the expansion
// engine, producing an immutable Dictionary. It fails if a prior setter
// call already recorded an error, if no config or dictionary text was ever
// given, or if any parse/validation step fails.
func (b *Builder) Build() (*Dictionary, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.configText == nil || b.dictText == nil {
		return nil, spellerr.ErrCfgUnspecified
	}

	cfg, err := affix.LoadFromString(*b.configText)
	if err != nil {
		return nil, err
	}

	entries, err := ParseDictionary(*b.dictText, cfg.FlagType)
	if err != nil {
		return nil, err
	}

	var personal []PersonalEntry
	for _, text := range b.personalText {
		p, err := ParsePersonal(text)
		if err != nil {
			return nil, err
		}
		personal = append(personal, p...)
	}

	return buildDictionary(cfg, entries, personal)
}
