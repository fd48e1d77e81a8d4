package spellkeep

import "github.com/steosofficial/spellkeep/dict"

// Builder, Dictionary, WordEntry, and IndexResult are re-exported from dict
// so that a caller only ever imports this one package for the common path;
// dict remains usable directly by code that wants the lower-level pieces
// (the rule store, the wordlist types) without the file-loading helpers
// this package adds on top.
type (
	Builder     = dict.Builder
	Dictionary  = dict.Dictionary
	WordEntry   = dict.WordEntry
	IndexResult = dict.IndexResult
)

// NewBuilder returns an empty Builder ready for ConfigString/DictString/
// PersonalString calls, followed by Build.
func NewBuilder() *Builder {
	return dict.NewBuilder()
}

// Misspelled filters a batch of WordEntry results down to the incorrect
// ones, sorted by word.
func Misspelled(entries []*WordEntry) []*WordEntry {
	return dict.Misspelled(entries)
}
