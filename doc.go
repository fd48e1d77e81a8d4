// Package spellkeep builds and queries Hunspell-compatible spellchecking
// dictionaries: affix rule files, stem dictionaries, and personal overlays
// expand into an in-memory wordlist that can check, suggest, and
// morphologically analyze words.
//
// Build a Dictionary from strings already in memory:
//
//	dict, err := spellkeep.NewBuilder().
//		ConfigString(affixText).
//		DictString(dictText).
//		Build()
//
// or from files on disk, memory-mapped during the build:
//
//	dict, err := spellkeep.LoadDictionaryFiles(spellkeep.FilePaths{
//		AffixPath: "en_US.aff",
//		DictPath:  "en_US.dic",
//	})
package spellkeep
