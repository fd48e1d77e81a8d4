package spellkeep

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// readMapped memory-maps path read-only and returns its contents as a
// string; the conversion copies the mapped bytes onto the Go heap, and the
// mapping is torn down before returning: a dictionary's source text is
// only needed transiently, during parsing, never held onto by the built
// Dictionary (per the no-on-disk-indexing policy), so there is no reason
// to keep the file mapped past this call.
func readMapped(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	if fi, err := file.Stat(); err == nil && fi.Size() == 0 {
		return "", nil
	}

	m, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("mmap %s: %w", path, err)
	}
	defer m.Unmap()

	return string(m), nil
}

// FilePaths names the on-disk source files a Dictionary can be built from:
// an affix file, a dictionary file, and zero or more personal-dictionary
// overlays.
type FilePaths struct {
	AffixPath    string
	DictPath     string
	PersonalPath []string
}

// LoadDictionaryFiles memory-maps each file named in paths, copies its
// contents into a string, and builds a Dictionary from those strings via
// Builder.
func LoadDictionaryFiles(paths FilePaths) (*Dictionary, error) {
	affixText, err := readMapped(paths.AffixPath)
	if err != nil {
		return nil, err
	}
	dictText, err := readMapped(paths.DictPath)
	if err != nil {
		return nil, err
	}

	b := NewBuilder().ConfigString(affixText).DictString(dictText)
	for _, p := range paths.PersonalPath {
		personalText, err := readMapped(p)
		if err != nil {
			return nil, err
		}
		b = b.PersonalString(personalText)
	}
	return b.Build()
}
