package dict

import "testing"

func TestSegmentWordsOffsets(t *testing.T) {
	s := "okay, I misspelled soemthing this tiem"
	tokens := segmentWords(s)
	for _, tok := range tokens {
		got := s[tok.Offset : tok.Offset+len(tok.Word)]
		if got != tok.Word {
			t.Errorf("segment %+v: s[%d:%d] = %q, want %q", tok, tok.Offset, tok.Offset+len(tok.Word), got, tok.Word)
		}
	}
}

func TestSegmentWordsRejectsPunctuationStart(t *testing.T) {
	// A run of word-forming runes is only emitted as a token if its first
	// rune is alphanumeric or a hyphen; a run starting with an apostrophe
	// is dropped entirely, not trimmed.
	tokens := segmentWords("-hyphenated 'quoted' --")
	var words []string
	for _, tok := range tokens {
		words = append(words, tok.Word)
	}
	want := []string{"-hyphenated", "--"}
	if len(words) != len(want) {
		t.Fatalf("segmentWords = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("segmentWords[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}
