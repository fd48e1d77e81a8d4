package dict

import "testing"

func buildOrFatal(t *testing.T, cfgText, dictText string, personal ...string) *Dictionary {
	t.Helper()
	b := NewBuilder().ConfigString(cfgText).DictString(dictText)
	for _, p := range personal {
		b = b.PersonalString(p)
	}
	d, err := b.Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	return d
}

func TestPrefixSuffixCombination(t *testing.T) {
	// S1: only suffixed forms can be further prefixed when both rules are
	// combinable; A (non-combinable) blocks "aaxxxcc".
	cfg := "PFX A N 1\nPFX A 0 aa .\nSFX B Y 1\nSFX B 0 cc .\n"
	d := buildOrFatal(t, cfg, "xxx/AB\n")

	for _, w := range []string{"xxx", "aaxxx", "xxxcc"} {
		if !d.CheckWord(w) {
			t.Errorf("CheckWord(%q) = false, want true", w)
		}
	}
	if d.CheckWord("aaxxxcc") {
		t.Error("CheckWord(\"aaxxxcc\") = true, want false: A is not cross-product combinable")
	}
}

func TestPrefixSuffixCombinationWhenBothCombinable(t *testing.T) {
	cfg := "PFX A Y 1\nPFX A 0 aa .\nSFX B Y 1\nSFX B 0 cc .\n"
	d := buildOrFatal(t, cfg, "xxx/AB\n")

	if !d.CheckWord("aaxxxcc") {
		t.Error("CheckWord(\"aaxxxcc\") = false, want true when both A and B are combinable")
	}
}

func TestForbiddenViaPersonal(t *testing.T) {
	d := buildOrFatal(t, "", "apple\n", "*apple\n")
	if d.CheckWord("apple") {
		t.Error("CheckWord(\"apple\") = true, want false: forbidden via personal dictionary")
	}
}

func TestConditionedSuffix(t *testing.T) {
	cfg := "SFX C Y 1\nSFX C y ies [^aeiou]y\n"
	d := buildOrFatal(t, cfg, "try/C\nboy/C\n")

	if !d.CheckWord("tries") {
		t.Error("CheckWord(\"tries\") = false, want true")
	}
	if d.CheckWord("boies") {
		t.Error("CheckWord(\"boies\") = true, want false: 'boy' doesn't satisfy [^aeiou]y")
	}
	if !d.CheckWord("boy") {
		t.Error("CheckWord(\"boy\") = false, want true: bare stem always survives")
	}
}

func TestStemmingThroughMorph(t *testing.T) {
	cfg := "SFX X Y 1\nSFX X 0 able . ds:able\n"
	d := buildOrFatal(t, cfg, "drink/X po:verb\n")

	entry := d.Entry("drinkable")
	if !entry.Correct() {
		t.Fatal("entry(\"drinkable\") should be correct")
	}
	stems := entry.Stems()
	if len(stems) != 2 || stems[0] != "drinkable" || stems[1] != "drink" {
		t.Errorf("Stems() = %v, want [drinkable drink]", stems)
	}
	analysis := entry.Analyze()
	if len(analysis) != 1 || analysis[0].Tag.String() != "ds" || analysis[0].Value != "able" {
		t.Errorf("Analyze() = %+v, want a single ds:able entry", analysis)
	}
}

func TestLowercaseFallback(t *testing.T) {
	d := buildOrFatal(t, "", "apple\n")
	if !d.CheckWord("Apple") {
		t.Error("CheckWord(\"Apple\") = false, want true via lowercase fallback")
	}
	if !d.CheckWord("APPLE") {
		t.Error("CheckWord(\"APPLE\") = false, want true via lowercase fallback")
	}
}

func TestCheckIndices(t *testing.T) {
	d := buildOrFatal(t, "", "okay\nI\nmisspelled\nthis\n")
	sentence := "okay, I misspelled soemthing this tiem"

	got := d.CheckIndices(sentence)
	want := []IndexResult{{Offset: 19, Word: "soemthing"}, {Offset: 34, Word: "tiem"}}
	if len(got) != len(want) {
		t.Fatalf("CheckIndices = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CheckIndices[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestForbiddenTrumpsAccepted(t *testing.T) {
	// Invariant 2: if a word would land on both forbidden and main, it's
	// rejected. Here the main dictionary accepts it and a personal overlay
	// forbids it.
	d := buildOrFatal(t, "", "apple\n", "*apple\n")
	if d.CheckWord("apple") {
		t.Error("forbidden entries must win over an otherwise-accepted word")
	}
}
