package spellkeep

import "testing"

func TestBuildAndCheck(t *testing.T) {
	affixText := "PFX A Y 1\nPFX A 0 re .\n"
	dictText := "play/A\n"

	dict, err := NewBuilder().ConfigString(affixText).DictString(dictText).Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if !dict.CheckWord("play") || !dict.CheckWord("replay") {
		t.Error("expected both the stem and its prefixed form to be accepted")
	}
	if dict.CheckWord("replayed") {
		t.Error("replayed was never derived, should be rejected")
	}
}

func TestMisspelledReexport(t *testing.T) {
	dict, err := NewBuilder().ConfigString("").DictString("apple\npear\n").Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	entries := dict.EntriesBatch([]string{"zzz", "apple"})
	bad := Misspelled(entries)
	if len(bad) != 1 || bad[0].Word() != "zzz" {
		t.Errorf("Misspelled = %v, want [zzz]", bad)
	}
}
