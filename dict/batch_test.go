package dict

import "testing"

func TestCheckWordsPreservesOrder(t *testing.T) {
	d := buildOrFatal(t, "", "apple\npear\n")
	words := []string{"apple", "nope", "pear", "nah"}
	got := d.CheckWords(words)
	want := []bool{true, false, true, false}
	if len(got) != len(want) {
		t.Fatalf("CheckWords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CheckWords[%d] = %v, want %v (word %q)", i, got[i], want[i], words[i])
		}
	}
}

func TestEntriesBatchIndexMatchesInputPosition(t *testing.T) {
	d := buildOrFatal(t, "", "apple\npear\n")
	words := []string{"apple", "nope", "pear"}
	entries := d.EntriesBatch(words)
	for i, e := range entries {
		if e.Index() != i {
			t.Errorf("EntriesBatch[%d].Index() = %d, want %d", i, e.Index(), i)
		}
		if e.Word() != words[i] {
			t.Errorf("EntriesBatch[%d].Word() = %q, want %q", i, e.Word(), words[i])
		}
	}
}

func TestMisspelledSortsAndFilters(t *testing.T) {
	d := buildOrFatal(t, "", "apple\npear\n")
	entries := d.EntriesBatch([]string{"zork", "apple", "abcd"})
	bad := Misspelled(entries)
	if len(bad) != 2 || bad[0].Word() != "abcd" || bad[1].Word() != "zork" {
		t.Errorf("Misspelled = %v, want [abcd zork]", wordsOf(bad))
	}
}

func wordsOf(entries []*WordEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Word()
	}
	return out
}
