package dict

import (
	"testing"

	"github.com/steosofficial/spellkeep/affix"
)

// TestExpansionReachability covers invariant 1: every surface form produced
// for a stem is either the stem itself or reachable back to it by
// stripping the affix and reapplying the rule's strip chars.
func TestExpansionReachability(t *testing.T) {
	cfg := "PFX A N 1\nPFX A 0 aa .\nSFX B Y 1\nSFX B 0 cc .\n"
	d := buildOrFatal(t, cfg, "xxx/AB\n")

	cases := []struct {
		surface string
		prefix  string
		suffix  string
	}{
		{surface: "xxx"},
		{surface: "aaxxx", prefix: "aa"},
		{surface: "xxxcc", suffix: "cc"},
	}
	for _, c := range cases {
		rest := c.surface
		if c.prefix != "" {
			if rest[:len(c.prefix)] != c.prefix {
				t.Fatalf("%q does not start with prefix %q", c.surface, c.prefix)
			}
			rest = rest[len(c.prefix):]
		}
		if c.suffix != "" {
			if rest[len(rest)-len(c.suffix):] != c.suffix {
				t.Fatalf("%q does not end with suffix %q", c.surface, c.suffix)
			}
			rest = rest[:len(rest)-len(c.suffix)]
		}
		if rest != "xxx" {
			t.Errorf("surface %q does not reduce back to stem xxx (got %q)", c.surface, rest)
		}
		if !d.CheckWord(c.surface) {
			t.Errorf("expanded surface %q should be accepted", c.surface)
		}
	}
}

// TestExpansionDeterminism covers invariant 5: two independent builds from
// identical inputs yield the same main-wordlist surface forms, each with the
// same number of meta records.
func TestExpansionDeterminism(t *testing.T) {
	cfg := "PFX A Y 1\nPFX A 0 aa .\nSFX B Y 1\nSFX B 0 cc .\n"
	dictText := "xxx/AB\nyyy/B\n"

	d1 := buildOrFatal(t, cfg, dictText)
	d2 := buildOrFatal(t, cfg, dictText)

	for surface := range d1.lists.main.entries {
		m1, ok1 := d1.lists.main.lookup(surface)
		m2, ok2 := d2.lists.main.lookup(surface)
		if ok1 != ok2 || len(m1) != len(m2) {
			t.Fatalf("wordlist entry for %q diverged between builds: %d vs %d metas", surface, len(m1), len(m2))
		}
	}
	if d1.lists.main.len() != d2.lists.main.len() {
		t.Errorf("main wordlist size diverged: %d vs %d", d1.lists.main.len(), d2.lists.main.len())
	}
}

func TestUnknownFlagSilentlySkippedDuringExpansion(t *testing.T) {
	// Open question resolution: the expansion engine itself treats an
	// unknown flag as a silent no-op and keeps applying the flags it does
	// recognize. Builder.Build, a validated context, instead rejects an
	// unknown flag outright (affix/config_test.go covers that half).
	cfgText := "PFX A N 1\nPFX A 0 aa .\n"
	cfg, err := affix.LoadFromString(cfgText)
	if err != nil {
		t.Fatalf("LoadFromString returned error: %v", err)
	}
	rules := make(map[affix.Flag]*AfxRule, len(cfg.AfxRules))
	for _, group := range cfg.AfxRules {
		rules[group.Flag] = NewAfxRule(group)
	}
	flagA, _ := affix.ParseOne(cfg.FlagType, "A")
	flagZ, _ := affix.ParseOne(cfg.FlagType, "Z")

	exp := newExpander(cfg, rules)
	exp.expandEntry("xxx", []affix.Flag{flagA, flagZ}, nil)

	if _, ok := exp.lists.main.lookup("xxx"); !ok {
		t.Error("bare stem should still be inserted despite the unknown flag")
	}
	if _, ok := exp.lists.main.lookup("aaxxx"); !ok {
		t.Error("expansion should still apply the known flag A despite unknown flag Z")
	}
}
