package affix

import "testing"

func TestParsePrefixSuffixTable(t *testing.T) {
	text := "PFX A N 1\nPFX A 0 aa .\nSFX B Y 1\nSFX B 0 cc .\n"

	nodes, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("Parse produced %d nodes, want 2", len(nodes))
	}

	pfx := nodes[0]
	if pfx.Kind != NodeAffixRule || pfx.Rule.Kind != Prefix || pfx.Rule.CanCombine {
		t.Errorf("prefix node = %+v, want non-combinable Prefix rule", pfx)
	}
	if len(pfx.Rule.Rules) != 1 || pfx.Rule.Rules[0].Affix != "aa" {
		t.Errorf("prefix rule body = %+v, want a single 'aa' pattern", pfx.Rule.Rules)
	}

	sfx := nodes[1]
	if sfx.Kind != NodeAffixRule || sfx.Rule.Kind != Suffix || !sfx.Rule.CanCombine {
		t.Errorf("suffix node = %+v, want combinable Suffix rule", sfx)
	}
}

func TestParseSkipsUnrecognizedLines(t *testing.T) {
	text := "# a comment\nSOMETHING_WEIRD here\nLANG en_US\n"
	nodes, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Kind != NodeLanguage || nodes[0].Str != "en_US" {
		t.Errorf("Parse(%q) = %+v, want a single NodeLanguage(en_US)", text, nodes)
	}
}

func TestAffixBodyFlagMismatchIsError(t *testing.T) {
	text := "PFX A N 1\nPFX Z 0 aa .\n"
	if _, err := Parse(text); err == nil {
		t.Error("expected an error when a body row's flag doesn't match its header")
	}
}

func TestConditionedSuffixScenario(t *testing.T) {
	// spec.md S3: "SFX C Y 1 / SFX C y ies [^aeiou]y"
	text := "SFX C Y 1\nSFX C y ies [^aeiou]y\n"
	nodes, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	rule := nodes[0].Rule.Rules[0]
	if rule.Strip != "y" || rule.Affix != "ies" {
		t.Fatalf("rule = %+v, want strip=y affix=ies", rule)
	}
	if !MatchesCondition(rule.CompiledCondition, "try") {
		t.Error("'try' should satisfy condition [^aeiou]y")
	}
	if MatchesCondition(rule.CompiledCondition, "boy") {
		t.Error("'boy' should not satisfy condition [^aeiou]y (preceding vowel)")
	}
}
