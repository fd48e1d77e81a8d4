package dict

import (
	"testing"

	"github.com/steosofficial/spellkeep/affix"
)

func TestAfxRuleKindPredicates(t *testing.T) {
	prefix := &AfxRule{Kind: affix.Prefix}
	suffix := &AfxRule{Kind: affix.Suffix}

	if !prefix.IsPrefix() || prefix.IsSuffix() {
		t.Errorf("prefix rule: IsPrefix()=%v IsSuffix()=%v, want true/false", prefix.IsPrefix(), prefix.IsSuffix())
	}
	if !suffix.IsSuffix() || suffix.IsPrefix() {
		t.Errorf("suffix rule: IsPrefix()=%v IsSuffix()=%v, want false/true", suffix.IsPrefix(), suffix.IsSuffix())
	}
}

func TestAfxRulePatternApply(t *testing.T) {
	pfx := AfxRulePattern{Affix: "re", Strip: ""}
	got, ok := pfx.apply("play", affix.Prefix)
	if !ok || got != "replay" {
		t.Errorf("prefix apply = (%q, %v), want (replay, true)", got, ok)
	}

	sfx := AfxRulePattern{Affix: "ies", Strip: "y"}
	got, ok = sfx.apply("try", affix.Suffix)
	if !ok || got != "tries" {
		t.Errorf("suffix apply = (%q, %v), want (tries, true)", got, ok)
	}
}
