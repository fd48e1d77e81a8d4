package dict

import (
	"errors"
	"testing"

	"github.com/steosofficial/spellkeep/spellerr"
)

func TestBuilderRejectsDoubleConfig(t *testing.T) {
	_, err := NewBuilder().ConfigString("").ConfigString("").DictString("apple\n").Build()
	if !errors.Is(err, spellerr.ErrCfgSpecifiedTwice) {
		t.Errorf("Build() err = %v, want ErrCfgSpecifiedTwice", err)
	}
}

func TestBuilderRejectsMissingDict(t *testing.T) {
	_, err := NewBuilder().ConfigString("").Build()
	if !errors.Is(err, spellerr.ErrCfgUnspecified) {
		t.Errorf("Build() err = %v, want ErrCfgUnspecified", err)
	}
}

func TestBuilderAppliesMultiplePersonalOverlays(t *testing.T) {
	d, err := NewBuilder().
		ConfigString("").
		DictString("apple\n").
		PersonalString("*apple\n").
		PersonalString("pear\n").
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if d.CheckWord("apple") {
		t.Error("apple should be forbidden by the first personal overlay")
	}
	if !d.CheckWord("pear") {
		t.Error("pear should be accepted via the second personal overlay")
	}
}
