package affix

import "testing"

func TestLoadFromStringResolvesFlagMap(t *testing.T) {
	text := "PFX A N 1\nPFX A 0 aa .\nSFX B Y 1\nSFX B 0 cc .\n"
	cfg, err := LoadFromString(text)
	if err != nil {
		t.Fatalf("LoadFromString returned error: %v", err)
	}
	if len(cfg.AfxRules) != 2 {
		t.Fatalf("AfxRules = %+v, want 2 groups", cfg.AfxRules)
	}

	flagA, err := ParseOne(FlagASCII, "A")
	if err != nil {
		t.Fatalf("ParseOne(A) error: %v", err)
	}
	fv, ok := cfg.FlagMap[flagA]
	if !ok || fv.Kind != FVRule {
		t.Errorf("FlagMap[A] = %+v, want a Rule entry", fv)
	}
}

func TestDuplicateFlagIsBuildError(t *testing.T) {
	text := "NOSUGGEST A\nWARN A\n"
	if _, err := LoadFromString(text); err == nil {
		t.Error("expected a duplicate-flag build error when two markers share a flag")
	}
}

func TestValidateFlagsRejectsUnknown(t *testing.T) {
	text := "PFX A N 1\nPFX A 0 aa .\n"
	cfg, err := LoadFromString(text)
	if err != nil {
		t.Fatalf("LoadFromString returned error: %v", err)
	}
	flagZ, _ := ParseOne(FlagASCII, "Z")
	if err := cfg.ValidateFlags("word", []Flag{flagZ}); err == nil {
		t.Error("ValidateFlags should reject a flag absent from FlagMap")
	}
	flagA, _ := ParseOne(FlagASCII, "A")
	if err := cfg.ValidateFlags("word", []Flag{flagA}); err != nil {
		t.Errorf("ValidateFlags rejected a known flag: %v", err)
	}
}

func TestFlagTypeDirectiveAppliesToEarlierLines(t *testing.T) {
	// FLAG long means every flag token is two ASCII bytes; NOSUGGEST's
	// argument must be decoded under that scheme even though FLAG is
	// declared after it here.
	text := "NOSUGGEST ZZ\nFLAG long\n"
	cfg, err := LoadFromString(text)
	if err != nil {
		t.Fatalf("LoadFromString returned error: %v", err)
	}
	want, _ := ParseOne(FlagLong, "ZZ")
	if cfg.NoSuggestFlag == nil || *cfg.NoSuggestFlag != want {
		t.Errorf("NoSuggestFlag = %v, want %v", cfg.NoSuggestFlag, want)
	}
}
