package morph

import "testing"

func TestFromStr(t *testing.T) {
	testCases := []struct {
		name    string
		token   string
		want    Info
		wantErr bool
	}{
		{name: "stem", token: "st:run", want: Info{Tag: TagStem, Value: "run"}},
		{name: "part of speech", token: "po:verb", want: Info{Tag: TagPartOfSpeech, PartOfSpeech: PartOfSpeech{Kind: POVerb}}},
		{name: "derivational suffix", token: "ds:able", want: Info{Tag: TagDerivSfx, Value: "able"}},
		{name: "missing colon", token: "stable", wantErr: true},
		{name: "unknown tag", token: "zz:foo", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromStr(tc.token)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("FromStr(%q) expected an error, got %+v", tc.token, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromStr(%q) unexpected error: %v", tc.token, err)
			}
			if got != tc.want {
				t.Errorf("FromStr(%q) = %+v, want %+v", tc.token, got, tc.want)
			}
		})
	}
}

func TestManyFromStrSkipsMalformed(t *testing.T) {
	got := ManyFromStr("po:verb zz:bad ds:able")
	want := []Info{
		{Tag: TagPartOfSpeech, PartOfSpeech: PartOfSpeech{Kind: POVerb}},
		{Tag: TagDerivSfx, Value: "able"},
	}
	if len(got) != len(want) {
		t.Fatalf("ManyFromStr = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ManyFromStr[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestIsStem(t *testing.T) {
	if !(Info{Tag: TagStem}).IsStem() {
		t.Error("TagStem entry should report IsStem() true")
	}
	if (Info{Tag: TagPartOfSpeech}).IsStem() {
		t.Error("TagPartOfSpeech entry should report IsStem() false")
	}
}

func TestParsePartOfSpeechClosedSetAndEscape(t *testing.T) {
	if got := ParsePartOfSpeech("Verb"); got.Kind != POVerb {
		t.Errorf("ParsePartOfSpeech(%q) = %+v, want Kind POVerb", "Verb", got)
	}
	got := ParsePartOfSpeech("gerund")
	if got.Kind != POOther || got.Other != "gerund" {
		t.Errorf("ParsePartOfSpeech(%q) = %+v, want POOther with Other preserved", "gerund", got)
	}
}

func TestPartOfSpeechStringRoundTrips(t *testing.T) {
	if s := ParsePartOfSpeech("noun").String(); s != "noun" {
		t.Errorf("String() = %q, want %q", s, "noun")
	}
	if s := ParsePartOfSpeech("gerund").String(); s != "gerund" {
		t.Errorf("String() = %q, want escaped value %q", s, "gerund")
	}
}
