package affix

import (
	"github.com/rs/zerolog"
	"github.com/steosofficial/spellkeep/spellerr"
)

// Logger receives build-time diagnostics (deprecated directives, and
// anything else worth surfacing but not worth failing a build over). It
// defaults to discarding everything; callers that want visibility replace
// it, e.g. `affix.Logger = zerolog.New(os.Stderr)`.
var Logger zerolog.Logger = zerolog.Nop()

// FlagValueKind names what a flag integer means once the affix file has
// been fully folded.
type FlagValueKind uint8

const (
	FVForbiddenWord FlagValueKind = iota
	FVNoSuggest
	FVAfxNeeded
	FVCompoundFlag
	FVCompoundBegin
	FVCompoundEnd
	FVCompoundMiddle
	FVCompoundOnly
	FVCompoundPermit
	FVCompoundForbid
	FVCompoundRoot
	FVCompoundForceUpper
	FVWarnRare
	FVKeepCase
	FVCircumfix
	FVSubstandard
	FVRule
)

func (k FlagValueKind) String() string {
	switch k {
	case FVForbiddenWord:
		return "ForbiddenWord"
	case FVNoSuggest:
		return "NoSuggest"
	case FVAfxNeeded:
		return "AfxNeeded"
	case FVCompoundFlag:
		return "CompoundFlag"
	case FVCompoundBegin:
		return "CompoundBegin"
	case FVCompoundEnd:
		return "CompoundEnd"
	case FVCompoundMiddle:
		return "CompoundMiddle"
	case FVCompoundOnly:
		return "CompoundOnly"
	case FVCompoundPermit:
		return "CompoundPermit"
	case FVCompoundForbid:
		return "CompoundForbid"
	case FVCompoundRoot:
		return "CompoundRoot"
	case FVCompoundForceUpper:
		return "CompoundForceUpper"
	case FVWarnRare:
		return "WarnRare"
	case FVKeepCase:
		return "KeepCase"
	case FVCircumfix:
		return "Circumfix"
	case FVSubstandard:
		return "Substandard"
	case FVRule:
		return "Rule"
	default:
		return "unknown"
	}
}

// FlagValue is the resolved meaning of a single flag integer: either a
// marker (ForbiddenWord, NoSuggest, ...) or a reference to the affix rule
// group that flag triggers during expansion.
type FlagValue struct {
	Kind      FlagValueKind
	RuleGroup *ParsedRuleGroup
}

// CompoundConfig groups every COMPOUND*/CHECKCOMPOUND* directive, per
// SPEC_FULL.md §3 supplement.
type CompoundConfig struct {
	BreakSeparators []string
	SugMax          int
	Rules           []string
	MinLength       int
	Flag            *Flag
	BeginFlag       *Flag
	EndFlag         *Flag
	MiddleFlag      *Flag
	OnlyFlag        *Flag
	PermitFlag      *Flag
	ForbidFlag      *Flag
	MoreSuffixes    bool
	Root            *Flag
	WordMax         int
	ForbidDup       bool
	ForbidRepeat    bool
	CheckCase       bool
	CheckTriple     bool
	SimplifyTriple  bool
	ForbidPats      []CompoundPattern
	ForceUpperFlag  *Flag
	Syllable        CompoundSyllable
	SyllableNum     int
}

func defaultCompoundConfig() CompoundConfig {
	return CompoundConfig{SugMax: 3, MinLength: 3}
}

// ParsedConfig is the product of folding an affix file's directive Nodes:
// every scalar field, the compound sub-config, the ordered rule-group list,
// and the resolved flag→meaning map.
type ParsedConfig struct {
	Encoding Encoding
	FlagType FlagType

	Language      string
	IgnoreChars   string
	NeighborKeys  string
	TryCharacters string

	ComplexPrefixes bool

	AffixAlias []string
	MorphAlias []string

	Replacements []Conversion
	Maps         []string
	Phonetics    []Phonetic

	NoSuggestFlag       *Flag
	WarnRareFlag        *Flag
	NGramSugMax         int
	NGramDiffMax        int
	NGramLimitToDiffMax bool
	NoSplitSuggestions  bool
	KeepTermDots        bool
	ForbidWarnWords     bool

	Compound CompoundConfig

	AfxRules []*ParsedRuleGroup

	AfxCircumflexFlag  *Flag
	ForbiddenWordFlag  *Flag
	AfxFullStrip       bool
	AfxKeepCaseFlag    *Flag
	InputConversions   []Conversion
	OutputConversions  []Conversion
	AfxNeededFlag      *Flag
	AfxSubstandardFlag *Flag
	AfxWordChars       string
	AfxCheckSharps     bool

	Name     string
	HomePage string
	Version  string

	FlagMap map[Flag]FlagValue
}

// LoadFromString parses affix-file text and folds it into a ParsedConfig in
// one step.
func LoadFromString(s string) (*ParsedConfig, error) {
	nodes, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return FromParsed(nodes)
}

// FromParsed folds an ordered directive-node sequence into a ParsedConfig,
// per spec.md §4.5: later PFX/SFX groups append, everything else
// overwrites, deprecated directives warn rather than fail, and the
// flag→FlagValue map is resolved (and validated for collisions) once the
// flag type for the whole file is known.
func FromParsed(nodes []Node) (*ParsedConfig, error) {
	res := &ParsedConfig{
		FlagType: FlagASCII,
		Compound: defaultCompoundConfig(),
		FlagMap:  make(map[Flag]FlagValue),
	}

	// Flag-type may be declared anywhere in the file; resolve it first so
	// every flag-bearing directive below decodes under the right scheme,
	// matching spec.md's "deferred, revalidated at end-of-parse" policy
	// via a simple two-pass fold instead of literal deferred revalidation.
	for _, n := range nodes {
		if n.Kind == NodeFlagType {
			res.FlagType = n.FlagType
		}
	}

	decode := func(raw string) (Flag, error) {
		return ParseOne(res.FlagType, raw)
	}

	for _, n := range nodes {
		var err error
		switch n.Kind {
		case NodeEncoding:
			res.Encoding = n.Encoding
		case NodeFlagType:
			// already applied above
		case NodeComplexPrefixes:
			res.ComplexPrefixes = true
		case NodeLanguage:
			res.Language = n.Str
		case NodeIgnoreChars:
			res.IgnoreChars = n.Str
		case NodeAffixAlias:
			res.AffixAlias = n.Flags
		case NodeMorphAlias:
			res.MorphAlias = n.Flags
		case NodeNeighborKeys:
			res.NeighborKeys = n.Str
		case NodeTryCharacters:
			res.TryCharacters = n.Str
		case NodeNoSuggestFlag:
			res.NoSuggestFlag, err = decodeP(decode, n.Str)
		case NodeCompoundSugMax:
			res.Compound.SugMax = n.Int
		case NodeNGramSugMax:
			res.NGramSugMax = n.Int
		case NodeNGramDiffMax:
			res.NGramDiffMax = n.Int
		case NodeNGramLimitToDiffMax:
			res.NGramLimitToDiffMax = true
		case NodeNoSplitSuggestions:
			res.NoSplitSuggestions = true
		case NodeKeepTermDots:
			res.KeepTermDots = true
		case NodeReplacement:
			res.Replacements = n.Conversions
		case NodeMapping:
			res.Maps = n.Mappings
		case NodePhonetic:
			res.Phonetics = n.Phonetics
		case NodeWarnRareFlag:
			res.WarnRareFlag, err = decodeP(decode, n.Str)
		case NodeForbidWarnWords:
			res.ForbidWarnWords = true
		case NodeBreakSeparator:
			res.Compound.BreakSeparators = n.CompoundSet
		case NodeCompoundRule:
			res.Compound.Rules = n.CompoundSet
		case NodeCompoundMinLen:
			res.Compound.MinLength = n.Int
		case NodeCompoundFlag:
			res.Compound.Flag, err = decodeP(decode, n.Str)
		case NodeCompoundBeginFlag:
			res.Compound.BeginFlag, err = decodeP(decode, n.Str)
		case NodeCompoundEndFlag:
			res.Compound.EndFlag, err = decodeP(decode, n.Str)
		case NodeCompoundMiddleFlag:
			res.Compound.MiddleFlag, err = decodeP(decode, n.Str)
		case NodeCompoundOnlyFlag:
			res.Compound.OnlyFlag, err = decodeP(decode, n.Str)
		case NodeCompoundPermitFlag:
			res.Compound.PermitFlag, err = decodeP(decode, n.Str)
		case NodeCompoundForbidFlag:
			res.Compound.ForbidFlag, err = decodeP(decode, n.Str)
		case NodeCompoundMoreSuffixes:
			res.Compound.MoreSuffixes = true
		case NodeCompoundRoot:
			res.Compound.Root, err = decodeP(decode, n.Str)
		case NodeCompoundWordMax:
			res.Compound.WordMax = n.Int
		case NodeCompoundForbidDup:
			res.Compound.ForbidDup = true
		case NodeCompoundForbidRepeat:
			res.Compound.ForbidRepeat = true
		case NodeCompoundCheckCase:
			res.Compound.CheckCase = true
		case NodeCompoundCheckTriple:
			res.Compound.CheckTriple = true
		case NodeCompoundSimplifyTriple:
			res.Compound.SimplifyTriple = true
		case NodeCompoundForbidPats:
			res.Compound.ForbidPats = n.Patterns
		case NodeCompoundForceUpper:
			res.Compound.ForceUpperFlag, err = decodeP(decode, n.Str)
		case NodeCompoundSyllable:
			res.Compound.Syllable = n.Syllable
		case NodeSyllableNum:
			res.Compound.SyllableNum = n.Int
		case NodeAffixRule:
			var flag Flag
			flag, err = decode(n.Str)
			if err == nil {
				n.Rule.Flag = flag
				res.AfxRules = append(res.AfxRules, n.Rule)
			}
		case NodeAfxCircumfixFlag:
			res.AfxCircumflexFlag, err = decodeP(decode, n.Str)
		case NodeForbiddenWordFlag:
			res.ForbiddenWordFlag, err = decodeP(decode, n.Str)
		case NodeAfxFullStrip:
			res.AfxFullStrip = true
		case NodeAfxKeepCaseFlag:
			res.AfxKeepCaseFlag, err = decodeP(decode, n.Str)
		case NodeAfxInputConversion:
			res.InputConversions = n.Conversions
		case NodeAfxOutputConversion:
			res.OutputConversions = n.Conversions
		case NodeAfxLemmaPresentFlag:
			Logger.Warn().Msg("flag LEMMA_PRESENT is deprecated")
		case NodeAfxNeededFlag:
			res.AfxNeededFlag, err = decodeP(decode, n.Str)
		case NodeAfxPseudoRootFlag:
			Logger.Warn().Msg("flag PSEUDOROOT is deprecated")
		case NodeAfxSubstandardFlag:
			res.AfxSubstandardFlag, err = decodeP(decode, n.Str)
		case NodeAfxWordChars:
			res.AfxWordChars = n.Str
		case NodeAfxCheckSharps:
			res.AfxCheckSharps = true
		case NodeComment:
			// no-op
		case NodeName:
			res.Name = n.Str
		case NodeHomePage:
			res.HomePage = n.Str
		case NodeVersion:
			res.Version = n.Str
		}
		if err != nil {
			return nil, err
		}
	}

	if err := res.resolveFlagMap(); err != nil {
		return nil, err
	}
	return res, nil
}

func decodeP(decode func(string) (Flag, error), raw string) (*Flag, error) {
	if raw == "" {
		return nil, nil
	}
	f, err := decode(raw)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// resolveFlagMap builds the flag→FlagValue map, per spec.md §4.5: every
// well-known flag-bearing field and every rule group contributes one
// entry; collisions are a fatal build error.
func (c *ParsedConfig) resolveFlagMap() error {
	assign := func(f *Flag, kind FlagValueKind) error {
		if f == nil {
			return nil
		}
		if existing, ok := c.FlagMap[*f]; ok {
			return spellerr.NewDuplicateFlagError(Format(c.FlagType, *f), existing.Kind.String(), kind.String())
		}
		c.FlagMap[*f] = FlagValue{Kind: kind}
		return nil
	}

	markers := []struct {
		f    *Flag
		kind FlagValueKind
	}{
		{c.ForbiddenWordFlag, FVForbiddenWord},
		{c.NoSuggestFlag, FVNoSuggest},
		{c.AfxNeededFlag, FVAfxNeeded},
		{c.Compound.Flag, FVCompoundFlag},
		{c.Compound.BeginFlag, FVCompoundBegin},
		{c.Compound.EndFlag, FVCompoundEnd},
		{c.Compound.MiddleFlag, FVCompoundMiddle},
		{c.Compound.OnlyFlag, FVCompoundOnly},
		{c.Compound.PermitFlag, FVCompoundPermit},
		{c.Compound.ForbidFlag, FVCompoundForbid},
		{c.Compound.Root, FVCompoundRoot},
		{c.Compound.ForceUpperFlag, FVCompoundForceUpper},
		{c.WarnRareFlag, FVWarnRare},
		{c.AfxKeepCaseFlag, FVKeepCase},
		{c.AfxCircumflexFlag, FVCircumfix},
		{c.AfxSubstandardFlag, FVSubstandard},
	}
	for _, m := range markers {
		if err := assign(m.f, m.kind); err != nil {
			return err
		}
	}

	for _, group := range c.AfxRules {
		if existing, ok := c.FlagMap[group.Flag]; ok {
			return spellerr.NewDuplicateFlagError(Format(c.FlagType, group.Flag), existing.Kind.String(), "")
		}
		c.FlagMap[group.Flag] = FlagValue{Kind: FVRule, RuleGroup: group}
	}
	return nil
}

// ValidateFlags ensures every flag in flags resolves to a known FlagValue,
// per spec.md's "validated context" for unknown flags (§4.8 Failure
// semantics / §9 Open Questions resolution #1).
func (c *ParsedConfig) ValidateFlags(stem string, flags []Flag) error {
	for _, f := range flags {
		if _, ok := c.FlagMap[f]; !ok {
			return spellerr.NewNonmatchingFlagError(stem, Format(c.FlagType, f))
		}
	}
	return nil
}
