package affix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/steosofficial/spellkeep/morph"
	"github.com/steosofficial/spellkeep/spellerr"
)

// Parse tokenizes the full text of an affix file into an ordered sequence
// of directive Nodes, per spec.md §4.4: each line's upper-cased first token
// is looked up in a fixed table of per-directive parsers; on no match,
// the line is treated as unrecognized junk and skipped rather than failing
// the whole parse (real-world affix files routinely carry stray content).
func Parse(text string) ([]Node, error) {
	p := &parser{lines: splitLines(text)}
	var nodes []Node

	for p.pos < len(p.lines) {
		line := stripComment(p.lines[p.pos])
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			p.pos++
			continue
		}
		fields := strings.Fields(trimmed)
		key := strings.ToUpper(fields[0])

		handler, ok := directiveHandlers[key]
		if !ok {
			// Unrecognized line: tolerate junk, advance past it.
			p.pos++
			continue
		}
		node, err := handler(p, fields)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		p.pos++
	}
	return nodes, nil
}

type parser struct {
	lines []string
	pos   int
}

func (p *parser) lineNo() uint32 {
	return uint32(p.pos + 1)
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// bodyLine returns the trimmed, comment-stripped content of the line at
// the given absolute index, or "" past end of input.
func (p *parser) bodyLine(idx int) string {
	if idx >= len(p.lines) {
		return ""
	}
	return strings.TrimSpace(stripComment(p.lines[idx]))
}

type directiveFn func(p *parser, fields []string) (Node, error)

// directiveHandlers dispatches on the upper-cased first token of a line.
var directiveHandlers map[string]directiveFn

func init() {
	directiveHandlers = map[string]directiveFn{
		"SET":                  parseEncodingDirective,
		"FLAG":                 parseFlagTypeDirective,
		"COMPLEXPREFIXES":      boolDirective(NodeComplexPrefixes),
		"LANG":                 stringDirective(NodeLanguage),
		"IGNORE":               stringDirective(NodeIgnoreChars),
		"AF":                   simpleTableDirective(NodeAffixAlias),
		"AM":                   simpleTableDirective(NodeMorphAlias),
		"KEY":                  stringDirective(NodeNeighborKeys),
		"TRY":                  stringDirective(NodeTryCharacters),
		"NOSUGGEST":            flagDirective(NodeNoSuggestFlag),
		"COMPOUNDSUGMAX":       intDirective(NodeCompoundSugMax),
		"MAXNGRAMSUGS":         intDirective(NodeNGramSugMax),
		"MAXDIFF":              intDirective(NodeNGramDiffMax),
		"ONLYMAXDIFF":          boolDirective(NodeNGramLimitToDiffMax),
		"NOSPLITSUGS":          boolDirective(NodeNoSplitSuggestions),
		"SUGSWITHDOTS":         boolDirective(NodeKeepTermDots),
		"REP":                  conversionTableDirective(NodeReplacement),
		"ICONV":                conversionTableDirective(NodeAfxInputConversion),
		"OCONV":                conversionTableDirective(NodeAfxOutputConversion),
		"MAP":                  mapTableDirective,
		"PHONE":                phoneticTableDirective,
		"WARN":                 flagDirective(NodeWarnRareFlag),
		"FORBIDWARN":           boolDirective(NodeForbidWarnWords),
		"BREAK":                stringTableDirective(NodeBreakSeparator),
		"COMPOUNDRULE":         stringTableDirective(NodeCompoundRule),
		"COMPOUNDMIN":          intDirective(NodeCompoundMinLen),
		"COMPOUNDFLAG":         flagDirective(NodeCompoundFlag),
		"COMPOUNDBEGIN":        flagDirective(NodeCompoundBeginFlag),
		"COMPOUNDEND":          flagDirective(NodeCompoundEndFlag),
		"COMPOUNDLAST":         flagDirective(NodeCompoundEndFlag),
		"COMPOUNDMIDDLE":       flagDirective(NodeCompoundMiddleFlag),
		"ONLYINCOMPOUND":       flagDirective(NodeCompoundOnlyFlag),
		"COMPOUNDPERMITFLAG":   flagDirective(NodeCompoundPermitFlag),
		"COMPOUNDFORBIDFLAG":   flagDirective(NodeCompoundForbidFlag),
		"COMPOUNDMORESUFFIXES": boolDirective(NodeCompoundMoreSuffixes),
		"COMPOUNDROOT":         flagDirective(NodeCompoundRoot),
		"COMPOUNDWORDMAX":      intDirective(NodeCompoundWordMax),
		"CHECKCOMPOUNDDUP":     boolDirective(NodeCompoundForbidDup),
		"CHECKCOMPOUNDREP":     boolDirective(NodeCompoundForbidRepeat),
		"CHECKCOMPOUNDCASE":    boolDirective(NodeCompoundCheckCase),
		"CHECKCOMPOUNDTRIPLE":  boolDirective(NodeCompoundCheckTriple),
		"SIMPLIFIEDTRIPLE":     boolDirective(NodeCompoundSimplifyTriple),
		"CHECKCOMPOUNDPATTERN": compoundPatternTableDirective,
		"FORCEUCASE":           flagDirective(NodeCompoundForceUpper),
		"COMPOUNDSYLLABLE":     compoundSyllableDirective,
		"SYLLABLENUM":          intDirective(NodeSyllableNum),
		"PFX":                  affixTableDirective,
		"SFX":                  affixTableDirective,
		"CIRCUMFIX":            flagDirective(NodeAfxCircumfixFlag),
		"FORBIDDENWORD":        flagDirective(NodeForbiddenWordFlag),
		"FULLSTRIP":            boolDirective(NodeAfxFullStrip),
		"KEEPCASE":             flagDirective(NodeAfxKeepCaseFlag),
		"LEMMA_PRESENT":        flagDirective(NodeAfxLemmaPresentFlag),
		"NEEDAFFIX":            flagDirective(NodeAfxNeededFlag),
		"PSEUDOROOT":           flagDirective(NodeAfxPseudoRootFlag),
		"SUBSTANDARD":          flagDirective(NodeAfxSubstandardFlag),
		"WORDCHARS":            stringDirective(NodeAfxWordChars),
		"CHECKSHARPS":          boolDirective(NodeAfxCheckSharps),
		"NAME":                 stringDirective(NodeName),
		"HOME":                 stringDirective(NodeHomePage),
		"VERSION":              stringDirective(NodeVersion),
	}
}

func boolDirective(kind NodeKind) directiveFn {
	return func(p *parser, fields []string) (Node, error) {
		if len(fields) != 1 {
			return Node{}, spellerr.NewParseError(spellerr.ErrBoolean, fields[0], p.lineNo(), 1,
				"boolean types cannot have anything else on their line")
		}
		return Node{Kind: kind, Bool: true}, nil
	}
}

func stringDirective(kind NodeKind) directiveFn {
	return func(p *parser, fields []string) (Node, error) {
		val := ""
		if len(fields) > 1 {
			val = strings.Join(fields[1:], " ")
		}
		return Node{Kind: kind, Str: val}, nil
	}
}

func flagDirective(kind NodeKind) directiveFn {
	return func(p *parser, fields []string) (Node, error) {
		if len(fields) < 2 {
			return Node{}, spellerr.NewParseError(spellerr.ErrInvalidFlag, fields[0], p.lineNo(), 1,
				"expected a flag value")
		}
		return Node{Kind: kind, Str: fields[1]}, nil
	}
}

func intDirective(kind NodeKind) directiveFn {
	return func(p *parser, fields []string) (Node, error) {
		if len(fields) < 2 {
			return Node{}, spellerr.NewParseError(spellerr.ErrInt, fields[0], p.lineNo(), 1,
				"expected an integer value")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return Node{}, spellerr.NewParseError(spellerr.ErrInt, fields[0], p.lineNo(), 1,
				fmt.Sprintf("failed to parse integer: %v", err))
		}
		return Node{Kind: kind, Int: n}, nil
	}
}

func parseEncodingDirective(p *parser, fields []string) (Node, error) {
	if len(fields) < 2 {
		return Node{}, spellerr.NewParseError(spellerr.ErrEncoding, fields[0], p.lineNo(), 1, "unrecognized encoding")
	}
	enc, err := ParseEncoding(fields[1])
	if err != nil {
		return Node{}, spellerr.NewParseError(spellerr.ErrEncoding, fields[0], p.lineNo(), 1, err.Error())
	}
	return Node{Kind: NodeEncoding, Encoding: enc}, nil
}

func parseFlagTypeDirective(p *parser, fields []string) (Node, error) {
	if len(fields) < 2 {
		return Node{}, spellerr.NewParseError(spellerr.ErrFlagType, fields[0], p.lineNo(), 1, "unrecognized flag")
	}
	ft, err := ParseFlagType(fields[1])
	if err != nil {
		return Node{}, spellerr.NewParseError(spellerr.ErrFlagType, fields[0], p.lineNo(), 1, err.Error())
	}
	return Node{Kind: NodeFlagType, FlagType: ft}, nil
}

// simpleTableDirective parses "KEY <count>" followed by <count> rows each
// reopened with KEY, storing the raw row bodies verbatim (used for AF/AM
// alias tables, whose aliased content this module does not need to
// semantically resolve beyond preserving declaration order).
func simpleTableDirective(kind NodeKind) directiveFn {
	return func(p *parser, fields []string) (Node, error) {
		count, rows, err := readSimpleTable(p, fields)
		if err != nil {
			return Node{}, err
		}
		_ = count
		return Node{Kind: kind, Flags: rows}, nil
	}
}

func stringTableDirective(kind NodeKind) directiveFn {
	return func(p *parser, fields []string) (Node, error) {
		_, rows, err := readSimpleTable(p, fields)
		if err != nil {
			return Node{}, err
		}
		return Node{Kind: kind, CompoundSet: rows}, nil
	}
}

func conversionTableDirective(kind NodeKind) directiveFn {
	return func(p *parser, fields []string) (Node, error) {
		_, rows, err := readSimpleTable(p, fields)
		if err != nil {
			return Node{}, err
		}
		conversions := make([]Conversion, 0, len(rows))
		for _, row := range rows {
			c, err := ParseConversion(row)
			if err != nil {
				return Node{}, spellerr.NewParseError(spellerr.ErrConversionSplit, row, p.lineNo(), 1, err.Error())
			}
			conversions = append(conversions, c)
		}
		return Node{Kind: kind, Conversions: conversions}, nil
	}
}

func phoneticTableDirective(p *parser, fields []string) (Node, error) {
	_, rows, err := readSimpleTable(p, fields)
	if err != nil {
		return Node{}, err
	}
	phonetics := make([]Phonetic, 0, len(rows))
	for _, row := range rows {
		ph, err := ParsePhonetic(row)
		if err != nil {
			return Node{}, spellerr.NewParseError(spellerr.ErrPhonetic, row, p.lineNo(), 1, err.Error())
		}
		phonetics = append(phonetics, ph)
	}
	return Node{Kind: NodePhonetic, Phonetics: phonetics}, nil
}

func mapTableDirective(p *parser, fields []string) (Node, error) {
	_, rows, err := readSimpleTable(p, fields)
	if err != nil {
		return Node{}, err
	}
	return Node{Kind: NodeMapping, Mappings: rows}, nil
}

func compoundPatternTableDirective(p *parser, fields []string) (Node, error) {
	_, rows, err := readSimpleTable(p, fields)
	if err != nil {
		return Node{}, err
	}
	patterns := make([]CompoundPattern, 0, len(rows))
	for _, row := range rows {
		cp, err := ParseCompoundPattern(row)
		if err != nil {
			return Node{}, spellerr.NewParseError(spellerr.ErrCompoundPattern, row, p.lineNo(), 1, err.Error())
		}
		patterns = append(patterns, cp)
	}
	return Node{Kind: NodeCompoundForbidPats, Patterns: patterns}, nil
}

func compoundSyllableDirective(p *parser, fields []string) (Node, error) {
	if len(fields) < 3 {
		return Node{}, spellerr.NewParseError(spellerr.ErrCompoundSyllableCount, fields[0], p.lineNo(), 1,
			fmt.Sprintf("expected 2 items but got %d", len(fields)-1))
	}
	cs, err := ParseCompoundSyllable(strings.Join(fields[1:], " "))
	if err != nil {
		return Node{}, spellerr.NewParseError(spellerr.ErrCompoundSyllableParse, fields[0], p.lineNo(), 1, err.Error())
	}
	return Node{Kind: NodeCompoundSyllable, Syllable: cs}, nil
}

// readSimpleTable reads a "KEY <count>" header plus <count> subsequent body
// lines, each reopened with KEY, returning each row's content with the
// leading KEY token stripped. p.pos is advanced one line per body row and
// is left on the last consumed row (on the header when count is 0); the
// caller (Parse's loop) then advances past it.
func readSimpleTable(p *parser, headerFields []string) (int, []string, error) {
	if len(headerFields) < 2 {
		return 0, nil, spellerr.NewParseError(spellerr.ErrTableCount, headerFields[0], p.lineNo(), 1, "missing table count")
	}
	count, err := strconv.Atoi(headerFields[1])
	if err != nil || count < 0 {
		return 0, nil, spellerr.NewParseError(spellerr.ErrTableCount, headerFields[0], p.lineNo(), 1, "invalid table count")
	}
	key := strings.ToUpper(headerFields[0])
	rows := make([]string, 0, count)
	for i := 0; i < count; i++ {
		p.pos++
		line := p.bodyLine(p.pos)
		rowFields := strings.Fields(line)
		if len(rowFields) == 0 || !strings.EqualFold(rowFields[0], key) {
			return 0, nil, spellerr.NewParseError(spellerr.ErrTableCount, key, p.lineNo(), 1,
				fmt.Sprintf("expected %d values in table but got %d", count, i))
		}
		rows = append(rows, strings.Join(rowFields[1:], " "))
	}
	return count, rows, nil
}

// affixTableDirective parses a PFX/SFX header "KEY FLAG XPROD COUNT"
// followed by COUNT body rows "KEY FLAG STRIP AFFIX CONDITION [MORPH...]".
func affixTableDirective(p *parser, fields []string) (Node, error) {
	if len(fields) < 4 {
		return Node{}, spellerr.NewParseError(spellerr.ErrAffixHeader, fields[0], p.lineNo(), 1, "could not parse affix header")
	}
	kind, err := ParseRuleType(fields[0])
	if err != nil {
		return Node{}, spellerr.NewParseError(spellerr.ErrAffixHeader, fields[0], p.lineNo(), 1, err.Error())
	}
	headerFlagText := fields[1]
	var canCombine bool
	switch strings.ToUpper(fields[2]) {
	case "Y":
		canCombine = true
	case "N":
		canCombine = false
	default:
		return Node{}, spellerr.NewParseError(spellerr.ErrAffixCrossProduct, fields[0], p.lineNo(), 1,
			"value is not a valid cross product indicator")
	}
	count, err := strconv.Atoi(fields[3])
	if err != nil || count < 0 {
		return Node{}, spellerr.NewParseError(spellerr.ErrTableCount, fields[0], p.lineNo(), 1, "invalid table count")
	}

	group := &ParsedRuleGroup{Kind: kind, CanCombine: canCombine}
	// Flag is decoded against the flag type later, during the fold step
	// (flag-type directives may not have been seen yet); store raw text
	// here and resolve in config.go.
	group.Flag = Flag(0)
	group.Rules = make([]ParsedRule, 0, count)

	key := fields[0]
	for i := 0; i < count; i++ {
		p.pos++
		line := p.bodyLine(p.pos)
		rowFields := strings.Fields(line)
		if len(rowFields) < 4 {
			return Node{}, spellerr.NewParseError(spellerr.ErrAffixBody, key, p.lineNo(), 1, "could not parse affix body")
		}
		if !strings.EqualFold(rowFields[0], key) {
			return Node{}, spellerr.NewParseError(spellerr.ErrAffixBody, key, p.lineNo(), 1, "could not parse affix body")
		}
		if rowFields[1] != headerFlagText {
			return Node{}, spellerr.NewParseError(spellerr.ErrAffixFlagMismatch, headerFlagText, p.lineNo(), 1,
				fmt.Sprintf("invalid affix body: flag does not match expected '%s'", headerFlagText))
		}
		strip := rowFields[2]
		if strip == "0" {
			strip = ""
		}
		affixTxt := rowFields[3]
		if affixTxt == "0" {
			affixTxt = ""
		}
		condition := "."
		var morphInfo []morph.Info
		if len(rowFields) > 4 {
			condition = rowFields[4]
			morphInfo = morph.ManyFromStr(strings.Join(rowFields[5:], " "))
		}
		re, err := CompileCondition(condition, kind)
		if err != nil {
			return Node{}, spellerr.NewParseError(spellerr.ErrRegex, condition, p.lineNo(), 1, err.Error())
		}
		group.Rules = append(group.Rules, ParsedRule{
			Affix:             affixTxt,
			Strip:             strip,
			Condition:         condition,
			CompiledCondition: re,
			MorphInfo:         morphInfo,
		})
	}
	// stash header flag text on the node itself via Str, resolved in config.go
	return Node{Kind: NodeAffixRule, Str: headerFlagText, Rule: group}, nil
}
