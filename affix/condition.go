package affix

import "regexp"

// CompileCondition turns an affix rule's CONDITION column into an anchored
// matcher. Prefix conditions are anchored at the start of the word
// ("^C.*$"), suffix conditions at the end ("^.*C$"). The special condition
// "." means unconditional and compiles to nil rather than a regex, so the
// hot expansion path avoids both allocation and engine dispatch for the
// (very common) case of no condition at all.
func CompileCondition(condition string, kind RuleType) (*regexp.Regexp, error) {
	if condition == "" || condition == "." {
		return nil, nil
	}
	var pattern string
	if kind == Prefix {
		pattern = "^" + condition + ".*$"
	} else {
		pattern = "^.*" + condition + "$"
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// MatchesCondition reports whether re accepts s, treating a nil regex (the
// unconditional case) as always matching.
func MatchesCondition(re *regexp.Regexp, s string) bool {
	if re == nil {
		return true
	}
	return re.MatchString(s)
}
