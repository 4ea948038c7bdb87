package pattern

import (
	"fmt"
	"regexp"
)

// CompileError reports a pattern that is not a valid search expression.
// It is distinct from an empty result: a search with a bad pattern is
// rejected before any traversal happens.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Matcher is a compiled, case-insensitive, unanchored name matcher.
// A Matcher belongs to the scan that compiled it and is not shared.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds a Matcher from a raw search expression. Matching is
// case-insensitive substring semantics: the expression is not anchored,
// and the empty pattern matches every name.
func Compile(expr string) (*Matcher, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, &CompileError{Pattern: expr, Err: err}
	}
	return &Matcher{re: re}, nil
}

// Matches reports whether the bare entry name matches the pattern.
func (m *Matcher) Matches(name string) bool {
	return m.re.MatchString(name)
}
