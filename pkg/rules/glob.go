package rules

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/bazelfix/pkg/check"
)

const (
	patternFlat      = "*.swift"
	patternSources   = "Sources/**/*.swift"
	patternRecursive = "**/*.swift"
)

var (
	reBracketBeforeComma        = compile(`(\[\s*"[^"]+"\s*\])\s*\n\s*,`)
	reCommentBracketBeforeComma = compile(`(#\s*\[\s*"[^"]+"\s*\])\s*\n\s*,`)
)

// GlobPatternRule checks that a srcs glob pattern would lexically
// select the Swift files actually present under the rule's directory,
// and repairs bracket/comma malformations around glob lists. A wrong
// but well-formed pattern is reported with the preferred replacement;
// the pattern itself is only rewritten by the emptiness rule when the
// census makes the correct choice unambiguous.
type GlobPatternRule struct {
	check.BaseRule
}

// NewGlobPatternRule creates the glob-pattern rule.
func NewGlobPatternRule() *GlobPatternRule {
	return &GlobPatternRule{
		BaseRule: check.NewBaseRule(
			check.KindIncorrectGlobPattern,
			"glob-pattern",
			"srcs glob patterns must match the Swift files present under the rule's directory",
			true,
		),
	}
}

// BestPattern chooses the preferred glob pattern for the file's
// directory: a single-level wildcard when every Swift file sits
// directly in the directory, a Sources-rooted recursive wildcard when
// every file sits under Sources/, and a fully recursive wildcard
// otherwise.
func BestPattern(f *check.File) string {
	switch {
	case f.AllSwiftInRoot():
		return patternFlat
	case f.HasSourcesDir() && f.AllSwiftUnderSources():
		return patternSources
	default:
		return patternRecursive
	}
}

// Detect compares the declared pattern against the directory census.
func (r *GlobPatternRule) Detect(f *check.File) []check.Finding {
	if reSrcsGlob == nil {
		return nil
	}
	caps := reSrcsGlob.FindStringSubmatch(f.Text)
	if caps == nil {
		return nil
	}
	pattern := caps[1]

	if pattern == patternSources && !f.HasSourcesDir() {
		return []check.Finding{{
			Kind:    r.Kind(),
			Message: "glob pattern 'Sources/**/*.swift' is used but no Sources directory exists",
		}}
	}

	if !f.HasSwiftSources() {
		return nil
	}
	for _, src := range f.SwiftSources() {
		ok, err := doublestar.Match(pattern, src)
		if err != nil {
			// Unusable pattern text counts as a mismatch.
			ok = false
		}
		if !ok {
			return []check.Finding{{
				Kind: r.Kind(),
				Message: fmt.Sprintf("glob pattern %q doesn't select %s, should be %q",
					pattern, src, BestPattern(f)),
			}}
		}
	}
	return nil
}

// Fix repairs malformed glob list punctuation: a closing bracket
// separated from its comma by a line break, in both plain and
// commented-out forms.
func (r *GlobPatternRule) Fix(_ *check.File, text string) (string, bool) {
	out := text
	out = replaceAll(reCommentBracketBeforeComma, out, "${1},")
	out = replaceAll(reBracketBeforeComma, out, "${1},")
	return out, out != text
}
