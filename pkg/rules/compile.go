package rules

import "regexp"

// compile returns the compiled expression, or nil when compilation
// fails. Callers treat a nil regexp as an inapplicable pattern: the
// affected detector or rewrite degrades to a no-op for the file
// rather than aborting the run.
func compile(expr string) *regexp.Regexp {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}

// replaceAll applies re to text when the pattern compiled, returning
// text unchanged for a nil regexp.
func replaceAll(re *regexp.Regexp, text, repl string) string {
	if re == nil {
		return text
	}
	return re.ReplaceAllString(text, repl)
}

// matches reports whether re matches text, treating a nil regexp as
// matching nothing.
func matches(re *regexp.Regexp, text string) bool {
	return re != nil && re.MatchString(text)
}
