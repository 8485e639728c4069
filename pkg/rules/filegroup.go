package rules

import (
	"github.com/yaklabco/bazelfix/pkg/check"
)

var reOrphanListAfterParen = compile(`(\),?\s*)=\s*(\["\S+"\])`)

// FileGroupRule re-attaches a list value stranded behind a closing
// parenthesis, a shape left behind when a filegroup's visibility
// attribute loses its key.
type FileGroupRule struct {
	check.BaseRule
}

// NewFileGroupRule creates the filegroup rule.
func NewFileGroupRule() *FileGroupRule {
	return &FileGroupRule{
		BaseRule: check.NewBaseRule(
			check.KindFileGroupIssue,
			"filegroup",
			"re-attaches orphaned list values after a closing parenthesis as visibility attributes",
			true,
		),
	}
}

// Detect flags orphaned list values after a closing parenthesis.
func (r *FileGroupRule) Detect(f *check.File) []check.Finding {
	if !matches(reOrphanListAfterParen, f.Text) {
		return nil
	}
	return []check.Finding{{
		Kind:    r.Kind(),
		Message: "orphaned list value after closing parenthesis",
	}}
}

// Fix re-attaches the orphaned list as a visibility attribute.
func (r *FileGroupRule) Fix(_ *check.File, text string) (string, bool) {
	out := replaceAll(reOrphanListAfterParen, text, "${1}\n    visibility = ${2}")
	return out, out != text
}
