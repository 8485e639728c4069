package rules

import (
	"github.com/yaklabco/bazelfix/pkg/check"
)

// maxCollapsePasses bounds the duplicate-visibility collapse loop. A
// run of N duplicates shrinks by one pair per pass, so this covers any
// realistic corruption depth.
const maxCollapsePasses = 10

var (
	reCommentedEquals  = compile(`#\s*=\s*(\["\S+"\])\s*,?\s*\n`)
	reCommentOutdent   = compile(`(#[^#\n]+\n)(\s*)visibility\s*=\s*\["\S+"\]`)
	reOutdentSyntax    = compile(`(\],?\s*\n[^#\n]*?\n\s*visibility\s*=\s*\["\S+"\]\s*),\s*\n\s*outdent`)
	reDuplicateVis     = compile(`(visibility\s*=\s*\["\S+"\]\s*),?\s*\n\s*visibility\s*=\s*\["\S+"\](,?\s*)\n`)
)

// CommentBlockRule repairs visibility text that leaked from or was
// mangled inside comment blocks: orphaned equals signs in comments,
// visibility lines outdented out of a comment block, stray outdent
// artifacts with trailing commas, and duplicated visibility
// attributes.
type CommentBlockRule struct {
	check.BaseRule
}

// NewCommentBlockRule creates the comment-block rule.
func NewCommentBlockRule() *CommentBlockRule {
	return &CommentBlockRule{
		BaseRule: check.NewBaseRule(
			check.KindCommentBlockIssue,
			"comment-blocks",
			"repairs visibility attributes mangled in or leaking from comment blocks",
			true,
		),
	}
}

// Detect flags the comment-block malformations this rule can rewrite.
func (r *CommentBlockRule) Detect(f *check.File) []check.Finding {
	var findings []check.Finding

	if matches(reCommentedEquals, f.Text) {
		findings = append(findings, check.Finding{
			Kind:    r.Kind(),
			Message: "malformed commented visibility attribute",
		})
	}
	if matches(reCommentOutdent, f.Text) {
		findings = append(findings, check.Finding{
			Kind:    r.Kind(),
			Message: "visibility outdented out of a comment block",
		})
	}
	if matches(reOutdentSyntax, f.Text) {
		findings = append(findings, check.Finding{
			Kind:    r.Kind(),
			Message: "outdent artifact after visibility attribute",
		})
	}
	if matches(reDuplicateVis, f.Text) {
		findings = append(findings, check.Finding{
			Kind:    r.Kind(),
			Message: "duplicate visibility attribute",
		})
	}

	return findings
}

// Fix rewrites the comment-block malformations. The duplicate
// collapse loops until stable: a run of three or more visibility
// lines shrinks by one pair per pass.
func (r *CommentBlockRule) Fix(_ *check.File, text string) (string, bool) {
	out := text

	out = replaceAll(reCommentedEquals, out, "#    visibility = ${1}\n")
	out = replaceAll(reCommentOutdent, out, `${1}${2}# visibility = ["//visibility:public"]`)
	out = replaceAll(reOutdentSyntax, out, "${1}")

	if reDuplicateVis != nil {
		for range maxCollapsePasses {
			next := reDuplicateVis.ReplaceAllString(out, "${1}${2}\n")
			if next == out {
				break
			}
			out = next
		}
	}

	return out, out != text
}
