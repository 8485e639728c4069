package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/bazelfix/pkg/check"
)

// PublicVisibility is the canonical visibility attribute line inserted
// into rule blocks that declare none.
const PublicVisibility = `    visibility = ["//visibility:public"],` + "\n"

var (
	reVisibilityValue = compile(`visibility\s*=\s*\[\s*["']([^"']+)["']`)
	reVisibilityAttr  = compile(`visibility\s*=`)
	reRuleBlock       = compile(`\b(swift_library|swift_binary|swift_test|filegroup)\s*\(`)
	reMisplacedVis    = compile(`\)\s*\n\s*visibility\s*=\s*\[\s*"//visibility:public"\s*\]\s*,\s*\)`)
	reFinalParen      = compile(`\)[\s\n]*$`)
)

// VisibilityRule flags rule blocks with no visibility attribute and
// values restricted to a non-public, non-package-qualified target,
// and repairs misplaced or missing visibility attributes.
type VisibilityRule struct {
	check.BaseRule
}

// NewVisibilityRule creates the visibility rule.
func NewVisibilityRule() *VisibilityRule {
	return &VisibilityRule{
		BaseRule: check.NewBaseRule(
			check.KindVisibilityIssue,
			"visibility",
			"rule blocks need a well-formed visibility attribute, //visibility:public by default",
			true,
		),
	}
}

// Detect flags absent and suspicious visibility declarations.
func (r *VisibilityRule) Detect(f *check.File) []check.Finding {
	if reVisibilityValue == nil {
		return nil
	}

	caps := reVisibilityValue.FindStringSubmatch(f.Text)
	if caps == nil {
		if matches(reRuleBlock, f.Text) {
			return []check.Finding{{
				Kind:    r.Kind(),
				Message: "rule block has no visibility specified, might need //visibility:public",
			}}
		}
		return nil
	}

	value := caps[1]
	if value != "//visibility:public" && !strings.HasPrefix(value, "//") {
		return []check.Finding{{
			Kind:    r.Kind(),
			Message: fmt.Sprintf("potentially restrictive visibility: %q", value),
		}}
	}
	return nil
}

// Fix repairs a visibility attribute stranded outside its rule block,
// then inserts the canonical attribute before the final closing
// parenthesis when the file declares none at all.
func (r *VisibilityRule) Fix(_ *check.File, text string) (string, bool) {
	out := text

	if matches(reMisplacedVis, out) {
		out = reMisplacedVis.ReplaceAllString(out, "    visibility = [\"//visibility:public\"],\n)")
	}

	if matches(reRuleBlock, out) && !matches(reVisibilityAttr, out) && reFinalParen != nil {
		if loc := reFinalParen.FindStringIndex(out); loc != nil {
			out = out[:loc[0]] + PublicVisibility + out[loc[0]:]
		}
	}

	return out, out != text
}
