package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/bazelfix/pkg/check"
)

// rewriteStep is one entry in an ordered chain of text transducers.
// Later steps operate on earlier steps' output, so the sequence is an
// explicit list rather than implicit call order.
type rewriteStep struct {
	re   *regexp.Regexp
	repl string
}

// apply runs the steps in order and returns the accumulated text.
func applySteps(steps []rewriteStep, text string) string {
	out := text
	for _, step := range steps {
		out = replaceAll(step.re, out, step.repl)
	}
	return out
}

// structuralSteps are the comma/equals/parenthesis placement repairs,
// in application order. Each is idempotent on its own output.
//
//nolint:gochecknoglobals // The step chain is a fixed property of the rule
var structuralSteps = []rewriteStep{
	// comma separated from an orphaned equals
	{
		re:   compile(`(\]\s*),\s*=\s*(\["\S+"\])`),
		repl: "${1}, \n    visibility = ${2}",
	},
	// duplicate visibility value before the closing paren
	{
		re:   compile(`(visibility\s*=\s*\["\S+"\]\s*),?\s*=\s*\["\S+"\](,?)\s*\)`),
		repl: "${1}${2})",
	},
	// outdent marker trailing a commented visibility pair
	{
		re:   compile(`(#\s*=\s*\["\S+"\]\s*),\s*=\s*\["\S+"\]\s*,\s*outdent`),
		repl: "${1}",
	},
	// orphaned equals after a closing paren
	{
		re:   compile(`(\)\s*)=\s*(\["\S+"\])`),
		repl: "${1}, \n    visibility = ${2}",
	},
	// orphaned equals after a closing bracket
	{
		re:   compile(`(\]\s*)=\s*(\["\S+"\])`),
		repl: "${1}, \n    visibility = ${2}",
	},
	// doubled comma before an orphaned equals
	{
		re:   compile(`(\],?),\s*=\s*(\["\S+"\])`),
		repl: "${1}, \n    visibility = ${2}",
	},
	// missing comma between visibility and the closing paren
	{
		re:   compile(`(visibility\s*=\s*\["\S+"\]\s*),?\s*\)`),
		repl: "${1},\n)",
	},
	// visibility escaping a fully commented-out block
	{
		re:   compile(`(#\s*swift_package\(\s*\n#\s*name\s*=\s*"[^"]+",\s*\n#\s*srcs\s*=\s*glob\(\[\s*\n[^)]+\))\s*,\s*\n\s*visibility`),
		repl: "${1},\n#    visibility",
	},
	// blank line between deps and visibility
	{
		re:   compile(`(\s*deps\s*=\s*\[[^\]]*\],?)\s*\n(\s*)visibility`),
		repl: "${1}\n${2}visibility",
	},
	// rule block that opens but never closes before a blank line
	{
		re:   compile(`(swift_[a-z_]+\(\s*\n(?:[^)]+\n)+)(\s*\n)`),
		repl: "${1})${2}",
	},
}

// StructureRule is the structural repair pass: comma and parenthesis
// placement, orphaned equals signs, duplicate visibility collapse,
// and a best-effort close of rule blocks that open but never close
// before a blank line. The fixer engine also runs this rule
// unconditionally after every per-finding pass, because structural
// corruption is a frequent side effect of the other rewrites.
type StructureRule struct {
	check.BaseRule
}

// NewStructureRule creates the structural repair rule.
func NewStructureRule() *StructureRule {
	return &StructureRule{
		BaseRule: check.NewBaseRule(
			check.KindIndentationIssue,
			"structure",
			"repairs comma, equals, and parenthesis placement irregularities in rule blocks",
			true,
		),
	}
}

// Detect flags files carrying known structural corruption markers.
func (r *StructureRule) Detect(f *check.File) []check.Finding {
	corrupted := strings.Contains(f.Text, "outdent") ||
		strings.Contains(f.Text, "indentation error") ||
		(strings.Contains(f.Text, "visibility") && strings.Contains(f.Text, "),"))
	if !corrupted {
		return nil
	}
	return []check.Finding{{
		Kind:    r.Kind(),
		Message: "indentation issue detected",
	}}
}

// Fix runs the structural step chain over the text.
func (r *StructureRule) Fix(_ *check.File, text string) (string, bool) {
	out := applySteps(structuralSteps, text)
	return out, out != text
}
