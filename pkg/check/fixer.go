package check

import "github.com/yaklabco/bazelfix/pkg/config"

// Fixer applies the rewrite rules matching a file's findings, in
// FixOrder, each rule seeing the accumulated output of the previous
// one. After the per-finding pass it always runs the structural
// repair rule once more: misplaced commas and orphaned equals signs
// are a frequent side effect of the other rewrites and must be swept
// up last.
type Fixer struct {
	Registry *Registry
	Config   *config.Config
}

// NewFixer creates a Fixer over the given registry.
func NewFixer(registry *Registry, cfg *config.Config) *Fixer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Fixer{Registry: registry, Config: cfg}
}

// Fix rewrites the file's text according to its findings and returns
// the new text plus whether anything changed. Every rule is
// idempotent, so running Fix on its own output changes nothing.
func (fx *Fixer) Fix(f *File, findings []Finding) (string, bool) {
	detected := make(map[IssueKind]bool, len(findings))
	for _, finding := range findings {
		detected[finding.Kind] = true
	}

	text := f.Text
	changed := false

	for _, kind := range FixOrder {
		if !detected[kind] {
			continue
		}
		rule, ok := fx.Registry.ByKind(kind)
		if !ok || !fx.Config.RuleEnabled(rule.Name()) {
			continue
		}
		next, ruleChanged := rule.Fix(f, text)
		if ruleChanged {
			text = next
			changed = true
		}
	}

	// Unconditional structural sweep, even when KindIndentationIssue
	// was not among the findings.
	if rule, ok := fx.Registry.ByKind(KindIndentationIssue); ok {
		if fx.Config.RuleEnabled(rule.Name()) {
			next, ruleChanged := rule.Fix(f, text)
			if ruleChanged {
				text = next
				changed = true
			}
		}
	}

	return text, changed
}
