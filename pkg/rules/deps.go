package rules

import "github.com/yaklabco/bazelfix/pkg/check"

// DependencyRule is a documented placeholder. Deciding whether a
// target's deps list is complete means scanning the imports of its
// Swift sources, which is a semantic analysis the lexical engine does
// not perform. The rule stays registered so the fix order and the
// rules listing record the slot; its detector produces nothing and
// its rewrite is the identity.
type DependencyRule struct {
	check.BaseRule
}

// NewDependencyRule creates the dependency placeholder rule.
func NewDependencyRule() *DependencyRule {
	return &DependencyRule{
		BaseRule: check.NewBaseRule(
			check.KindMissingDependency,
			"deps",
			"placeholder for dependency completeness checking; currently never reports",
			false,
		),
	}
}

// Detect never produces findings.
func (r *DependencyRule) Detect(_ *check.File) []check.Finding {
	return nil
}

// Fix is the identity.
func (r *DependencyRule) Fix(_ *check.File, text string) (string, bool) {
	return text, false
}
