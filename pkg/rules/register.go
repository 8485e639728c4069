package rules

import "github.com/yaklabco/bazelfix/pkg/check"

// RegisterAll registers every built-in rule in fix order.
func RegisterAll(registry *check.Registry) {
	registry.Register(NewLoadRule())
	registry.Register(NewEmptySrcsRule())
	registry.Register(NewGlobPatternRule())
	registry.Register(NewVisibilityRule())
	registry.Register(NewDependencyRule())
	registry.Register(NewStructureRule())
	registry.Register(NewCommentBlockRule())
	registry.Register(NewFileGroupRule())
}

func init() {
	RegisterAll(check.DefaultRegistry)
}
