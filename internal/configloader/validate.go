package configloader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/bazelfix/pkg/check"
	"github.com/yaklabco/bazelfix/pkg/config"
)

// validateRuleNames checks the rules map against the registry and
// returns a warning per unknown name.
func validateRuleNames(cfg *config.Config, registry *check.Registry) []string {
	if cfg == nil || len(cfg.Rules) == 0 {
		return nil
	}

	var unknown []string
	for name := range cfg.Rules {
		if _, ok := registry.ByName(name); !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)

	warnings := make([]string, 0, len(unknown))
	for _, name := range unknown {
		warnings = append(warnings,
			fmt.Sprintf("unknown rule %q in configuration; known rules: %s",
				name, strings.Join(registry.Names(), ", ")))
	}
	return warnings
}
