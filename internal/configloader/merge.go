package configloader

import "github.com/yaklabco/bazelfix/pkg/config"

// merge combines two configurations, with override taking precedence
// over base. Scalars overwrite when non-zero, the rules map deep-merges,
// and slices replace entirely when non-nil. Boolean flags can only be
// set, not unset, by an override: false is their zero value.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Root != "" {
		result.Root = override.Root
	}
	if override.DryRun {
		result.DryRun = true
	}
	if override.Verbose {
		result.Verbose = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	result.Rules = mergeRules(base.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// mergeRules performs a deep merge of rule configurations, with
// override's values taking precedence.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.RuleConfig, len(base)+len(override))
	for key, val := range base {
		result[key] = val
	}
	for key, val := range override {
		if existing, ok := result[key]; ok && val.Enabled == nil {
			result[key] = existing
			continue
		}
		result[key] = val
	}

	return result
}
