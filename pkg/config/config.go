// Package config defines core configuration types for bazelfix.
// These types are pure data structures with no dependency on the loader.
package config

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration structure for bazelfix.
// It is populated once at startup and read-only thereafter; the
// runner receives it explicitly rather than through package state.
type Config struct {
	// Root is the directory scanned for BUILD.bazel files.
	// Empty means the current working directory.
	Root string `yaml:"root"`

	// Rules contains per-rule configuration keyed by rule name.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for paths to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// Backups configures sidecar backup behavior.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// DryRun reports findings and intended fixes without writing.
	DryRun bool `yaml:"-"`

	// Verbose prints per-file analysis detail.
	Verbose bool `yaml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
// Backups are enabled by default: a live fix must never be the only
// copy of the pre-fix content.
func NewConfig() *Config {
	return &Config{
		Rules: make(map[string]RuleConfig),
		Backups: BackupsConfig{
			Enabled: true,
		},
	}
}

// RuleEnabled reports whether the named rule is enabled.
// Rules are enabled unless explicitly disabled.
func (c *Config) RuleEnabled(name string) bool {
	rc, ok := c.Rules[name]
	if !ok || rc.Enabled == nil {
		return true
	}
	return *rc.Enabled
}

// BackupsEnabled resolves the backup setting, honoring the
// CLI-level NoBackups override.
func (c *Config) BackupsEnabled() bool {
	if c.NoBackups {
		return false
	}
	return c.Backups.Enabled
}
