package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/bazelfix/pkg/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Empty(t, cfg.Root)
	assert.NotNil(t, cfg.Rules)
	assert.True(t, cfg.Backups.Enabled)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.Verbose)
}

func TestConfig_RuleEnabled(t *testing.T) {
	t.Parallel()

	enabled := true
	disabled := false

	cfg := config.NewConfig()
	cfg.Rules["on"] = config.RuleConfig{Enabled: &enabled}
	cfg.Rules["off"] = config.RuleConfig{Enabled: &disabled}
	cfg.Rules["unset"] = config.RuleConfig{}

	assert.True(t, cfg.RuleEnabled("on"))
	assert.False(t, cfg.RuleEnabled("off"))
	assert.True(t, cfg.RuleEnabled("unset"), "nil Enabled means enabled")
	assert.True(t, cfg.RuleEnabled("unknown"), "unconfigured rules are enabled")
}

func TestConfig_BackupsEnabled(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.True(t, cfg.BackupsEnabled())

	cfg.NoBackups = true
	assert.False(t, cfg.BackupsEnabled(), "NoBackups overrides the config setting")

	cfg.NoBackups = false
	cfg.Backups.Enabled = false
	assert.False(t, cfg.BackupsEnabled())
}
