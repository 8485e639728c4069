package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/bazelfix/pkg/config"
)

// envVarPrefix is the prefix for all bazelfix environment variables.
const envVarPrefix = "BAZELFIX_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with BAZELFIX_ (e.g., BAZELFIX_ROOT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envVarPrefix + "ROOT"); value != "" {
		cfg.Root = value
	}
	if value := os.Getenv(envVarPrefix + "IGNORE"); value != "" {
		cfg.Ignore = parseSliceValue(value)
	}

	for suffix, target := range map[string]*bool{
		"DRY_RUN":         &cfg.DryRun,
		"VERBOSE":         &cfg.Verbose,
		"NO_BACKUPS":      &cfg.NoBackups,
		"BACKUPS_ENABLED": &cfg.Backups.Enabled,
	} {
		envVar := envVarPrefix + suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		*target = parsed
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns the supported environment variables with their
// descriptions, for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		"BAZELFIX_ROOT":            "Directory to scan for BUILD.bazel files",
		"BAZELFIX_DRY_RUN":         "Dry-run mode: true or false",
		"BAZELFIX_VERBOSE":         "Verbose per-file output: true or false",
		"BAZELFIX_IGNORE":          "Comma-separated list of ignore patterns",
		"BAZELFIX_BACKUPS_ENABLED": "Enable backups when fixing: true or false",
		"BAZELFIX_NO_BACKUPS":      "Disable backups: true or false",
	}
}
