// Package cli provides the Cobra command structure for bazelfix.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/bazelfix/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root bazelfix command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "bazelfix",
		Short: "A rule-based repair tool for Bazel BUILD files",
		Long: `bazelfix scans a directory tree for BUILD.bazel files and repairs
common defects: empty or mismatched srcs globs, missing or restrictive
visibility attributes, stale load statements, and structural damage
around commas, brackets, and parentheses.

Repairs are ordered text rewrites, applied idempotently. Originals are
preserved in sidecar .bak files, and --dry-run previews every change
without touching disk.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
