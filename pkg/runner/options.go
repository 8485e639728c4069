// Package runner provides multi-file repair orchestration.
package runner

import "github.com/yaklabco/bazelfix/pkg/config"

// BuildFileName is the exact file name the scanner looks for. Files
// named BUILD, build.bazel, or BUILD.bazel.bak are not candidates.
const BuildFileName = "BUILD.bazel"

// Options controls multi-file repair behavior.
type Options struct {
	// Root is the directory to scan. If empty, the current process
	// working directory is used.
	Root string

	// IgnoreGlobs are glob patterns used to skip files or directories,
	// relative to Root. These merge ignore rules from config and CLI.
	IgnoreGlobs []string

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectiveRoot returns the root to scan, defaulting to "." if empty.
func (o Options) effectiveRoot() string {
	if o.Root == "" {
		return "."
	}
	return o.Root
}
