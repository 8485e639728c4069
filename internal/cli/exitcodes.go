package cli

import "github.com/yaklabco/bazelfix/pkg/runner"

// Exit codes for bazelfix.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFindingsFound indicates a dry run found issues that would be
	// rewritten.
	ExitFindingsFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code for a completed run.
// A live run that fixed files exits successfully; only a dry run turns
// pending rewrites into a non-zero code, so CI can gate on it. The gate
// is the would-fix count, not the finding count: detectors may flag a
// file whose rewrites are already applied, and an already-repaired tree
// must exit clean.
func ExitCodeFromResult(result *runner.Result, dryRun bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasErrors() {
		return ExitIOError
	}

	if dryRun && result.Stats.FilesFixed > 0 {
		return ExitFindingsFound
	}

	return ExitSuccess
}
