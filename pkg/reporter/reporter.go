package reporter

import (
	"context"

	"github.com/yaklabco/bazelfix/pkg/runner"
)

// Compile-time interface check.
var _ Reporter = (*TextReporter)(nil)

// Reporter formats and writes repair results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of findings reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the given options.
func New(opts Options) Reporter {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	return NewTextReporter(opts)
}
