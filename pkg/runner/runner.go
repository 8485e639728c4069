package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/bazelfix/internal/logging"
	"github.com/yaklabco/bazelfix/pkg/check"
)

// Runner orchestrates multi-file repair using a check.Pipeline.
//
// Processing is deliberately sequential: build trees rarely hold more
// than a few hundred BUILD.bazel files, and a single-threaded pass
// keeps output ordering and on-disk effects trivially deterministic.
type Runner struct {
	// Pipeline handles per-file processing with safety guarantees.
	Pipeline *check.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *check.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers BUILD.bazel files under opts.Root and processes them
// one at a time, in sorted path order.
//
// The policy per file is fail-open: an error reading, backing up, or
// writing one file is recorded in its outcome and the run continues
// with the next file. Only discovery failure and context cancellation
// abort the run.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	pipelineOpts := check.PipelineOptionsFromConfig(opts.Config)

	for _, path := range files {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		logger.Debug("processing file", logging.FieldPath, path)

		outcome := FileOutcome{Path: path}
		// ProcessFile can return a partial result alongside an error
		// when the backup or the final write fails.
		outcome.Result, outcome.Error = r.Pipeline.ProcessFile(ctx, path, pipelineOpts)
		if outcome.Error != nil {
			logger.Debug("file failed", logging.FieldPath, path, logging.FieldError, outcome.Error)
		}

		result.accumulate(outcome)
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesFixed, result.Stats.FilesFixed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
	)

	return result, nil
}
