package reporter_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/bazelfix/pkg/check"
	"github.com/yaklabco/bazelfix/pkg/reporter"
	"github.com/yaklabco/bazelfix/pkg/runner"
)

func newResult(outcomes ...runner.FileOutcome) *runner.Result {
	result := &runner.Result{
		Stats: runner.Stats{FindingsByKind: make(map[check.IssueKind]int)},
	}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.Files = append(result.Files, outcome)
		if outcome.Error != nil {
			result.Stats.FilesErrored++
			continue
		}
		result.Stats.FilesProcessed++
		if outcome.Result == nil {
			continue
		}
		if outcome.Result.HasFindings() {
			result.Stats.FilesWithFindings++
		}
		if outcome.Result.Modified {
			result.Stats.FilesFixed++
		}
		if outcome.Result.Written {
			result.Stats.FilesWritten++
		}
		if outcome.Result.Skipped {
			result.Stats.FilesSkipped++
		}
		result.Stats.FindingsTotal += len(outcome.Result.Findings)
		for _, finding := range outcome.Result.Findings {
			result.Stats.FindingsByKind[finding.Kind]++
		}
	}
	return result
}

func TestTextReporter_DryRunWithDiff(t *testing.T) {
	t.Parallel()

	result := newResult(runner.FileOutcome{
		Path: "/proj/app/BUILD.bazel",
		Result: &check.Result{
			Path: "/proj/app/BUILD.bazel",
			Findings: []check.Finding{
				{Kind: check.KindVisibilityIssue, Message: "rule block has no visibility specified"},
			},
			OriginalContent: []byte("swift_library(\n)\n"),
			ModifiedContent: []byte("swift_library(\n    visibility = [\"//visibility:public\"],\n)\n"),
			Modified:        true,
		},
	})

	var buf bytes.Buffer
	r := reporter.New(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowDiff:    true,
		ShowSummary: true,
		WorkingDir:  "/proj",
	})

	total, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	out := buf.String()
	assert.Contains(t, out, "app/BUILD.bazel: would fix")
	assert.Contains(t, out, "[VisibilityIssue] rule block has no visibility specified")
	assert.Contains(t, out, "--- a/app/BUILD.bazel")
	assert.Contains(t, out, "+    visibility = [\"//visibility:public\"],")
	assert.Contains(t, out, "Files: 1 scanned, 1 with findings, 1 would be fixed, 0 skipped")
	assert.Contains(t, out, "Findings: 1 (VisibilityIssue: 1)")
}

func TestTextReporter_LiveRunSummary(t *testing.T) {
	t.Parallel()

	result := newResult(runner.FileOutcome{
		Path: "/proj/BUILD.bazel",
		Result: &check.Result{
			Path: "/proj/BUILD.bazel",
			Findings: []check.Finding{
				{Kind: check.KindLoadIssue, Message: "missing load declaration"},
			},
			Modified:      true,
			Written:       true,
			BackupCreated: true,
		},
	})

	var buf bytes.Buffer
	r := reporter.New(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	total, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	out := buf.String()
	assert.Contains(t, out, "fixed (backup created)")
	assert.Contains(t, out, "Files: 1 scanned, 1 with findings, 1 fixed, 0 skipped")
}

func TestTextReporter_CleanRun(t *testing.T) {
	t.Parallel()

	result := newResult(runner.FileOutcome{
		Path:   "/proj/BUILD.bazel",
		Result: &check.Result{Path: "/proj/BUILD.bazel"},
	})

	var buf bytes.Buffer
	r := reporter.New(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	total, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Zero(t, total)

	out := buf.String()
	assert.NotContains(t, out, "/proj/BUILD.bazel:")
	assert.Contains(t, out, "No issues found")
}

func TestTextReporter_VerboseShowsCleanFiles(t *testing.T) {
	t.Parallel()

	result := newResult(runner.FileOutcome{
		Path:   "/proj/BUILD.bazel",
		Result: &check.Result{Path: "/proj/BUILD.bazel"},
	})

	var buf bytes.Buffer
	r := reporter.New(reporter.Options{Writer: &buf, Color: "never", Verbose: true})

	_, err := r.Report(context.Background(), result)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "/proj/BUILD.bazel: ok")
}

func TestTextReporter_FileError(t *testing.T) {
	t.Parallel()

	result := newResult(runner.FileOutcome{
		Path:  "/proj/BUILD.bazel",
		Error: errors.New("permission denied"),
	})

	var buf bytes.Buffer
	r := reporter.New(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	total, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Zero(t, total)

	out := buf.String()
	assert.Contains(t, out, "error: permission denied")
	assert.Contains(t, out, "1 files could not be processed")
}

func TestTextReporter_EmptyRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := reporter.New(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	total, err := r.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, total)

	assert.Contains(t, buf.String(), "No BUILD.bazel files found.")
}
