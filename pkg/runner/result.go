package runner

import "github.com/yaklabco/bazelfix/pkg/check"

// FileOutcome wraps a per-file pipeline result with its path.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// May be nil if the file encountered an error during processing.
	Result *check.Result

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesWithFindings is the number of files with at least one finding.
	FilesWithFindings int

	// FilesFixed is the number of files whose text the fixer changed.
	// In dry-run mode this counts would-be fixes.
	FilesFixed int

	// FilesWritten is the number of files actually written to disk.
	FilesWritten int

	// FilesSkipped is the number of files skipped (e.g. invalid
	// encoding or concurrent modification).
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FindingsTotal is the total number of findings across all files.
	FindingsTotal int

	// FindingsByKind maps issue kinds to counts.
	FindingsByKind map[check.IssueKind]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFindings reports whether any findings were detected.
func (r *Result) HasFindings() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		FindingsByKind: make(map[check.IssueKind]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Result.Modified {
		r.Stats.FilesFixed++
	}
	if outcome.Result.Written {
		r.Stats.FilesWritten++
	}

	if outcome.Result.HasFindings() {
		r.Stats.FilesWithFindings++
	}
	r.Stats.FindingsTotal += len(outcome.Result.Findings)
	for _, finding := range outcome.Result.Findings {
		r.Stats.FindingsByKind[finding.Kind]++
	}
}
