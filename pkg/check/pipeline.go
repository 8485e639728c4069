package check

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/yaklabco/bazelfix/pkg/config"
	"github.com/yaklabco/bazelfix/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrBackupFailure indicates the sidecar backup could not be
	// written; the fix for that file is aborted before any mutation.
	ErrBackupFailure = errors.New("backup failure")

	// ErrWriteFailure indicates the final write failed. The original
	// content is preserved in the backup, so nothing is lost.
	ErrWriteFailure = errors.New("write failure")
)

// Result is the outcome of processing a single file.
//
// The per-file state machine:
//
//	Read -> Detected -> [no findings: skipped from fix phase]
//	     -> Fixed    -> [unchanged: no-op]
//	     -> [dry-run: reported only]
//	     -> BackedUp -> Written
type Result struct {
	// Path is the file path that was processed.
	Path string

	// Findings are the detected issues, in detector registration order.
	Findings []Finding

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	// OriginalContent is the pre-fix content.
	OriginalContent []byte

	// ModifiedContent is the post-fix content (nil if not modified).
	ModifiedContent []byte

	// Modified is true if the fixer changed the text.
	Modified bool

	// Skipped is true if the file was skipped (unreadable encoding,
	// concurrent modification).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a sidecar backup was created.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool
}

// HasFindings reports whether detection produced any findings.
func (r *Result) HasFindings() bool {
	return len(r.Findings) > 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	switch {
	case r.Skipped:
		return "skipped: " + r.SkipReason
	case r.Written && r.BackupCreated:
		return "fixed (backup created)"
	case r.Written:
		return "fixed"
	case r.Modified:
		return "would fix"
	case r.HasFindings():
		return "findings without applicable rewrite"
	default:
		return "ok"
	}
}

// PipelineOptions controls per-file processing behavior.
type PipelineOptions struct {
	// DryRun reports findings and intended fixes without writing.
	DryRun bool

	// Backup configures sidecar backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification
	// detection before writing. When false, only mod time and size
	// are checked.
	StrictRaceDetection bool
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		DryRun:              false,
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
	}
}

// PipelineOptionsFromConfig derives per-file options from the
// resolved configuration.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	opts := DefaultPipelineOptions()
	if cfg == nil {
		return opts
	}
	opts.DryRun = cfg.DryRun
	opts.Backup.Enabled = cfg.BackupsEnabled()
	return opts
}

// Pipeline orchestrates the repair of a single file: read, detect,
// fix, then backup-and-write (or dry-run report).
type Pipeline struct {
	Detector *Detector
	Fixer    *Fixer
}

// NewPipeline creates a pipeline over the given registry and config.
func NewPipeline(registry *Registry, cfg *config.Config) *Pipeline {
	return &Pipeline{
		Detector: NewDetector(registry, cfg),
		Fixer:    NewFixer(registry, cfg),
	}
}

// ProcessFile runs the full pipeline for a single file.
//
// Steps:
//  1. Read and hash the original file.
//  2. Detect; zero findings ends the pass with the file untouched.
//  3. Fix on the in-memory text.
//  4. Dry-run: stop here, report only.
//  5. Check for concurrent modification.
//  6. Create the sidecar backup; failure aborts before any mutation.
//  7. Write the new content atomically.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*Result, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	result, err := p.ProcessContent(ctx, path, content, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !result.Modified || opts.DryRun || result.Skipped {
		return result, nil
	}

	// Refuse to write over a file someone else changed mid-pass.
	modified, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup.Enabled {
		created, backupErr := fsutil.CreateBackup(ctx, path, opts.Backup)
		if backupErr != nil {
			return result, fmt.Errorf("%w: %s: %w", ErrBackupFailure, path, backupErr)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, result.ModifiedContent, info.Mode); err != nil {
		return result, fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent runs detection and fixing on in-memory content
// without touching the filesystem beyond the directory census. Useful
// for tests and for dry-run previews.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte, _ PipelineOptions) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
	default:
	}

	result := &Result{
		Path:            path,
		OriginalContent: content,
	}

	if !utf8.Valid(content) {
		result.Skipped = true
		result.SkipReason = "not valid UTF-8 text"
		return result, nil
	}

	file := NewFile(path, string(content))

	result.Findings = p.Detector.Detect(file)
	if !result.HasFindings() {
		return result, nil
	}

	fixed, changed := p.Fixer.Fix(file, result.Findings)
	if !changed {
		return result, nil
	}

	result.Modified = true
	result.ModifiedContent = []byte(fixed)
	return result, nil
}

func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	if strict {
		return fsutil.CheckModified(ctx, info)
	}
	return fsutil.CheckModifiedQuick(ctx, info)
}
