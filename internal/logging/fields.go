// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldRoot  = "root"

	// Configuration fields.
	FieldDryRun  = "dry_run"
	FieldBackups = "backups"
	FieldConfig  = "config"

	// Statistics fields.
	FieldFilesDiscovered   = "files_discovered"
	FieldFilesProcessed    = "files_processed"
	FieldFilesWithFindings = "files_with_findings"
	FieldFilesFixed        = "files_fixed"
	FieldFilesSkipped      = "files_skipped"
	FieldFilesErrored      = "files_errored"
	FieldFindingsTotal     = "findings_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldRule        = "rule"
	FieldKind        = "kind"
	FieldFixable     = "fixable"
	FieldDescription = "description"
)
