package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Verbose includes per-finding detail for every file, fixed or not.
	Verbose bool

	// ShowDiff renders a unified diff of the intended rewrite. Used in
	// dry-run mode, where the rewrite never reaches disk.
	ShowDiff bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Color:       "auto",
		ShowSummary: true,
	}
}
