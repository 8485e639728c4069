package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/bazelfix/pkg/runner"
)

// TextReporter formats runner results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report writes the per-file findings followed by the run summary.
// It returns the total number of findings reported.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("report cancelled: %w", ctx.Err())
	default:
	}

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No BUILD.bazel files found."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		total += r.reportFile(file)
	}

	if r.opts.ShowSummary {
		r.renderSummary(result.Stats)
	}

	return total, nil
}

func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := r.displayPath(file.Path)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		// A partial result may still carry findings worth showing.
		if file.Result == nil {
			return 0
		}
	}

	res := file.Result
	if res == nil {
		return 0
	}

	if !res.HasFindings() && !res.Skipped {
		if r.opts.Verbose {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Dim.Render("ok"),
			)
		}
		return 0
	}

	fmt.Fprintf(r.bw, "%s: %s\n",
		r.styles.FilePath.Render(path),
		r.styles.Dim.Render(res.Summary()),
	)

	for _, finding := range res.Findings {
		fmt.Fprintf(r.bw, "  %s %s\n",
			r.styles.Kind.Render("["+string(finding.Kind)+"]"),
			r.styles.Message.Render(finding.Message),
		)
	}

	if r.opts.ShowDiff && res.Modified {
		r.renderDiff(path, res.OriginalContent, res.ModifiedContent)
	}

	return len(res.Findings)
}

func (r *TextReporter) renderDiff(path string, original, modified []byte) {
	diff := Unified(path, original, modified)
	if !diff.HasChanges() {
		return
	}

	for _, line := range strings.Split(strings.TrimSuffix(diff.String(), "\n"), "\n") {
		var styled string
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			styled = r.styles.DiffHeader.Render(line)
		case strings.HasPrefix(line, "@@"):
			styled = r.styles.DiffHunk.Render(line)
		case strings.HasPrefix(line, "+"):
			styled = r.styles.DiffAdd.Render(line)
		case strings.HasPrefix(line, "-"):
			styled = r.styles.DiffRemove.Render(line)
		default:
			styled = r.styles.Dim.Render(line)
		}
		fmt.Fprintf(r.bw, "  %s\n", styled)
	}
}

// displayPath makes the path relative to WorkingDir when that produces
// a shorter, dot-free path.
func (r *TextReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
