package reporter

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/bazelfix/pkg/check"
	"github.com/yaklabco/bazelfix/pkg/runner"
)

const (
	defaultSeparatorWidth = 60
	maxSeparatorWidth     = 90
)

// separatorWidth sizes the summary rule to the terminal, capped so
// wide terminals do not get a screen-spanning line.
func (r *TextReporter) separatorWidth() int {
	f, ok := r.opts.Writer.(*os.File)
	if !ok {
		return defaultSeparatorWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultSeparatorWidth
	}
	return min(width, maxSeparatorWidth)
}

// renderSummary writes the aggregate statistics block.
func (r *TextReporter) renderSummary(stats runner.Stats) {
	fmt.Fprintln(r.bw, r.styles.Dim.Render(strings.Repeat("─", r.separatorWidth())))

	fmt.Fprintf(r.bw, "%s %d scanned, %d with findings, %d %s, %d skipped\n",
		r.styles.Bold.Render("Files:"),
		stats.FilesDiscovered,
		stats.FilesWithFindings,
		stats.FilesFixed,
		fixedWord(stats),
		stats.FilesSkipped,
	)

	if stats.FindingsTotal > 0 {
		parts := make([]string, 0, len(check.FixOrder))
		for _, kind := range check.FixOrder {
			if n := stats.FindingsByKind[kind]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s: %d", kind, n))
			}
		}
		fmt.Fprintf(r.bw, "%s %d (%s)\n",
			r.styles.Bold.Render("Findings:"),
			stats.FindingsTotal,
			strings.Join(parts, ", "),
		)
	}

	switch {
	case stats.FilesErrored > 0:
		fmt.Fprintln(r.bw, r.styles.Failure.Render(
			fmt.Sprintf("%d files could not be processed", stats.FilesErrored)))
	case stats.FindingsTotal == 0:
		fmt.Fprintln(r.bw, r.styles.Success.Render("No issues found"))
	}
}

// fixedWord distinguishes applied fixes from dry-run previews. When no
// file was written but fixes were computed, the count is prospective.
func fixedWord(stats runner.Stats) string {
	if stats.FilesFixed > 0 && stats.FilesWritten == 0 {
		return "would be fixed"
	}
	return "fixed"
}
