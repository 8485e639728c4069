package reporter

import (
	"fmt"
	"strings"
)

// diffContextLines is the number of context lines shown around changes.
const diffContextLines = 3

// LineKind indicates the type of diff line.
type LineKind int

const (
	// LineContext is an unchanged context line.
	LineContext LineKind = iota

	// LineAdd is a line present only in the modified version.
	LineAdd

	// LineRemove is a line present only in the original version.
	LineRemove
)

// Line is a single line in a diff hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is a single hunk in a unified diff.
type Hunk struct {
	// OriginalStart and ModifiedStart are 1-based line numbers.
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []Line
}

// Diff is a unified diff between original and modified content.
type Diff struct {
	Path  string
	Hunks []Hunk
}

// Unified computes a unified diff between original and modified
// content. Returns nil if the contents are line-identical.
func Unified(path string, original, modified []byte) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	ops := diffOps(origLines, modLines)

	changed := false
	for _, op := range ops {
		if op.Kind != LineContext {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	return &Diff{Path: path, Hunks: groupHunks(ops)}
}

// HasChanges reports whether the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		for _, line := range hunk.Lines {
			b.WriteString(linePrefix(line.Kind))
			b.WriteString(line.Content)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func linePrefix(kind LineKind) string {
	switch kind {
	case LineAdd:
		return "+"
	case LineRemove:
		return "-"
	default:
		return " "
	}
}

// splitLines splits content into lines, dropping the trailing empty
// element a final newline produces.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOps produces the flat line-by-line operation sequence via an
// LCS table over the two line slices.
func diffOps(orig, mod []string) []Line {
	// dp[i][j] is the LCS length of orig[i:] and mod[j:].
	dp := make([][]int, len(orig)+1)
	for i := range dp {
		dp[i] = make([]int, len(mod)+1)
	}
	for i := len(orig) - 1; i >= 0; i-- {
		for j := len(mod) - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else {
				dp[i][j] = max(dp[i+1][j], dp[i][j+1])
			}
		}
	}

	var ops []Line
	i, j := 0, 0
	for i < len(orig) && j < len(mod) {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, Line{Kind: LineContext, Content: orig[i]})
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			ops = append(ops, Line{Kind: LineRemove, Content: orig[i]})
			i++
		default:
			ops = append(ops, Line{Kind: LineAdd, Content: mod[j]})
			j++
		}
	}
	for ; i < len(orig); i++ {
		ops = append(ops, Line{Kind: LineRemove, Content: orig[i]})
	}
	for ; j < len(mod); j++ {
		ops = append(ops, Line{Kind: LineAdd, Content: mod[j]})
	}

	return ops
}

// groupHunks groups change runs into hunks with surrounding context,
// merging runs whose context windows touch.
func groupHunks(ops []Line) []Hunk {
	type span struct{ start, end int }

	var spans []span
	for i := 0; i < len(ops); {
		if ops[i].Kind == LineContext {
			i++
			continue
		}
		start := i
		for i < len(ops) && ops[i].Kind != LineContext {
			i++
		}
		spans = append(spans, span{start, i})
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []Hunk
	for idx := 0; idx < len(spans); {
		end := idx + 1
		for end < len(spans) && spans[end].start-spans[end-1].end <= diffContextLines*2 {
			end++
		}

		lo := max(spans[idx].start-diffContextLines, 0)
		hi := min(spans[end-1].end+diffContextLines, len(ops))

		hunk := Hunk{OriginalStart: 1, ModifiedStart: 1}
		for _, op := range ops[:lo] {
			if op.Kind != LineAdd {
				hunk.OriginalStart++
			}
			if op.Kind != LineRemove {
				hunk.ModifiedStart++
			}
		}
		for _, op := range ops[lo:hi] {
			hunk.Lines = append(hunk.Lines, op)
			if op.Kind != LineAdd {
				hunk.OriginalCount++
			}
			if op.Kind != LineRemove {
				hunk.ModifiedCount++
			}
		}
		hunks = append(hunks, hunk)

		idx = end
	}

	return hunks
}
