// Package check provides the issue taxonomy, rule engine, and per-file
// repair pipeline for bazelfix.
package check

// IssueKind identifies a class of malformed construct recognized in a
// BUILD.bazel file. The enumeration is closed: detectors and fixers
// are matched by kind, and the fixer applies kinds in a fixed order.
type IssueKind string

const (
	// KindLoadIssue covers missing or non-canonical load declarations
	// and unsupported attributes carried over from custom macros.
	KindLoadIssue IssueKind = "LoadIssue"

	// KindEmptySrcs covers srcs globs that would fail on an empty
	// match: allow_empty = False, a missing allow_empty flag, an empty
	// glob list, or a rule block with no srcs attribute at all.
	KindEmptySrcs IssueKind = "EmptySrcs"

	// KindIncorrectGlobPattern covers glob patterns that fail to select
	// the source files actually present under the rule's directory.
	KindIncorrectGlobPattern IssueKind = "IncorrectGlobPattern"

	// KindVisibilityIssue covers missing, overly restrictive, or
	// malformed visibility attributes.
	KindVisibilityIssue IssueKind = "VisibilityIssue"

	// KindMissingDependency is a documented placeholder: its detector
	// never produces findings and its fixer is the identity.
	KindMissingDependency IssueKind = "MissingDependency"

	// KindIndentationIssue covers structural corruption: misplaced
	// commas, orphaned equals signs, and unclosed rule blocks.
	KindIndentationIssue IssueKind = "IndentationIssue"

	// KindCommentBlockIssue covers visibility text leaking from or
	// malformed inside comment blocks.
	KindCommentBlockIssue IssueKind = "CommentBlockIssue"

	// KindFileGroupIssue covers orphaned list values left behind a
	// closing parenthesis, typically from a mangled filegroup.
	KindFileGroupIssue IssueKind = "FileGroupIssue"
)

// Finding is a single detected issue: a kind plus a human-readable
// description. Multiple findings may apply to the same file; their
// order follows detector registration order, not position in the file.
type Finding struct {
	Kind    IssueKind
	Message string
}

// FixOrder is the fixed order in which the fixer engine applies
// rewrites for detected kinds. Later rules operate on earlier rules'
// output, so the sequence is an explicit ordered list rather than
// implicit call order.
//
//nolint:gochecknoglobals // The application order is a fixed property of the engine
var FixOrder = []IssueKind{
	KindLoadIssue,
	KindEmptySrcs,
	KindIncorrectGlobPattern,
	KindVisibilityIssue,
	KindMissingDependency,
	KindIndentationIssue,
	KindCommentBlockIssue,
	KindFileGroupIssue,
}
