package check

// Rule defines one entry in the pattern library: a lexical detector
// paired with a text rewrite, tagged with an issue kind.
type Rule interface {
	// Kind returns the issue kind this rule detects and repairs.
	Kind() IssueKind

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// CanFix returns whether this rule rewrites text. Placeholder
	// rules report false and their Fix is the identity.
	CanFix() bool

	// Detect inspects the file and returns findings. It must never
	// mutate the file or touch the filesystem beyond the file's own
	// directory census.
	Detect(f *File) []Finding

	// Fix rewrites text and reports whether it changed anything.
	//
	// Rules must be idempotent: applying a rule twice in succession
	// yields the same result as applying it once. The engine relies on
	// this to run repair passes unconditionally as a safety net.
	// Directory context comes from f, never from re-detection.
	Fix(f *File, text string) (string, bool)
}

// BaseRule provides the descriptive half of the Rule interface.
// Embed it in rule implementations and implement Detect and Fix.
type BaseRule struct {
	kind    IssueKind
	name    string
	desc    string
	fixable bool
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(kind IssueKind, name, desc string, fixable bool) BaseRule {
	return BaseRule{
		kind:    kind,
		name:    name,
		desc:    desc,
		fixable: fixable,
	}
}

// Kind returns the issue kind this rule is tagged with.
func (r *BaseRule) Kind() IssueKind {
	return r.kind
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// CanFix returns whether this rule rewrites text.
func (r *BaseRule) CanFix() bool {
	return r.fixable
}
