package rules

import (
	"strings"

	"github.com/yaklabco/bazelfix/pkg/check"
)

// SwiftLibraryLoad is the canonical load declaration required whenever
// swift_library is invoked. The match is verbatim: any reformatting of
// the line counts as missing.
const SwiftLibraryLoad = `load("@build_bazel_rules_swift//swift:swift.bzl", "swift_library")`

var (
	reSwiftLibraryCall = compile(`\bswift_library\s*\(`)
	reCustomLoad       = compile(`load\(\s*"//:swift_rules\.bzl"\s*,\s*"umbra_swift_library"\s*\)`)
	reCustomCall       = compile(`umbra_swift_library\s*\(`)
	reExportsAttr      = compile(`(?s)[ \t]*exports\s*=\s*\[.*?\]\s*,\n?`)
)

// LoadRule normalizes load declarations: the project-specific
// umbra_swift_library macro and its load path are rewritten to the
// standard swift_library equivalents, the unsupported exports
// attribute is removed, and a file that invokes swift_library without
// loading it gains the canonical load line at the very top.
type LoadRule struct {
	check.BaseRule
}

// NewLoadRule creates the load-declaration rule.
func NewLoadRule() *LoadRule {
	return &LoadRule{
		BaseRule: check.NewBaseRule(
			check.KindLoadIssue,
			"load-declarations",
			"swift_library must be loaded from @build_bazel_rules_swift; custom macros and unsupported attributes are canonicalized",
			true,
		),
	}
}

// Detect flags missing load declarations, the custom macro, and the
// unsupported exports attribute.
func (r *LoadRule) Detect(f *check.File) []check.Finding {
	var findings []check.Finding

	if matches(reCustomLoad, f.Text) || matches(reCustomCall, f.Text) {
		findings = append(findings, check.Finding{
			Kind:    r.Kind(),
			Message: "umbra_swift_library macro in use, should be swift_library",
		})
	}

	if matches(reExportsAttr, f.Text) {
		findings = append(findings, check.Finding{
			Kind:    r.Kind(),
			Message: "unsupported exports attribute present",
		})
	}

	// The custom macro counts as a swift_library use: once it is
	// canonicalized the standard load declaration must be present.
	usesSwiftLibrary := matches(reSwiftLibraryCall, f.Text) || matches(reCustomCall, f.Text)
	if usesSwiftLibrary && !strings.Contains(f.Text, SwiftLibraryLoad) {
		findings = append(findings, check.Finding{
			Kind:    r.Kind(),
			Message: "swift_library is used but its load declaration is missing",
		})
	}

	return findings
}

// Fix canonicalizes the load surface of the file. Rewrites run in
// dependency order: macro renames first so the load-presence check
// sees the canonical name, injection last.
func (r *LoadRule) Fix(_ *check.File, text string) (string, bool) {
	out := text

	if reCustomLoad != nil {
		out = reCustomLoad.ReplaceAllString(out, SwiftLibraryLoad)
	}
	if reCustomCall != nil {
		out = reCustomCall.ReplaceAllString(out, "swift_library(")
	}
	out = replaceAll(reExportsAttr, out, "")

	if matches(reSwiftLibraryCall, out) && !strings.Contains(out, SwiftLibraryLoad) {
		out = SwiftLibraryLoad + "\n\n" + out
	}

	return out, out != text
}
