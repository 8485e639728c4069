package rules

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/bazelfix/pkg/check"
)

var (
	reLibraryName    = compile(`swift_library\s*\(\s*name\s*=\s*["']([^"']+)["']`)
	reSrcsGlob       = compile(`srcs\s*=\s*glob\s*\(\s*\[\s*["']([^"']+)["']`)
	reAllowEmptyAny  = compile(`allow_empty\s*=\s*(True|False)`)
	reAllowFalse     = compile(`allow_empty\s*=\s*False`)
	reGlobCall       = compile(`(?s)glob\s*\(\s*\[(.*?)\]\s*\)`)
	reEmptyGlob      = compile(`glob\(\s*\[\s*\]\s*`)
	reBareBracket    = compile(`glob\(\s*\]\s*`)
	reSrcsAttr       = compile(`\bsrcs\s*=`)
	reRootedStarGlob = compile(`(srcs\s*=\s*glob\s*\(\s*\[\s*)"\*\*/\*\.swift"`)
)

// missingSrcsAttr is the srcs attribute synthesized for library blocks
// that have none. The directory wildcard plus allow_empty keeps the
// block valid whether or not sources exist yet.
const missingSrcsAttr = `
    srcs = glob(
        ["*.swift"],
        allow_empty = True,
    ),`

// EmptySrcsRule enforces the glob emptiness policy: an empty match
// must never be a hard failure, because a target's source set may
// legitimately be empty (platform-conditional code, staged renames).
// Every glob gains allow_empty = True, allow_empty = False is flipped,
// empty glob lists are repaired, and a library block with no srcs at
// all gains a synthesized one.
type EmptySrcsRule struct {
	check.BaseRule
}

// NewEmptySrcsRule creates the srcs/allow_empty rule.
func NewEmptySrcsRule() *EmptySrcsRule {
	return &EmptySrcsRule{
		BaseRule: check.NewBaseRule(
			check.KindEmptySrcs,
			"srcs-allow-empty",
			"srcs globs must tolerate empty matches and every library block needs a srcs attribute",
			true,
		),
	}
}

// Detect combines the directory-aware check (does the glob actually
// select the Swift files present?) with the purely lexical flag
// checks. The directory census distinguishes "no source files exist"
// (benign) from "source files exist but the pattern misses them".
func (r *EmptySrcsRule) Detect(f *check.File) []check.Finding {
	var findings []check.Finding

	name := ""
	if reLibraryName != nil {
		if caps := reLibraryName.FindStringSubmatch(f.Text); caps != nil {
			name = caps[1]
		}
	}

	if name != "" && reSrcsGlob != nil {
		if caps := reSrcsGlob.FindStringSubmatch(f.Text); caps != nil {
			pattern := caps[1]
			if f.HasSwiftSources() {
				for _, src := range f.SwiftSources() {
					ok, err := doublestar.Match(pattern, src)
					if err == nil && !ok {
						findings = append(findings, check.Finding{
							Kind: r.Kind(),
							Message: fmt.Sprintf(
								"target %s has Swift files but glob pattern %q doesn't match them", name, pattern),
						})
						break
					}
				}
			} else if reAllowEmptyAny != nil {
				if flag := reAllowEmptyAny.FindStringSubmatch(f.Text); flag != nil && flag[1] == "False" {
					findings = append(findings, check.Finding{
						Kind:    r.Kind(),
						Message: fmt.Sprintf("target %s has no Swift files but allow_empty is False", name),
					})
				}
			}
		}
	}

	if matches(reAllowFalse, f.Text) {
		findings = append(findings, check.Finding{
			Kind:    r.Kind(),
			Message: "allow_empty is set to False",
		})
	}

	if r.globWithoutAllowEmpty(f.Text) {
		findings = append(findings, check.Finding{
			Kind:    r.Kind(),
			Message: "glob call without allow_empty flag",
		})
	}

	if matches(reEmptyGlob, f.Text) || matches(reBareBracket, f.Text) {
		findings = append(findings, check.Finding{
			Kind:    r.Kind(),
			Message: "empty glob pattern",
		})
	}

	if name != "" && !matches(reSrcsAttr, f.Text) {
		findings = append(findings, check.Finding{
			Kind:    r.Kind(),
			Message: fmt.Sprintf("target %s has no srcs attribute", name),
		})
	}

	return findings
}

// Fix applies the emptiness-policy rewrites. Order matters: glob
// lists are made well-formed before the allow_empty pass so the
// repaired call gains the flag in the same run.
func (r *EmptySrcsRule) Fix(f *check.File, text string) (string, bool) {
	out := text

	// glob([]) and the mangled glob(] both become a directory wildcard.
	out = replaceAll(reEmptyGlob, out, `glob(["*.swift"]`)
	out = replaceAll(reBareBracket, out, `glob(["*.swift"]`)

	// A recursive pattern over a flat directory selects nothing; when
	// the census shows every Swift file directly beside the BUILD
	// file, narrow the pattern to a single level.
	if f != nil && f.AllSwiftInRoot() {
		out = replaceAll(reRootedStarGlob, out, `${1}"*.swift"`)
	}

	out = replaceAll(reAllowFalse, out, "allow_empty = True")

	if reLibraryName != nil && reLibraryName.MatchString(out) && !matches(reSrcsAttr, out) {
		out = insertMissingSrcs(out)
	}

	if reGlobCall != nil {
		out = reGlobCall.ReplaceAllStringFunc(out, func(call string) string {
			if strings.Contains(call, "allow_empty") {
				return call
			}
			caps := reGlobCall.FindStringSubmatch(call)
			if caps == nil {
				return call
			}
			return fmt.Sprintf("glob(\n        [%s],\n        allow_empty = True,\n    )", strings.TrimSpace(caps[1]))
		})
	}

	return out, out != text
}

func (r *EmptySrcsRule) globWithoutAllowEmpty(text string) bool {
	if reGlobCall == nil {
		return false
	}
	for _, call := range reGlobCall.FindAllString(text, -1) {
		if !strings.Contains(call, "allow_empty") {
			return true
		}
	}
	return false
}

// insertMissingSrcs synthesizes a srcs attribute immediately after the
// name attribute's trailing comma.
func insertMissingSrcs(text string) string {
	loc := reLibraryName.FindStringIndex(text)
	if loc == nil {
		return text
	}
	comma := strings.Index(text[loc[1]:], ",")
	if comma < 0 {
		return text
	}
	at := loc[1] + comma + 1
	return text[:at] + missingSrcsAttr + text[at:]
}
