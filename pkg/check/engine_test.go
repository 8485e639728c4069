package check_test

import (
	"reflect"
	"testing"

	"github.com/yaklabco/bazelfix/pkg/check"
	"github.com/yaklabco/bazelfix/pkg/config"
)

// fakeRule is a test double whose detector returns canned findings and
// whose rewrite is an arbitrary function of the text.
type fakeRule struct {
	check.BaseRule
	findings []check.Finding
	rewrite  func(string) (string, bool)
}

func newFakeRule(kind check.IssueKind, name string, findings []check.Finding, rewrite func(string) (string, bool)) *fakeRule {
	return &fakeRule{
		BaseRule: check.NewBaseRule(kind, name, "test rule", rewrite != nil),
		findings: findings,
		rewrite:  rewrite,
	}
}

func (r *fakeRule) Detect(_ *check.File) []check.Finding {
	return r.findings
}

func (r *fakeRule) Fix(_ *check.File, text string) (string, bool) {
	if r.rewrite == nil {
		return text, false
	}
	return r.rewrite(text)
}

// appendMarker builds a rewrite that appends a marker once.
func appendMarker(marker string) func(string) (string, bool) {
	return func(text string) (string, bool) {
		return text + marker, true
	}
}

func finding(kind check.IssueKind, msg string) check.Finding {
	return check.Finding{Kind: kind, Message: msg}
}

func TestDetector_RegistrationOrder(t *testing.T) {
	t.Parallel()

	registry := check.NewRegistry()
	registry.Register(newFakeRule(check.KindFileGroupIssue, "fg",
		[]check.Finding{finding(check.KindFileGroupIssue, "fg issue")}, nil))
	registry.Register(newFakeRule(check.KindLoadIssue, "load",
		[]check.Finding{finding(check.KindLoadIssue, "load issue")}, nil))

	detector := check.NewDetector(registry, nil)
	findings := detector.Detect(check.NewFile("BUILD.bazel", ""))

	want := []check.Finding{
		finding(check.KindFileGroupIssue, "fg issue"),
		finding(check.KindLoadIssue, "load issue"),
	}
	if !reflect.DeepEqual(findings, want) {
		t.Errorf("Detect() = %v, want %v", findings, want)
	}
}

func TestDetector_SkipsDisabledRules(t *testing.T) {
	t.Parallel()

	registry := check.NewRegistry()
	registry.Register(newFakeRule(check.KindLoadIssue, "load",
		[]check.Finding{finding(check.KindLoadIssue, "load issue")}, nil))

	disabled := false
	cfg := config.NewConfig()
	cfg.Rules["load"] = config.RuleConfig{Enabled: &disabled}

	detector := check.NewDetector(registry, cfg)

	if findings := detector.Detect(check.NewFile("BUILD.bazel", "")); len(findings) != 0 {
		t.Errorf("disabled rule produced findings: %v", findings)
	}
}

func TestFixer_AppliesInFixOrder(t *testing.T) {
	t.Parallel()

	// Register in reverse of fix order to prove the engine reorders.
	registry := check.NewRegistry()
	registry.Register(newFakeRule(check.KindFileGroupIssue, "fg", nil, appendMarker("|fg")))
	registry.Register(newFakeRule(check.KindLoadIssue, "load", nil, appendMarker("|load")))

	fixer := check.NewFixer(registry, nil)
	f := check.NewFile("BUILD.bazel", "base")
	findings := []check.Finding{
		finding(check.KindFileGroupIssue, "fg issue"),
		finding(check.KindLoadIssue, "load issue"),
	}

	out, changed := fixer.Fix(f, findings)

	if !changed {
		t.Fatal("expected change")
	}
	if out != "base|load|fg" {
		t.Errorf("Fix() = %q, want %q", out, "base|load|fg")
	}
}

func TestFixer_SkipsUndetectedKinds(t *testing.T) {
	t.Parallel()

	registry := check.NewRegistry()
	registry.Register(newFakeRule(check.KindLoadIssue, "load", nil, appendMarker("|load")))
	registry.Register(newFakeRule(check.KindFileGroupIssue, "fg", nil, appendMarker("|fg")))

	fixer := check.NewFixer(registry, nil)
	f := check.NewFile("BUILD.bazel", "base")
	findings := []check.Finding{finding(check.KindLoadIssue, "load issue")}

	out, _ := fixer.Fix(f, findings)

	if out != "base|load" {
		t.Errorf("Fix() = %q, want %q", out, "base|load")
	}
}

func TestFixer_StructuralSweepAlwaysRuns(t *testing.T) {
	t.Parallel()

	registry := check.NewRegistry()
	registry.Register(newFakeRule(check.KindLoadIssue, "load", nil, appendMarker("|load")))
	registry.Register(newFakeRule(check.KindIndentationIssue, "structure", nil, appendMarker("|sweep")))

	fixer := check.NewFixer(registry, nil)
	f := check.NewFile("BUILD.bazel", "base")

	// No structural finding, yet the sweep still runs last.
	out, changed := fixer.Fix(f, []check.Finding{finding(check.KindLoadIssue, "load issue")})

	if !changed {
		t.Fatal("expected change")
	}
	if out != "base|load|sweep" {
		t.Errorf("Fix() = %q, want %q", out, "base|load|sweep")
	}
}

func TestFixer_SkipsDisabledRules(t *testing.T) {
	t.Parallel()

	registry := check.NewRegistry()
	registry.Register(newFakeRule(check.KindLoadIssue, "load", nil, appendMarker("|load")))
	registry.Register(newFakeRule(check.KindIndentationIssue, "structure", nil, appendMarker("|sweep")))

	disabled := false
	cfg := config.NewConfig()
	cfg.Rules["load"] = config.RuleConfig{Enabled: &disabled}
	cfg.Rules["structure"] = config.RuleConfig{Enabled: &disabled}

	fixer := check.NewFixer(registry, cfg)
	f := check.NewFile("BUILD.bazel", "base")

	out, changed := fixer.Fix(f, []check.Finding{finding(check.KindLoadIssue, "load issue")})

	if changed {
		t.Error("disabled rules reported a change")
	}
	if out != "base" {
		t.Errorf("Fix() = %q, want %q", out, "base")
	}
}

func TestFixer_NoFindingsNoSweepTargets(t *testing.T) {
	t.Parallel()

	registry := check.NewRegistry()
	registry.Register(newFakeRule(check.KindLoadIssue, "load", nil, appendMarker("|load")))

	fixer := check.NewFixer(registry, nil)
	f := check.NewFile("BUILD.bazel", "base")

	out, changed := fixer.Fix(f, nil)

	if changed {
		t.Error("no findings reported a change")
	}
	if out != "base" {
		t.Errorf("Fix() = %q, want %q", out, "base")
	}
}
