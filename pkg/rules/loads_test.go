package rules_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/bazelfix/pkg/check"
	"github.com/yaklabco/bazelfix/pkg/rules"
)

func TestLoadRule_Detect(t *testing.T) {
	t.Parallel()

	rule := rules.NewLoadRule()

	tests := []struct {
		name     string
		text     string
		findings int
	}{
		{
			name: "clean file",
			text: rules.SwiftLibraryLoad + "\n\n" +
				"swift_library(\n    name = \"Core\",\n)\n",
			findings: 0,
		},
		{
			name:     "missing load declaration",
			text:     "swift_library(\n    name = \"Core\",\n)\n",
			findings: 1,
		},
		{
			name: "custom macro without canonical load",
			text: "load(\"//:swift_rules.bzl\", \"umbra_swift_library\")\n\n" +
				"umbra_swift_library(\n    name = \"Core\",\n)\n",
			findings: 2,
		},
		{
			name: "exports attribute",
			text: rules.SwiftLibraryLoad + "\n\n" +
				"swift_library(\n    name = \"Core\",\n    exports = [\n        \"//foo:bar\",\n    ],\n)\n",
			findings: 1,
		},
		{
			name:     "no swift_library at all",
			text:     "filegroup(\n    name = \"srcs\",\n)\n",
			findings: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := check.NewFile("BUILD.bazel", testCase.text)
			findings := rule.Detect(f)

			if len(findings) != testCase.findings {
				t.Errorf("Detect() = %d findings, want %d: %v",
					len(findings), testCase.findings, findings)
			}
		})
	}
}

func TestLoadRule_Fix_InjectsLoad(t *testing.T) {
	t.Parallel()

	rule := rules.NewLoadRule()
	in := "swift_library(\n    name = \"Core\",\n)\n"

	out, changed := rule.Fix(nil, in)

	if !changed {
		t.Fatal("expected change")
	}
	want := rules.SwiftLibraryLoad + "\n\n" + in
	if out != want {
		t.Errorf("Fix() = %q, want %q", out, want)
	}
}

func TestLoadRule_Fix_CanonicalizesCustomMacro(t *testing.T) {
	t.Parallel()

	rule := rules.NewLoadRule()
	in := "load(\"//:swift_rules.bzl\", \"umbra_swift_library\")\n\n" +
		"umbra_swift_library(\n    name = \"Core\",\n)\n"

	out, changed := rule.Fix(nil, in)

	if !changed {
		t.Fatal("expected change")
	}
	want := rules.SwiftLibraryLoad + "\n\n" +
		"swift_library(\n    name = \"Core\",\n)\n"
	if out != want {
		t.Errorf("Fix() = %q, want %q", out, want)
	}
}

func TestLoadRule_Fix_RemovesExports(t *testing.T) {
	t.Parallel()

	rule := rules.NewLoadRule()
	in := rules.SwiftLibraryLoad + "\n\n" +
		"swift_library(\n    name = \"Core\",\n    exports = [\n        \"//foo:bar\",\n    ],\n    visibility = [\"//visibility:public\"],\n)\n"

	out, changed := rule.Fix(nil, in)

	if !changed {
		t.Fatal("expected change")
	}
	if strings.Contains(out, "exports") {
		t.Errorf("exports attribute survived: %q", out)
	}
	if !strings.Contains(out, "visibility = [\"//visibility:public\"]") {
		t.Errorf("visibility attribute lost: %q", out)
	}
}

func TestLoadRule_Fix_Idempotent(t *testing.T) {
	t.Parallel()

	rule := rules.NewLoadRule()
	in := "load(\"//:swift_rules.bzl\", \"umbra_swift_library\")\n\n" +
		"umbra_swift_library(\n    name = \"Core\",\n    exports = [\"//foo\"],\n)\n"

	once, _ := rule.Fix(nil, in)
	twice, changed := rule.Fix(nil, once)

	if changed {
		t.Error("second Fix() reported a change")
	}
	if twice != once {
		t.Errorf("Fix() not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestLoadRule_Fix_NoChangeOnCleanFile(t *testing.T) {
	t.Parallel()

	rule := rules.NewLoadRule()
	in := rules.SwiftLibraryLoad + "\n\n" +
		"swift_library(\n    name = \"Core\",\n)\n"

	out, changed := rule.Fix(nil, in)

	if changed {
		t.Error("clean file reported as changed")
	}
	if out != in {
		t.Errorf("clean file rewritten: %q", out)
	}
}
