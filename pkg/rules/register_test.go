package rules_test

import (
	"path/filepath"
	"testing"

	"github.com/yaklabco/bazelfix/pkg/check"
	"github.com/yaklabco/bazelfix/pkg/rules"
)

func TestRegisterAll_CoversFixOrder(t *testing.T) {
	t.Parallel()

	registry := check.NewRegistry()
	rules.RegisterAll(registry)

	registered := registry.Rules()
	if len(registered) != len(check.FixOrder) {
		t.Fatalf("registered %d rules, want %d", len(registered), len(check.FixOrder))
	}

	for i, rule := range registered {
		if rule.Kind() != check.FixOrder[i] {
			t.Errorf("rule %d: kind %q, want %q", i, rule.Kind(), check.FixOrder[i])
		}
	}
}

func TestDefaultRegistry_HasBuiltins(t *testing.T) {
	t.Parallel()

	names := []string{
		"load-declarations",
		"srcs-allow-empty",
		"glob-pattern",
		"visibility",
		"deps",
		"structure",
		"comment-blocks",
		"filegroup",
	}

	for _, name := range names {
		if _, ok := check.DefaultRegistry.ByName(name); !ok {
			t.Errorf("rule %q not registered in the default registry", name)
		}
	}
}

func TestDetect_LeavesFileTextUnchanged(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"filegroup(\n    name = \"assets\",\n)\n",
		"swift_library(\n    name = \"Core\",\n    srcs = glob([\"**/*.swift\"]),\n)\n",
		"load(\"//:swift_rules.bzl\", \"umbra_swift_library\")\n\n" +
			"umbra_swift_library(\n    name = \"Core\",\n" +
			"    exports = [\"//foo:bar\"],\n    allow_empty = False,\n    outdent\n",
	}

	dir := t.TempDir()
	for i, text := range texts {
		f := check.NewFile(filepath.Join(dir, "BUILD.bazel"), text)
		for _, rule := range check.DefaultRegistry.Rules() {
			rule.Detect(f)
			if f.Text != text {
				t.Fatalf("text %d: rule %q mutated the file text during detection", i, rule.Name())
			}
		}
	}
}

func TestBuiltinFixability(t *testing.T) {
	t.Parallel()

	for _, rule := range check.DefaultRegistry.Rules() {
		fixable := rule.Name() != "deps"
		if rule.CanFix() != fixable {
			t.Errorf("rule %q: CanFix() = %v, want %v", rule.Name(), rule.CanFix(), fixable)
		}
	}
}
