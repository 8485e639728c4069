package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/yaklabco/bazelfix/pkg/runner"
)

// writeTree lays out the given files (relative slash paths) under a
// temp root and returns the root.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, []byte("swift_library(\n)\n"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return root
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()

	rels := make([]string, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}

func TestDiscover_ExactNameOnly(t *testing.T) {
	t.Parallel()

	root := writeTree(t,
		"BUILD.bazel",
		"app/BUILD.bazel",
		"app/BUILD",
		"lib/build.bazel",
		"lib/BUILD.bazel.bak",
		"lib/BUILD.bazel",
	)

	files, err := runner.Discover(context.Background(), runner.Options{Root: root})
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	got := relPaths(t, root, files)
	want := []string{"BUILD.bazel", "app/BUILD.bazel", "lib/BUILD.bazel"}
	if len(got) != len(want) {
		t.Fatalf("Discover() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Discover()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDiscover_SkipsHiddenDirectories(t *testing.T) {
	t.Parallel()

	root := writeTree(t,
		"BUILD.bazel",
		".git/BUILD.bazel",
		".cache/deep/BUILD.bazel",
	)

	files, err := runner.Discover(context.Background(), runner.Options{Root: root})
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	if got := relPaths(t, root, files); len(got) != 1 || got[0] != "BUILD.bazel" {
		t.Errorf("Discover() = %v, want [BUILD.bazel]", got)
	}
}

func TestDiscover_IgnoreGlobs(t *testing.T) {
	t.Parallel()

	root := writeTree(t,
		"BUILD.bazel",
		"vendor/dep/BUILD.bazel",
		"third_party/BUILD.bazel",
		"app/BUILD.bazel",
	)

	files, err := runner.Discover(context.Background(), runner.Options{
		Root:        root,
		IgnoreGlobs: []string{"vendor", "third_party/**"},
	})
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	got := relPaths(t, root, files)
	want := []string{"BUILD.bazel", "app/BUILD.bazel"}
	if len(got) != len(want) {
		t.Fatalf("Discover() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Discover()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDiscover_NeverFollowsSymlinks(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	root := writeTree(t, "real/BUILD.bazel")

	outside := writeTree(t, "BUILD.bazel")
	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}
	if err := os.Symlink(
		filepath.Join(root, "real", "BUILD.bazel"),
		filepath.Join(root, "BUILD.bazel"),
	); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{Root: root})
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	// The symlinked directory is not traversed and the symlinked file
	// is not a candidate; only the real file remains.
	if got := relPaths(t, root, files); len(got) != 1 || got[0] != "real/BUILD.bazel" {
		t.Errorf("Discover() = %v, want [real/BUILD.bazel]", got)
	}
}

func TestDiscover_RootMustBeDirectory(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "BUILD.bazel")

	_, err := runner.Discover(context.Background(), runner.Options{
		Root: filepath.Join(root, "BUILD.bazel"),
	})
	if err == nil {
		t.Error("expected an error for a file root")
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Root: filepath.Join(t.TempDir(), "absent"),
	})
	if err == nil {
		t.Error("expected an error for a missing root")
	}
}

func TestDiscover_CancelledContext(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "BUILD.bazel")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Discover(ctx, runner.Options{Root: root}); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}
