package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/bazelfix/internal/cli"
)

const brokenBuildFile = "swift_library(\n" +
	"    name = \"Core\",\n" +
	"    srcs = [\"A.swift\"],\n" +
	")\n"

// repairedBuildFile is a fixed point of the rewrite chain: the
// structural detector still flags it, but no rule changes it.
const repairedBuildFile = `load("@build_bazel_rules_swift//swift:swift.bzl", "swift_library")

swift_library(
    name = "Core",
    srcs = glob(
        ["*.swift"],
        allow_empty = True,
    ),
    visibility = ["//visibility:public"],
)
`

func writeBuildFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "BUILD.bazel")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runFixCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := cli.NewRootCommand(cli.BuildInfo{})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"fix"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestFixCommand_EnvRootHonored(t *testing.T) {
	// Not parallel: mutates the environment and the working directory.

	tree := t.TempDir()
	writeBuildFile(t, tree, brokenBuildFile)

	t.Chdir(t.TempDir())
	t.Setenv("BAZELFIX_ROOT", tree)

	out, err := runFixCommand(t, "--dry-run")
	require.ErrorIs(t, err, cli.ErrFindingsFound)
	assert.Contains(t, out, "would fix")
	assert.NotContains(t, out, "No BUILD.bazel files found")
}

func TestFixCommand_RootFlagBeatsEnv(t *testing.T) {
	tree := t.TempDir()
	writeBuildFile(t, tree, brokenBuildFile)

	t.Chdir(t.TempDir())
	t.Setenv("BAZELFIX_ROOT", t.TempDir())

	out, err := runFixCommand(t, "--dry-run", "--root", tree)
	require.ErrorIs(t, err, cli.ErrFindingsFound)
	assert.Contains(t, out, "would fix")
}

func TestFixCommand_DefaultRootIsWorkingDirectory(t *testing.T) {
	tree := t.TempDir()
	writeBuildFile(t, tree, brokenBuildFile)

	t.Chdir(tree)
	t.Setenv("BAZELFIX_ROOT", "")

	out, err := runFixCommand(t, "--dry-run")
	require.ErrorIs(t, err, cli.ErrFindingsFound)
	assert.Contains(t, out, "would fix")
}

func TestFixCommand_DryRunOnRepairedTreeExitsClean(t *testing.T) {
	tree := t.TempDir()
	path := writeBuildFile(t, tree, repairedBuildFile)
	require.NoError(t, os.WriteFile(filepath.Join(tree, "A.swift"), []byte("// swift\n"), 0o644))

	t.Chdir(t.TempDir())
	t.Setenv("BAZELFIX_ROOT", "")

	out, err := runFixCommand(t, "--dry-run", "--root", tree)
	require.NoError(t, err)
	assert.NotContains(t, out, "would fix")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, repairedBuildFile, string(content))
}
