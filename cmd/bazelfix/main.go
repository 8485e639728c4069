// Package main is the entry point for the bazelfix CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/bazelfix/internal/cli"
	"github.com/yaklabco/bazelfix/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/bazelfix/pkg/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Exit-code signals carry no message worth logging.
		if errors.Is(err, cli.ErrFindingsFound) {
			return cli.ExitFindingsFound
		}
		if errors.Is(err, cli.ErrFilesFailed) {
			return cli.ExitIOError
		}
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return 1
	}

	return cli.ExitSuccess
}
