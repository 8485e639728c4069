package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/bazelfix/internal/configloader"
	"github.com/yaklabco/bazelfix/internal/logging"
	"github.com/yaklabco/bazelfix/pkg/check"
	"github.com/yaklabco/bazelfix/pkg/config"
	"github.com/yaklabco/bazelfix/pkg/reporter"
	"github.com/yaklabco/bazelfix/pkg/runner"
	_ "github.com/yaklabco/bazelfix/pkg/rules" // Register built-in rules
)

// ErrFindingsFound is returned when a dry run finds issues. It carries
// no message of its own; it only drives the exit code.
var ErrFindingsFound = errors.New("findings found")

// ErrFilesFailed is returned when one or more files could not be
// processed.
var ErrFilesFailed = errors.New("some files could not be processed")

func newFixCommand() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Scan for BUILD.bazel files and repair them",
		Long:  fixLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFix(cmd, &cfg)
		},
	}

	// The flag default stays empty so an unset --root does not shadow
	// a root from BAZELFIX_ROOT or a config file; the working directory
	// fallback is resolved after the merge.
	cmd.Flags().StringVar(&cfg.Root, "root", "", `directory to scan for BUILD.bazel files (default ".")`)
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "print per-file analysis detail")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().StringSliceVar(&cfg.Ignore, "ignore", nil, "glob patterns to skip during discovery")

	return cmd
}

const fixLongDescription = `Scan a directory tree for files named exactly BUILD.bazel and repair
detected defects in place.

Each file is read, analyzed, and rewritten only when a rule produces a
change. Before a live write the original is copied to a sidecar
BUILD.bazel.bak, unless --no-backups is given. Files that cannot be
processed are reported and the scan continues.

Examples:
  bazelfix fix                     # Fix under the current directory
  bazelfix fix --root ./modules    # Fix under a specific tree
  bazelfix fix --dry-run           # Preview rewrites without writing
  bazelfix fix --dry-run --verbose # Preview with per-file detail`

func runFix(cmd *cobra.Command, cliCfg *config.Config) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config
	if finalCfg.Root == "" {
		finalCfg.Root = "."
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldRoot, finalCfg.Root,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldBackups, finalCfg.BackupsEnabled(),
	)

	pipeline := check.NewPipeline(check.DefaultRegistry, finalCfg)
	fixRunner := runner.New(pipeline)

	runOpts := runner.Options{
		Root:        finalCfg.Root,
		IgnoreGlobs: finalCfg.Ignore,
		Config:      finalCfg,
	}

	logger.Debug("starting fix run", logging.FieldRoot, runOpts.Root)

	result, err := fixRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("fix run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Color:       colorMode,
		Verbose:     finalCfg.Verbose,
		ShowDiff:    finalCfg.DryRun,
		ShowSummary: true,
		WorkingDir:  workDir,
	})

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, finalCfg.DryRun) {
	case ExitIOError:
		return ErrFilesFailed
	case ExitFindingsFound:
		return ErrFindingsFound
	default:
		return nil
	}
}
