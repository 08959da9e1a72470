package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/charlint/internal/annotate"
	"github.com/vvka-141/charlint/internal/files/filesystem"
	"github.com/vvka-141/charlint/internal/files/scanner"
	"github.com/vvka-141/charlint/internal/logging"
	"github.com/vvka-141/charlint/pkg/charlint"
)

func runLint(cmd *cobra.Command, args []string, opts *lintOptions) error {
	cfg := charlint.LintConfig{
		TargetPath: args[0],
		Verbose:    opts.verbose,
	}

	out := cmd.OutOrStdout()
	logger := logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), cfg.Verbose)

	if err := cfg.Validate(); err != nil {
		printInvalidTarget(out, cfg.TargetPath)
		return fmt.Errorf("'%s': %w: %w", cfg.TargetPath, charlint.ErrInvalidTarget, err)
	}

	fsProvider := filesystem.NewOSFileSystem()
	if info, err := fsProvider.Stat(cfg.TargetPath); err != nil || !info.IsDir() {
		printInvalidTarget(out, cfg.TargetPath)
		return fmt.Errorf("'%s': %w", cfg.TargetPath, charlint.ErrInvalidTarget)
	}

	logger.Verbose("scanning %s", cfg.TargetPath)

	reporter := annotate.NewWriter(out)
	result, err := scanner.NewScannerWithFS(reporter, logger, fsProvider).ScanDirectory(cfg.TargetPath)
	if err != nil {
		logger.Error("scan of %s failed: %v", cfg.TargetPath, err)
		return err
	}

	if result.Found {
		return fmt.Errorf("%d violations in %s: %w", result.Violations, cfg.TargetPath, charlint.ErrViolationsFound)
	}

	return reporter.Clean()
}
