package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/charlint/pkg/charlint"
)

// lintOptions holds the flag values of one root command instance.
type lintOptions struct {
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint " + charlint.TargetPlaceholder,
		Short: "Report Cyrillic text, emoji and emoticons in a source tree",
		Long: `lint walks a directory tree and reports encoding hygiene violations as CI
annotations on stdout:

  - filenames containing Cyrillic characters
  - lines containing Cyrillic characters
  - lines containing emoji (Unicode Extended_Pictographic)
  - lines containing ASCII emoticons such as :) or ;-P surrounded by whitespace

Binary files are skipped: known binary extensions (.png, .jar, .zip, ...) and
files whose first 1024 bytes contain a NUL byte or more than 30% control bytes.
Unreadable files are skipped silently.

A lone argument naming an existing directory is always scanned, even when it
starts with a dash. Otherwise use "lint -- -dir" for dash-prefixed paths.

Exit Codes:
  0  - Scan completed, no violations
  1  - Scan completed, violations found
  2  - Wrong argument count, unknown flag, or target is not a directory`,
		Example: `  # Lint the current repository in CI
  lint .

  # Show skipped files and per-file errors on stderr
  lint --verbose ./src`,
		Args:              RequireScanTarget,
		ValidArgsFunction: completeDirectories,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Log skipped files, per-file read errors and a scan summary to stderr")
	cmd.SetFlagErrorFunc(flagErrorFunc)

	v, c, d := resolveVersionInfo()
	cmd.Version = v
	cmd.SetVersionTemplate(fmt.Sprintf("charlint %s (%s, %s) %s/%s\n", v, c, d, runtime.GOOS, runtime.GOARCH))

	return cmd
}

// Execute runs the lint command with the process arguments.
// Usage and target errors have already been printed when it returns.
func Execute() error {
	return execute(newRootCommand(), os.Args[1:])
}

func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(scanArgs(args))
	return cmd.Execute()
}

// scanArgs keeps a lone dash-prefixed argument that names an existing
// directory from being parsed as a flag.
func scanArgs(args []string) []string {
	if len(args) == 1 && strings.HasPrefix(args[0], "-") {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			return []string{"--", args[0]}
		}
	}
	return args
}

// programName is the invocation name shown in usage output.
func programName() string {
	if len(os.Args) > 0 && os.Args[0] != "" {
		return os.Args[0]
	}
	return "lint"
}
