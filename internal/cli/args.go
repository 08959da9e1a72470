package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/charlint/pkg/charlint"
)

// RequireScanTarget validates that exactly one directory argument is provided.
// On failure it prints the one-line usage to stdout and returns an error
// wrapping charlint.ErrUsage.
func RequireScanTarget(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		printUsage(cmd.OutOrStdout())
		return fmt.Errorf("accepts 1 arg(s), received %d: %w", len(args), charlint.ErrUsage)
	}
	return nil
}

// flagErrorFunc turns flag parsing failures into usage errors.
func flagErrorFunc(cmd *cobra.Command, err error) error {
	printUsage(cmd.OutOrStdout())
	return fmt.Errorf("%v: %w", err, charlint.ErrUsage)
}

func printUsage(out io.Writer) {
	fmt.Fprintf(out, "Usage: %s %s\n", programName(), charlint.TargetPlaceholder)
}

func printInvalidTarget(out io.Writer, path string) {
	fmt.Fprintf(out, "Error: '%s' is not a directory or does not exist.\n", path)
}
