package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/celldiff/celldiff/internal/textdiff"
)

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply A B SPAN_ID",
		Short: "Merge one changed span from A into B",
		Long: `Apply diffs two text files, then prints B with the single span named by
SPAN_ID replaced by the corresponding text from A. Span ids come from
"celldiff diff --format json". An unknown id leaves B unchanged.`,
		Args: cobra.ExactArgs(3),
		RunE: runApply,
	}
}

func runApply(cmd *cobra.Command, args []string) error {
	primary, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	secondary, err := readInput(cmd, args[1])
	if err != nil {
		return err
	}
	merged := textdiff.ApplySpan(primary, secondary, args[2])
	logf("apply %s: %d bytes", args[2], len(merged))
	fmt.Fprintln(cmd.OutOrStdout(), merged)
	return nil
}
