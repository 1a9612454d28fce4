// Package cli implements the celldiff command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/celldiff/celldiff/internal/simplelogger"
)

const version = "0.1.0"

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "celldiff: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the full command tree. A fresh tree is built per call so
// tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "celldiff",
		Short: "Word-level diff and review for paired texts",
		Long: `celldiff aligns two versions of a text at word granularity and renders
the differences as highlighted markup, in the terminal or as an HTML report.
Row files (CSV/TSV) pair many texts for review, filtering and selective merge.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newRowsCmd())
	rootCmd.AddCommand(newApproveCmd())
	rootCmd.AddCommand(newReportCmd())
	return rootCmd
}

// useColor resolves the --color persistent flag against the terminal state.
func useColor(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode: %s", mode)
	}
}

// terminalWidth returns the stdout width, or fallback when stdout is not a
// terminal.
func terminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

func logf(format string, args ...any) {
	simplelogger.Logf(format, args...)
}
