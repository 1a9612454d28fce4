package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/celldiff/celldiff/internal/report"
	"github.com/celldiff/celldiff/internal/review"
	"github.com/celldiff/celldiff/internal/rowio"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report FILE",
		Short: "Write an HTML report for a CSV/TSV review file",
		Long: `Report renders every row of a review file as highlighted word-level
markup in a standalone HTML page. Notes written in Markdown can be prepended.`,
		Args: cobra.ExactArgs(1),
		RunE: runReport,
	}
	cmd.Flags().String("out", "", "output file (default stdout)")
	cmd.Flags().String("notes", "", "Markdown file to include at the top of the report")
	cmd.Flags().String("title", "", "report title")
	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(filepath.Dir(args[0]))
	if err != nil {
		return err
	}
	rows, err := rowio.LoadFile(args[0], cfg.columns())
	if err != nil {
		return err
	}
	table := review.NewTable(rows)
	entries := table.Query(review.Filter{}, 0, 1).Entries

	opts := report.Options{}
	if opts.Title, err = cmd.Flags().GetString("title"); err != nil {
		return fmt.Errorf("failed to get title flag: %w", err)
	}
	notesPath, err := cmd.Flags().GetString("notes")
	if err != nil {
		return fmt.Errorf("failed to get notes flag: %w", err)
	}
	if notesPath != "" {
		if opts.Notes, err = os.ReadFile(notesPath); err != nil {
			return fmt.Errorf("failed to read notes: %w", err)
		}
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}
	if err := report.Write(w, entries, opts); err != nil {
		return err
	}
	logf("report %s: %d rows -> %s", args[0], len(entries), outPath)
	return nil
}
