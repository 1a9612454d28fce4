package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/celldiff/celldiff/internal/review"
	"github.com/celldiff/celldiff/internal/rowio"
)

func newApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve FILE ID SIDE LEVEL",
		Short: "Record an approval verdict for one cell of a review file",
		Long: `Approve marks one cell of the row identified by ID: SIDE is "a" or "b",
LEVEL is green, yellow, red, or none (none clears the verdict). The file is
rewritten in place, so later "rows --approval-a"/"--approval-b" filters and
reports see the verdict.`,
		Args: cobra.ExactArgs(4),
		RunE: runApprove,
	}
}

func runApprove(cmd *cobra.Command, args []string) error {
	path, id := args[0], args[1]
	side, err := parseSide(args[2])
	if err != nil {
		return err
	}
	level, err := review.ParseApproval(args[3])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(filepath.Dir(path))
	if err != nil {
		return err
	}
	cols := cfg.columns()
	rows, err := rowio.LoadFile(path, cols)
	if err != nil {
		return err
	}
	table := review.NewTable(rows)

	index, err := findRow(table, id)
	if err != nil {
		return err
	}
	if err := table.Approve(index, side, level); err != nil {
		return err
	}
	if err := rowio.SaveFile(path, table.Rows(), cols); err != nil {
		return err
	}
	logf("approve %s row %s: %s = %s", path, id, side, level)
	fmt.Fprintf(cmd.OutOrStdout(), "row %s: %s = %s\n", id, side, level)
	return nil
}

func parseSide(s string) (review.Side, error) {
	switch s {
	case "a":
		return review.SidePrimary, nil
	case "b":
		return review.SideSecondary, nil
	default:
		return 0, fmt.Errorf("unknown side %q, want a or b", s)
	}
}

// findRow resolves an id the way the rows filter does: by the row's number, falling back to table position.
func findRow(t *review.Table, id string) (int, error) {
	entries := t.Query(review.Filter{Number: id}, 0, 1).Entries
	switch len(entries) {
	case 0:
		return 0, fmt.Errorf("no row with id %q", id)
	case 1:
		return entries[0].Index, nil
	default:
		return 0, fmt.Errorf("id %q matches %d rows", id, len(entries))
	}
}
