package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/celldiff/celldiff/internal/review"
	"github.com/celldiff/celldiff/internal/rowio"
	"github.com/celldiff/celldiff/internal/uni"
)

func newRowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rows FILE",
		Short: "List the rows of a CSV/TSV review file",
		Long: `Rows loads a CSV or TSV file pairing two versions of each text, computes
per-row similarity percentages and lists them. Filters narrow the listing;
paging splits it.`,
		Args: cobra.ExactArgs(1),
		RunE: runRows,
	}
	cmd.Flags().Float64("min-ratio", 0, "only rows with similarity strictly above this percentage")
	cmd.Flags().Float64("max-ratio", 0, "only rows with similarity strictly below this percentage")
	cmd.Flags().String("ratio-range", "", "inclusive similarity percentage range, as FROM:TO")
	cmd.Flags().String("approval-a", "", "only rows whose A side has this approval (green|yellow|red|none)")
	cmd.Flags().String("approval-b", "", "only rows whose B side has this approval (green|yellow|red|none)")
	cmd.Flags().String("id", "", "only the row with this number")
	cmd.Flags().String("sort", "none", "sort by similarity percentage (none|asc|desc)")
	cmd.Flags().Int("page", 1, "page to show (1-based)")
	cmd.Flags().Int("per-page", 0, "rows per page (0 = all)")
	return cmd
}

func runRows(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(filepath.Dir(args[0]))
	if err != nil {
		return err
	}
	rows, err := rowio.LoadFile(args[0], cfg.columns())
	if err != nil {
		return err
	}
	table := review.NewTable(rows)
	logf("rows %s: %d rows", args[0], table.Len())

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}
	perPage, err := cmd.Flags().GetInt("per-page")
	if err != nil {
		return fmt.Errorf("failed to get per-page flag: %w", err)
	}
	if perPage == 0 && cfg.Output.PerPage > 0 && !cmd.Flags().Changed("per-page") {
		perPage = cfg.Output.PerPage
	}
	page, err := cmd.Flags().GetInt("page")
	if err != nil {
		return fmt.Errorf("failed to get page flag: %w", err)
	}

	result := table.Query(filter, perPage, page)
	writeRowsTable(cmd.OutOrStdout(), result)
	return nil
}

func filterFromFlags(cmd *cobra.Command) (review.Filter, error) {
	var f review.Filter
	flags := cmd.Flags()

	if flags.Changed("min-ratio") {
		v, _ := flags.GetFloat64("min-ratio")
		f.GreaterThan = &v
	}
	if flags.Changed("max-ratio") {
		v, _ := flags.GetFloat64("max-ratio")
		f.LessThan = &v
	}
	if rng, _ := flags.GetString("ratio-range"); rng != "" {
		from, to, err := parseRange(rng)
		if err != nil {
			return review.Filter{}, err
		}
		f.From, f.To = from, to
	}
	if s, _ := flags.GetString("approval-a"); s != "" {
		a, err := review.ParseApproval(s)
		if err != nil {
			return review.Filter{}, err
		}
		f.Primary = &a
	}
	if s, _ := flags.GetString("approval-b"); s != "" {
		a, err := review.ParseApproval(s)
		if err != nil {
			return review.Filter{}, err
		}
		f.Secondary = &a
	}
	f.Number, _ = flags.GetString("id")

	sortMode, _ := flags.GetString("sort")
	switch sortMode {
	case "none", "":
		f.Sort = review.SortNone
	case "asc":
		f.Sort = review.SortAsc
	case "desc":
		f.Sort = review.SortDesc
	default:
		return review.Filter{}, fmt.Errorf("unknown sort mode: %s", sortMode)
	}
	return f, nil
}

// parseRange parses "FROM:TO". Either bound may be empty for a single-ended
// range.
func parseRange(s string) (*float64, *float64, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, nil, fmt.Errorf("malformed ratio range %q, want FROM:TO", s)
	}
	var from, to *float64
	if lo != "" {
		v, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("malformed ratio range %q: %w", s, err)
		}
		from = &v
	}
	if hi != "" {
		v, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("malformed ratio range %q: %w", s, err)
		}
		to = &v
	}
	return from, to, nil
}

const rowTextWidth = 32

const rowNumberWidth = 8

// writeRowsTable pads the free-text columns by display width, not rune count, so wide scripts keep the columns aligned.
func writeRowsTable(w io.Writer, p review.Page) {
	fmt.Fprintf(w, "%s  %7s  %-6s  %-6s  %s  %s\n",
		uni.PadRight("NUMBER", rowNumberWidth), "RATIO", "A", "B",
		uni.PadRight("TEXT A", rowTextWidth), "TEXT B")
	for _, e := range p.Entries {
		fmt.Fprintf(w, "%s  %7s  %-6s  %-6s  %s  %s\n",
			uni.PadRight(textCell(e.Row.Number), rowNumberWidth),
			ratioCell(e.Row),
			e.Row.Approval(review.SidePrimary),
			e.Row.Approval(review.SideSecondary),
			uni.PadRight(textCell(e.Row.Primary.Text()), rowTextWidth),
			textCell(e.Row.Secondary.Text()))
	}
	fmt.Fprintf(w, "page %d/%d (%d rows)\n", p.PageIndex, p.TotalPages, p.TotalRows)
}

func ratioCell(r review.Row) string {
	if !r.HasRatio {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", r.Ratio)
}

// textCell flattens a text to one line and truncates it on grapheme
// boundaries so wide scripts stay aligned.
func textCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if uni.TextWidth(s) <= rowTextWidth {
		return s
	}
	return uni.Truncate(s, rowTextWidth-1) + "…"
}
