package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/celldiff/celldiff/internal/termdiff"
	"github.com/celldiff/celldiff/internal/textdiff"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Diff two text files word by word",
		Long: `Diff reads two text files and prints their word-level differences.
Pass - for one of the files to read that side from stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: runDiff,
	}
	cmd.Flags().String("format", "term", "output format (term|html|json)")
	cmd.Flags().Bool("side-by-side", false, "render the two versions in parallel columns")
	cmd.Flags().Int("width", 0, "output width for side-by-side (0 = detect)")
	cmd.Flags().Bool("refine", true, "highlight character-level changes inside replaced words")
	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	primary, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	secondary, err := readInput(cmd, args[1])
	if err != nil {
		return err
	}

	d := textdiff.Compare(primary, secondary)
	logf("diff %s %s: status=%s segments=%d", args[0], args[1], d.Status, len(d.Segments))

	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if !cmd.Flags().Changed("format") && cfg.Output.Format != "" {
		format = cfg.Output.Format
	}
	switch format {
	case "term":
		return writeTermDiff(cmd, d, cfg)
	case "html":
		a, b := d.HTML()
		fmt.Fprintln(cmd.OutOrStdout(), a)
		fmt.Fprintln(cmd.OutOrStdout(), b)
		return nil
	case "json":
		return writeJSONDiff(cmd.OutOrStdout(), d)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeTermDiff(cmd *cobra.Command, d textdiff.Diff, cfg config) error {
	color, err := useColor(cmd)
	if err != nil {
		return err
	}
	sideBySide, err := cmd.Flags().GetBool("side-by-side")
	if err != nil {
		return fmt.Errorf("failed to get side-by-side flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}
	refine, err := cmd.Flags().GetBool("refine")
	if err != nil {
		return fmt.Errorf("failed to get refine flag: %w", err)
	}
	if width <= 0 && cfg.Output.Width > 0 {
		width = cfg.Output.Width
	}
	if width <= 0 {
		width = terminalWidth(80)
	}
	out := termdiff.Render(d, termdiff.Options{
		Color:      color,
		SideBySide: sideBySide,
		Width:      width,
		Refine:     refine,
	})
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

type jsonSpan struct {
	ID        string `json:"id"`
	Op        string `json:"op"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type jsonDiff struct {
	Status        string     `json:"status"`
	PrimaryHTML   string     `json:"primary_html"`
	SecondaryHTML string     `json:"secondary_html"`
	Spans         []jsonSpan `json:"spans"`
}

func writeJSONDiff(w io.Writer, d textdiff.Diff) error {
	a, b := d.HTML()
	out := jsonDiff{
		Status:        d.Status.String(),
		PrimaryHTML:   a,
		SecondaryHTML: b,
		Spans:         []jsonSpan{},
	}
	for _, s := range d.Spans() {
		out.Spans = append(out.Spans, jsonSpan{
			ID:        s.ID,
			Op:        s.Op.String(),
			Primary:   s.Primary,
			Secondary: s.Secondary,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode diff: %w", err)
	}
	return nil
}

// readInput loads one side of the diff. "-" reads stdin; only one side may
// use it.
func readInput(cmd *cobra.Command, arg string) (textdiff.Value, error) {
	if arg == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return textdiff.Missing(), fmt.Errorf("failed to read stdin: %w", err)
		}
		return textdiff.String(string(b)), nil
	}
	b, err := os.ReadFile(arg)
	if err != nil {
		return textdiff.Missing(), fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return textdiff.String(string(b)), nil
}
