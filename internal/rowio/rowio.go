// Package rowio loads and saves review rows as delimited text (CSV or TSV) with a header row. Column names are configurable because datasets in the
// wild carry their own headers; only the two text columns are required.
package rowio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/celldiff/celldiff/internal/review"
	"github.com/celldiff/celldiff/internal/textdiff"
)

// Columns names the header fields a dataset uses. Primary and Secondary are required in the input; the rest are optional. An empty name drops that
// column from Save output entirely.
type Columns struct {
	Number    string
	Primary   string
	Secondary string
	Ratio     string
	ApprovalA string
	ApprovalB string
	Comment   string
}

// DefaultColumns returns the default header names.
func DefaultColumns() Columns {
	return Columns{
		Number:    "number",
		Primary:   "primary_text",
		Secondary: "secondary_text",
		Ratio:     "ratio",
		ApprovalA: "approval_a",
		ApprovalB: "approval_b",
		Comment:   "comment",
	}
}

// Load reads rows from r. The first record is the header; it must contain the Primary and Secondary columns (an error names whichever are missing).
// A cell whose column is absent from the header, or that lies beyond the end of a short record, is Missing; a present-but-empty field is the empty
// string. A Ratio cell that parses as a number pre-fills the row's ratio.
func Load(r io.Reader, cols Columns, comma rune) ([]review.Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := headerIndex(header)
	var missing []string
	if _, ok := idx[cols.Primary]; !ok {
		missing = append(missing, cols.Primary)
	}
	if _, ok := idx[cols.Secondary]; !ok {
		missing = append(missing, cols.Secondary)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var rows []review.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}

		row := review.Row{
			Primary:   cell(record, idx, cols.Primary),
			Secondary: cell(record, idx, cols.Secondary),
		}
		if n := cell(record, idx, cols.Number); n.Present() {
			row.Number = n.Text()
		}
		if rv := cell(record, idx, cols.Ratio); rv.Present() && rv.Text() != "" {
			if ratio, err := strconv.ParseFloat(rv.Text(), 64); err == nil {
				row.Ratio = ratio
				row.HasRatio = true
			}
		}
		if av := cell(record, idx, cols.ApprovalA); av.Present() {
			if a, err := review.ParseApproval(av.Text()); err == nil {
				row.SetApproval(review.SidePrimary, a)
			}
		}
		if av := cell(record, idx, cols.ApprovalB); av.Present() {
			if a, err := review.ParseApproval(av.Text()); err == nil {
				row.SetApproval(review.SideSecondary, a)
			}
		}
		if cv := cell(record, idx, cols.Comment); cv.Present() {
			row.Comment = cv.Text()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Save writes rows to w with a header. Missing cells are written as empty fields: the delimited form cannot express absence, so a round trip narrows
// Missing to "". Unapproved cells are written as empty fields; approvals are written as their color names.
func Save(w io.Writer, rows []review.Row, cols Columns, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	type field struct {
		name  string
		value func(*review.Row) string
	}
	fields := []field{
		{cols.Number, func(r *review.Row) string { return r.Number }},
		{cols.Primary, func(r *review.Row) string { return r.Primary.Text() }},
		{cols.Secondary, func(r *review.Row) string { return r.Secondary.Text() }},
		{cols.Ratio, ratioField},
		{cols.ApprovalA, func(r *review.Row) string { return approvalField(r.Approval(review.SidePrimary)) }},
		{cols.ApprovalB, func(r *review.Row) string { return approvalField(r.Approval(review.SideSecondary)) }},
		{cols.Comment, func(r *review.Row) string { return r.Comment }},
	}

	var header []string
	for _, f := range fields {
		if f.name != "" {
			header = append(header, f.name)
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range rows {
		var record []string
		for _, f := range fields {
			if f.name != "" {
				record = append(record, f.value(&rows[i]))
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func ratioField(r *review.Row) string {
	if !r.HasRatio {
		return ""
	}
	return strconv.FormatFloat(r.Ratio, 'f', -1, 64)
}

func approvalField(a review.Approval) string {
	if a == review.ApprovalNone {
		return ""
	}
	return a.String()
}

// LoadFile reads rows from path, picking the delimiter from the extension: tab for .tsv, comma otherwise.
func LoadFile(path string, cols Columns) ([]review.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, cols, DelimiterFor(path))
}

// SaveFile writes rows to path, picking the delimiter from the extension as in LoadFile.
func SaveFile(path string, rows []review.Row, cols Columns) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Save(f, rows, cols, DelimiterFor(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DelimiterFor returns the delimiter implied by path's extension.
func DelimiterFor(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

// cell returns the field for column name, or Missing when the column or field is absent.
func cell(record []string, idx map[string]int, name string) textdiff.Value {
	if name == "" {
		return textdiff.Missing()
	}
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return textdiff.Missing()
	}
	return textdiff.String(record[i])
}
