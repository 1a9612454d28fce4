// Package review holds an in-memory table of reviewed row pairs and the operations a reviewer performs on them: diffing, editing the secondary cell,
// selectively merging a single change back, approving cells, and querying with ratio/approval filters, sorting, and pagination.
//
// The table is plain data handed in by the caller; where the rows came from (and where they go afterwards) is not this package's concern.
package review

import (
	"fmt"
	"strings"

	"github.com/celldiff/celldiff/internal/textdiff"
)

// Side selects one of the two text columns of a row.
type Side int

const (
	SidePrimary Side = iota
	SideSecondary
)

// String returns "a" for the primary side and "b" for the secondary side, the labels reviewers see.
func (s Side) String() string {
	if s == SidePrimary {
		return "a"
	}
	return "b"
}

// Approval is a reviewer's verdict on one cell.
type Approval int

const (
	ApprovalNone Approval = iota
	ApprovalGreen
	ApprovalYellow
	ApprovalRed
)

// String returns the approval color name, or "none".
func (a Approval) String() string {
	switch a {
	case ApprovalGreen:
		return "green"
	case ApprovalYellow:
		return "yellow"
	case ApprovalRed:
		return "red"
	default:
		return "none"
	}
}

// ParseApproval converts a color name to an Approval.
func ParseApproval(s string) (Approval, error) {
	switch s {
	case "green":
		return ApprovalGreen, nil
	case "yellow":
		return ApprovalYellow, nil
	case "red":
		return ApprovalRed, nil
	case "none", "":
		return ApprovalNone, nil
	default:
		return ApprovalNone, fmt.Errorf("unknown approval %q", s)
	}
}

// Row is one reviewed pair. Number is the row's display identifier (often a sequence number from the dataset); it may be empty, in which case the
// row's position in the table identifies it.
type Row struct {
	Number    string
	Primary   textdiff.Value
	Secondary textdiff.Value

	// Ratio is the percent similarity of the two cells; valid only when HasRatio. Tables fill it in lazily (see NewTable).
	Ratio    float64
	HasRatio bool

	// Comment is the reviewer's free-text note on the row.
	Comment string

	primaryApproval   Approval
	secondaryApproval Approval
}

// Approval returns the row's approval for side.
func (r *Row) Approval(side Side) Approval {
	if side == SidePrimary {
		return r.primaryApproval
	}
	return r.secondaryApproval
}

// SetApproval records an approval verdict for one cell. Loaders use it to restore persisted approvals; within a table, prefer Table.Approve.
func (r *Row) SetApproval(side Side, approval Approval) {
	if side == SidePrimary {
		r.primaryApproval = approval
	} else {
		r.secondaryApproval = approval
	}
}

// Table is an ordered, mutable collection of rows.
type Table struct {
	rows []Row
}

// NewTable wraps rows in a Table, computing the similarity ratio for any row that arrived without one.
func NewTable(rows []Row) *Table {
	t := &Table{rows: rows}
	for i := range t.rows {
		if !t.rows[i].HasRatio {
			t.rows[i].Ratio = textdiff.Ratio(t.rows[i].Primary, t.rows[i].Secondary)
			t.rows[i].HasRatio = true
		}
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the row at index i.
func (t *Table) Row(i int) (*Row, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, fmt.Errorf("row %d out of range [0,%d)", i, len(t.rows))
	}
	return &t.rows[i], nil
}

// Rows returns the backing rows in order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Diff compares the two cells of row i.
func (t *Table) Diff(i int) (textdiff.Diff, error) {
	row, err := t.Row(i)
	if err != nil {
		return textdiff.Diff{}, err
	}
	return textdiff.Compare(row.Primary, row.Secondary), nil
}

// Edit replaces the secondary cell of row i with text and recomputes the ratio. Text arrives in display form: <br> markers and CRLF variants are
// normalized back to \n before storing.
func (t *Table) Edit(i int, text string) (textdiff.Diff, error) {
	row, err := t.Row(i)
	if err != nil {
		return textdiff.Diff{}, err
	}
	row.Secondary = textdiff.String(normalizeEdit(text))
	row.Ratio = textdiff.Ratio(row.Primary, row.Secondary)
	row.HasRatio = true
	return textdiff.Compare(row.Primary, row.Secondary), nil
}

// ApplySpan merges the single identified change from the primary cell into the secondary cell of row i and stores the result. An unknown or stale
// span ID leaves the secondary cell unchanged (see textdiff.ApplySpan).
func (t *Table) ApplySpan(i int, spanID string) (string, error) {
	row, err := t.Row(i)
	if err != nil {
		return "", err
	}
	merged := textdiff.ApplySpan(row.Primary, row.Secondary, spanID)
	row.Secondary = textdiff.String(merged)
	row.Ratio = textdiff.Ratio(row.Primary, row.Secondary)
	row.HasRatio = true
	return merged, nil
}

// Approve records an approval verdict for one cell of row i.
func (t *Table) Approve(i int, side Side, approval Approval) error {
	row, err := t.Row(i)
	if err != nil {
		return err
	}
	row.SetApproval(side, approval)
	return nil
}

// SetComment replaces the reviewer comment on row i.
func (t *Table) SetComment(i int, text string) error {
	row, err := t.Row(i)
	if err != nil {
		return err
	}
	row.Comment = text
	return nil
}

// Reset clears the approval of one cell of row i.
func (t *Table) Reset(i int, side Side) error {
	return t.Approve(i, side, ApprovalNone)
}

// Recalculate recomputes every row's ratio from the current cell contents.
func (t *Table) Recalculate() {
	for i := range t.rows {
		t.rows[i].Ratio = textdiff.Ratio(t.rows[i].Primary, t.rows[i].Secondary)
		t.rows[i].HasRatio = true
	}
}

// normalizeEdit converts display line breaks in edited text to \n.
func normalizeEdit(text string) string {
	text = strings.ReplaceAll(text, "<br>", "\n")
	text = strings.ReplaceAll(text, "<br/>", "\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
