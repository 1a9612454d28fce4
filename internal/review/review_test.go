package review

import (
	"testing"

	"github.com/celldiff/celldiff/internal/textdiff"
	"github.com/stretchr/testify/require"
)

func newTestTable() *Table {
	return NewTable([]Row{
		{Number: "1", Primary: textdiff.String("the quick fox"), Secondary: textdiff.String("the quick fox")},
		{Number: "2", Primary: textdiff.String("the quick fox"), Secondary: textdiff.String("the slow fox")},
		{Number: "3", Primary: textdiff.String("hello world"), Secondary: textdiff.String("goodbye moon")},
		{Number: "4", Primary: textdiff.String("alpha"), Secondary: textdiff.Missing()},
	})
}

func TestNewTable_FillsRatios(t *testing.T) {
	tbl := newTestTable()
	for _, row := range tbl.Rows() {
		require.True(t, row.HasRatio)
	}

	identical, err := tbl.Row(0)
	require.NoError(t, err)
	require.Equal(t, 100.0, identical.Ratio)

	missing, err := tbl.Row(3)
	require.NoError(t, err)
	require.Equal(t, 0.0, missing.Ratio)

	// A row that arrives with a ratio keeps it.
	pre := NewTable([]Row{{Primary: textdiff.String("a"), Secondary: textdiff.String("b"), Ratio: 42, HasRatio: true}})
	require.Equal(t, 42.0, pre.Rows()[0].Ratio)
}

func TestTable_Diff(t *testing.T) {
	tbl := newTestTable()

	d, err := tbl.Diff(0)
	require.NoError(t, err)
	require.Equal(t, textdiff.StatusSame, d.Status)

	d, err = tbl.Diff(1)
	require.NoError(t, err)
	require.Equal(t, textdiff.StatusDifferent, d.Status)

	_, err = tbl.Diff(99)
	require.Error(t, err)
}

func TestTable_Edit(t *testing.T) {
	tbl := newTestTable()

	d, err := tbl.Edit(1, "the quick<br>fox")
	require.NoError(t, err)

	row, err := tbl.Row(1)
	require.NoError(t, err)
	require.Equal(t, "the quick\nfox", row.Secondary.Text())
	require.Equal(t, textdiff.StatusDifferent, d.Status)

	// Editing to an exact match flips the status and the ratio.
	d, err = tbl.Edit(1, "the quick fox")
	require.NoError(t, err)
	require.Equal(t, textdiff.StatusSame, d.Status)
	row, _ = tbl.Row(1)
	require.Equal(t, 100.0, row.Ratio)
}

func TestTable_ApplySpan(t *testing.T) {
	tbl := newTestTable()

	d, err := tbl.Diff(1)
	require.NoError(t, err)
	spans := d.Spans()
	require.Len(t, spans, 1)

	merged, err := tbl.ApplySpan(1, spans[0].ID)
	require.NoError(t, err)
	require.Equal(t, "the quick fox", merged)

	row, _ := tbl.Row(1)
	require.Equal(t, "the quick fox", row.Secondary.Text())
	require.Equal(t, 100.0, row.Ratio)

	// A stale ID leaves the row untouched.
	merged, err = tbl.ApplySpan(2, "diff-7-replace-1.2-1.2")
	require.NoError(t, err)
	require.Equal(t, "goodbye moon", merged)
}

func TestTable_ApproveAndReset(t *testing.T) {
	tbl := newTestTable()

	require.NoError(t, tbl.Approve(0, SideSecondary, ApprovalGreen))
	require.NoError(t, tbl.Approve(1, SidePrimary, ApprovalRed))

	row, _ := tbl.Row(0)
	require.Equal(t, ApprovalGreen, row.Approval(SideSecondary))
	require.Equal(t, ApprovalNone, row.Approval(SidePrimary))

	require.NoError(t, tbl.Reset(0, SideSecondary))
	row, _ = tbl.Row(0)
	require.Equal(t, ApprovalNone, row.Approval(SideSecondary))

	require.Error(t, tbl.Approve(99, SidePrimary, ApprovalGreen))
}

func TestRow_SetApproval(t *testing.T) {
	var row Row
	row.SetApproval(SidePrimary, ApprovalYellow)
	require.Equal(t, ApprovalYellow, row.Approval(SidePrimary))
	require.Equal(t, ApprovalNone, row.Approval(SideSecondary))
}

func TestTable_SetComment(t *testing.T) {
	tbl := newTestTable()

	require.NoError(t, tbl.SetComment(0, "revisit after the glossary update"))
	row, _ := tbl.Row(0)
	require.Equal(t, "revisit after the glossary update", row.Comment)

	require.Error(t, tbl.SetComment(99, "x"))
}

func TestParseApproval(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Approval
	}{
		{"green", ApprovalGreen},
		{"yellow", ApprovalYellow},
		{"red", ApprovalRed},
		{"none", ApprovalNone},
		{"", ApprovalNone},
	} {
		got, err := ParseApproval(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := ParseApproval("blue")
	require.Error(t, err)
}
