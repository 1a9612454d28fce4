package rowio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/celldiff/celldiff/internal/review"
	"github.com/celldiff/celldiff/internal/textdiff"
	"github.com/stretchr/testify/require"
)

func TestLoad_Basic(t *testing.T) {
	in := strings.Join([]string{
		"number,primary_text,secondary_text,ratio",
		"1,the quick fox,the slow fox,85.5",
		`2,"hello, world","hello, moon",90`,
		"3,unchanged,unchanged,",
	}, "\n")

	rows, err := Load(strings.NewReader(in), DefaultColumns(), ',')
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "1", rows[0].Number)
	require.Equal(t, "the quick fox", rows[0].Primary.Text())
	require.Equal(t, "the slow fox", rows[0].Secondary.Text())
	require.True(t, rows[0].HasRatio)
	require.Equal(t, 85.5, rows[0].Ratio)

	require.Equal(t, "hello, world", rows[1].Primary.Text())

	// Empty ratio field means "not computed yet".
	require.False(t, rows[2].HasRatio)
}

func TestLoad_MissingRequiredColumns(t *testing.T) {
	_, err := Load(strings.NewReader("number,primary_text\n1,x"), DefaultColumns(), ',')
	require.Error(t, err)
	require.Contains(t, err.Error(), "secondary_text")

	_, err = Load(strings.NewReader("a,b\n"), DefaultColumns(), ',')
	require.Error(t, err)
	require.Contains(t, err.Error(), "primary_text")
	require.Contains(t, err.Error(), "secondary_text")

	_, err = Load(strings.NewReader(""), DefaultColumns(), ',')
	require.Error(t, err)
}

func TestLoad_MissingVsEmpty(t *testing.T) {
	// Row 1 has an empty secondary field; row 2's record is too short to reach it.
	in := "primary_text,secondary_text\nhello,\nsolo\n"

	rows, err := Load(strings.NewReader(in), DefaultColumns(), ',')
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.True(t, rows[0].Secondary.Present())
	require.Equal(t, "", rows[0].Secondary.Text())

	require.False(t, rows[1].Secondary.Present())

	// Optional columns absent from the header are Missing on every row, not an error.
	require.Equal(t, "", rows[0].Number)
	require.False(t, rows[0].HasRatio)
}

func TestLoad_CustomColumns(t *testing.T) {
	cols := Columns{Number: "id", Primary: "source", Secondary: "candidate", Ratio: "score"}
	in := "id\tsource\tcandidate\tscore\n7\told text\tnew text\t50\n"

	rows, err := Load(strings.NewReader(in), cols, '\t')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "7", rows[0].Number)
	require.Equal(t, "old text", rows[0].Primary.Text())
	require.Equal(t, "new text", rows[0].Secondary.Text())
	require.Equal(t, 50.0, rows[0].Ratio)
}

func TestSave_RoundTrip(t *testing.T) {
	rows := []review.Row{
		{Number: "1", Primary: textdiff.String("a b"), Secondary: textdiff.String("a c"), Ratio: 50, HasRatio: true},
		{Number: "2", Primary: textdiff.String("multi\nline"), Secondary: textdiff.Missing(), Ratio: 0, HasRatio: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, rows, DefaultColumns(), ','))

	got, err := Load(&buf, DefaultColumns(), ',')
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, rows[0].Primary.Text(), got[0].Primary.Text())
	require.Equal(t, rows[0].Ratio, got[0].Ratio)
	require.Equal(t, "multi\nline", got[1].Primary.Text())

	// Missing narrows to empty on a round trip; the delimited form cannot say "absent".
	require.True(t, got[1].Secondary.Present())
	require.Equal(t, "", got[1].Secondary.Text())
}

func TestSave_ApprovalsAndCommentsRoundTrip(t *testing.T) {
	rows := []review.Row{
		{Number: "1", Primary: textdiff.String("a"), Secondary: textdiff.String("b"), Ratio: 0, HasRatio: true, Comment: "needs a second look"},
		{Number: "2", Primary: textdiff.String("x"), Secondary: textdiff.String("x"), Ratio: 100, HasRatio: true},
	}
	rows[0].SetApproval(review.SidePrimary, review.ApprovalGreen)
	rows[0].SetApproval(review.SideSecondary, review.ApprovalRed)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, rows, DefaultColumns(), ','))
	saved := buf.String()

	got, err := Load(&buf, DefaultColumns(), ',')
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, review.ApprovalGreen, got[0].Approval(review.SidePrimary))
	require.Equal(t, review.ApprovalRed, got[0].Approval(review.SideSecondary))
	require.Equal(t, "needs a second look", got[0].Comment)

	// Unapproved cells stay unapproved and are serialized as empty fields.
	require.Equal(t, review.ApprovalNone, got[1].Approval(review.SidePrimary))
	require.Equal(t, "", got[1].Comment)
	require.Contains(t, saved, "approval_a,approval_b,comment")
}

func TestLoad_UnknownApprovalIgnored(t *testing.T) {
	in := "primary_text,secondary_text,approval_a\na,b,purple\n"

	rows, err := Load(strings.NewReader(in), DefaultColumns(), ',')
	require.NoError(t, err)
	require.Equal(t, review.ApprovalNone, rows[0].Approval(review.SidePrimary))
}

func TestSave_EmptyColumnNameDropsColumn(t *testing.T) {
	cols := Columns{Primary: "a", Secondary: "b"}
	rows := []review.Row{{Primary: textdiff.String("x"), Secondary: textdiff.String("y"), Comment: "hidden"}}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, rows, cols, ','))
	require.Equal(t, "a,b\nx,y\n", buf.String())
}

func TestDelimiterFor(t *testing.T) {
	require.Equal(t, '\t', DelimiterFor("rows.tsv"))
	require.Equal(t, '\t', DelimiterFor("ROWS.TSV"))
	require.Equal(t, ',', DelimiterFor("rows.csv"))
	require.Equal(t, ',', DelimiterFor("rows"))
}
