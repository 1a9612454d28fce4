package report

import (
	"bytes"
	"testing"

	"github.com/celldiff/celldiff/internal/review"
	"github.com/celldiff/celldiff/internal/textdiff"
	"github.com/stretchr/testify/require"
)

func TestWrite_Basic(t *testing.T) {
	tbl := review.NewTable([]review.Row{
		{Number: "1", Primary: textdiff.String("the quick fox"), Secondary: textdiff.String("the slow fox")},
		{Number: "2", Primary: textdiff.String("same"), Secondary: textdiff.String("same")},
	})
	require.NoError(t, tbl.Approve(0, review.SideSecondary, review.ApprovalGreen))

	var buf bytes.Buffer
	err := Write(&buf, tbl.Query(review.Filter{}, 0, 1).Entries, Options{Title: "My Review"})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "<title>My Review</title>")
	require.Contains(t, out, `<span class="removed" data-diff-id="diff-0-replace-2.3-2.3">quick</span>`)
	require.Contains(t, out, `<span class="added" data-diff-id="diff-0-replace-2.3-2.3">slow</span>`)
	require.Contains(t, out, "approval-green")
	require.Contains(t, out, "different")
	require.Contains(t, out, "same")
}

func TestWrite_CommentCell(t *testing.T) {
	tbl := review.NewTable([]review.Row{
		{Number: "1", Primary: textdiff.String("a"), Secondary: textdiff.String("b"), Comment: "check the tone here"},
	})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl.Query(review.Filter{}, 0, 1).Entries, Options{}))
	require.Contains(t, buf.String(), `<td class="comment">check the tone here</td>`)
}

func TestWrite_Notes(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, nil, Options{Notes: []byte("# Session notes\n\nSecond *pass* only.")})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "<h1>Session notes</h1>")
	require.Contains(t, out, "<em>pass</em>")
	// Default title kicks in when none is given.
	require.Contains(t, out, "<title>celldiff report</title>")
}

func TestWrite_EmptyEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, Options{}))
	require.Contains(t, buf.String(), "<table>")
}
