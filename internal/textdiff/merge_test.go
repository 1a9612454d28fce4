package textdiff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplySpan_Concrete(t *testing.T) {
	a := String("the quick fox")
	b := String("the slow fox")

	spans := Compare(a, b).Spans()
	require.Len(t, spans, 1)

	merged := ApplySpan(a, b, spans[0].ID)
	require.Equal(t, "the quick fox", merged)
}

func TestApplySpan_OnlyTargetedSpanChanges(t *testing.T) {
	a := String("one two three four")
	b := String("uno two tres four")

	spans := Compare(a, b).Spans()
	require.Len(t, spans, 2)

	require.Equal(t, "one two tres four", ApplySpan(a, b, spans[0].ID))
	require.Equal(t, "uno two three four", ApplySpan(a, b, spans[1].ID))
}

func TestApplySpan_StaleIDIsNoOp(t *testing.T) {
	a := String("the quick fox")
	b := String("the slow fox")

	require.Equal(t, "the slow fox", ApplySpan(a, b, "diff-9-replace-7.8-7.8"))
	require.Equal(t, "the slow fox", ApplySpan(a, b, ""))
	require.Equal(t, "the slow fox", ApplySpan(a, b, "not-an-id"))
}

func TestApplySpan_SameInputs(t *testing.T) {
	require.Equal(t, "hello", ApplySpan(String("hello"), String("hello"), "diff-0-replace-0.1-0.1"))
	require.Equal(t, "", ApplySpan(Missing(), Missing(), "anything"))
}

func TestApplySpan_OneSided(t *testing.T) {
	// No IDs are issued for one-side-missing pairs, so any ID is a no-op.
	require.Equal(t, "hello", ApplySpan(Missing(), String("hello"), "diff-0-insert-0.0-0.1"))
	require.Equal(t, "", ApplySpan(String("hello"), Missing(), "diff-0-delete-0.1-0.0"))
}

func TestApplySpan_Multiline(t *testing.T) {
	a := String("line1\nline2")
	b := String("line1\nline3")

	spans := Compare(a, b).Spans()
	require.Len(t, spans, 1)

	// The merge reverts the internal marker to real newlines.
	require.Equal(t, "line1\nline2", ApplySpan(a, b, spans[0].ID))
}

func TestApplySpan_PureInsertAndDelete(t *testing.T) {
	a := String("a b c")
	b := String("a b c d e")

	spans := Compare(a, b).Spans()
	require.Len(t, spans, 1)
	require.Equal(t, OpInsert, spans[0].Op)

	// Applying the insert span drops the inserted text (the primary contributes nothing there).
	require.Equal(t, "a b c", ApplySpan(a, b, spans[0].ID))

	spans = Compare(b, a).Spans()
	require.Len(t, spans, 1)
	require.Equal(t, OpDelete, spans[0].Op)
	require.Equal(t, "a b c d e", ApplySpan(b, a, spans[0].ID))
}
