package uni

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextWidth(t *testing.T) {
	require.Equal(t, 0, TextWidth(""))
	require.Equal(t, 5, TextWidth("hello"))
	require.Equal(t, 4, TextWidth("世界"))       // CJK is double width
	require.Equal(t, 4, TextWidth("café"))          // precomposed accent
	require.Equal(t, 4, TextWidth("café"))         // combining accent
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "", Truncate("hello", 0))
	require.Equal(t, "hel", Truncate("hello", 3))
	require.Equal(t, "hello", Truncate("hello", 5))
	require.Equal(t, "hello", Truncate("hello", 99))

	// Never cuts a double-width cell in half.
	require.Equal(t, "世", Truncate("世界", 3))

	// Never splits a combining sequence.
	require.Equal(t, "café", Truncate("café", 4))
}

func TestVisibleWidth(t *testing.T) {
	require.Equal(t, 5, VisibleWidth("hello"))
	require.Equal(t, 5, VisibleWidth("\x1b[48;5;224mhello\x1b[0m"))
	require.Equal(t, 0, VisibleWidth("\x1b[0m"))
	require.Equal(t, 10, VisibleWidth("\x1b[30mhello\x1b[0m world"))
}

func TestPadRight(t *testing.T) {
	require.Equal(t, "ab    ", PadRight("ab", 6))
	// CJK characters occupy two cells each, so fewer pad spaces are needed.
	require.Equal(t, "你好  ", PadRight("你好", 6))
	require.Equal(t, "toolong", PadRight("toolong", 3))
}
