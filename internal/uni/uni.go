// Package uni measures terminal display width. Widths are computed per grapheme cluster so combining marks and emoji sequences count as what a
// terminal actually renders, not as their code-point count.
package uni

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

func condition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}

// TextWidth returns the number of terminal cells s occupies in a monospace font.
func TextWidth(s string) int {
	return condition().StringWidth(s)
}

// Truncate returns the longest prefix of s that fits in max cells, cutting only at grapheme-cluster boundaries. max <= 0 yields "".
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	cond := condition()
	width := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		w := cond.StringWidth(iter.Value())
		if width+w > max {
			return s[:iter.Start()]
		}
		width += w
	}
	return s
}

// PadRight appends spaces until s occupies width cells. Strings already wider than width are returned unchanged.
func PadRight(s string, width int) string {
	if pad := width - TextWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// VisibleWidth returns the terminal width of s while ignoring ANSI escape sequences, so colored text measures the same as its plain form.
func VisibleWidth(s string) int {
	width := 0
	start := 0
	for i := 0; i < len(s); {
		if s[i] != '\x1b' {
			i++
			continue
		}
		if start < i {
			width += TextWidth(s[start:i])
		}
		n := ansiLen(s[i:])
		if n == 0 {
			n = 1
		}
		i += n
		start = i
	}
	if start < len(s) {
		width += TextWidth(s[start:])
	}
	return width
}

// ansiLen returns the byte length of the escape sequence at the start of s, or 0 if s does not start with one.
func ansiLen(s string) int {
	if len(s) < 2 || s[0] != '\x1b' {
		return 0
	}
	if s[1] != '[' {
		return 2
	}
	for i := 2; i < len(s); i++ {
		if s[i] >= 0x40 && s[i] <= 0x7e { // final byte of a CSI sequence
			return i + 1
		}
	}
	return 0
}
