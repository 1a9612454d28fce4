package textdiff

import (
	"strings"
	"unicode"
)

// LineBreakMarker replaces every line ending before tokenization. The pilcrow is rare enough in cell content not to collide, and the surrounding spaces
// make it a standalone token after whitespace splitting, so a line boundary can never silently merge with an adjacent word during alignment.
//
// Exported so renderers that re-split fragments into physical lines use the exact same marker.
const LineBreakMarker = " ¶ "

// unifyEOL converts \r\n and bare \r to \n.
func unifyEOL(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// normalize converts a Value to its canonical marker form: missing becomes "", line endings become the line-break marker. The missing flag is reported
// separately so Status can distinguish "both missing" from "both empty".
func normalize(v Value) (string, bool) {
	if !v.Present() {
		return "", false
	}
	return strings.ReplaceAll(unifyEOL(v.Text()), "\n", LineBreakMarker), true
}

// denormalize reverts the marker form of merged text to real newlines.
func denormalize(s string) string {
	return strings.ReplaceAll(s, LineBreakMarker, "\n")
}

// tokenize splits s into maximal runs of whitespace and non-whitespace characters. Whitespace runs are kept as tokens, so concatenating the result
// reproduces s exactly. The empty string yields an empty sequence.
func tokenize(s string) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	start := 0
	inSpace := false
	for i, r := range s {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			tokens = append(tokens, s[start:i])
			start = i
			inSpace = space
		}
	}
	return append(tokens, s[start:])
}
