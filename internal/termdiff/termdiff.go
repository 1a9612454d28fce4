// Package termdiff renders a textdiff.Diff for terminals: the primary side with removed fragments on pink backgrounds, the secondary side with added
// fragments on green, inline or side by side. Within replaced fragments the characters that actually changed are emphasized on a darker background.
package termdiff

import (
	"strings"

	"github.com/celldiff/celldiff/internal/textdiff"
	"github.com/celldiff/celldiff/internal/uni"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Colors (ANSI) for terminal output.
const (
	reset     = "\x1b[0m"
	blackFG   = "\x1b[30m"
	pinkLine  = "\x1b[48;5;224m" // light pink for removed fragments
	pinkSpan  = "\x1b[48;5;217m" // darker pink for the changed characters within them
	greenLine = "\x1b[48;5;194m" // light green for added fragments
	greenSpan = "\x1b[48;5;114m" // darker green for the changed characters within them
	cyanBold  = "\x1b[1;36m"
)

// Options control rendering.
type Options struct {
	Color      bool // emit ANSI colors; plain [-...-]/{+...+} markers otherwise
	SideBySide bool // two padded columns instead of stacked - / + lines
	Width      int  // total width for side-by-side; <= 0 uses 120
	Refine     bool // character-level emphasis inside replaced fragments (color mode only)
}

// Render returns a terminal rendering of d. The last line is the status line.
func Render(d textdiff.Diff, opts Options) string {
	primary := renderSide(d, true, opts)
	secondary := renderSide(d, false, opts)

	var out []string
	switch {
	case !d.Primary.Present() && !d.Secondary.Present():
		// Nothing to show but the status.
	case opts.SideBySide:
		out = sideBySide(primary, secondary, opts)
	default:
		if d.Primary.Present() {
			for _, line := range primary {
				out = append(out, "- "+line)
			}
		}
		if d.Secondary.Present() {
			for _, line := range secondary {
				out = append(out, "+ "+line)
			}
		}
	}

	status := "status: " + d.Status.String()
	if opts.Color {
		status = cyanBold + status + reset
	}
	out = append(out, status)
	return strings.Join(out, "\n")
}

// renderSide renders one side of d as physical lines (the engine's line-break marker becomes a line split).
func renderSide(d textdiff.Diff, primary bool, opts Options) []string {
	var b strings.Builder
	for _, seg := range segmentsOf(d) {
		frag := seg.Secondary
		if primary {
			frag = seg.Primary
		}
		if frag == "" {
			continue
		}
		if seg.Op == textdiff.OpEqual {
			b.WriteString(frag)
			continue
		}
		b.WriteString(renderFragment(seg, primary, opts))
	}
	return splitMarker(b.String())
}

// renderFragment renders one changed fragment of a segment.
func renderFragment(seg textdiff.Segment, primary bool, opts Options) string {
	frag := seg.Secondary
	if primary {
		frag = seg.Primary
	}

	if !opts.Color {
		if primary {
			return "[-" + frag + "-]"
		}
		return "{+" + frag + "+}"
	}

	lineBg, spanBg := greenLine, greenSpan
	if primary {
		lineBg, spanBg = pinkLine, pinkSpan
	}

	if opts.Refine && seg.Op == textdiff.OpReplace {
		return refineReplace(seg, primary, lineBg, spanBg)
	}
	return blackFG + spanBg + frag + reset
}

// refineReplace diffs the two fragments of a replace segment character by character and emphasizes only the characters that differ; the shared
// characters keep the lighter background.
func refineReplace(seg textdiff.Segment, primary bool, lineBg, spanBg string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(seg.Primary, seg.Secondary, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	keep := diffmatchpatch.DiffDelete
	if !primary {
		keep = diffmatchpatch.DiffInsert
	}

	var b strings.Builder
	b.WriteString(blackFG)
	b.WriteString(lineBg)
	for _, df := range diffs {
		switch df.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(df.Text)
		case keep:
			// Emphasize: darker background, then reapply the base.
			b.WriteString(reset)
			b.WriteString(blackFG)
			b.WriteString(spanBg)
			b.WriteString(df.Text)
			b.WriteString(reset)
			b.WriteString(blackFG)
			b.WriteString(lineBg)
		}
	}
	b.WriteString(reset)
	return b.String()
}

// segmentsOf returns d's segments, synthesizing them for the shortcut cases so every Diff renders uniformly.
func segmentsOf(d textdiff.Diff) []textdiff.Segment {
	if d.Segments != nil {
		return d.Segments
	}
	switch {
	case !d.Primary.Present() && !d.Secondary.Present():
		return nil
	case !d.Primary.Present():
		return []textdiff.Segment{{Op: textdiff.OpInsert, Secondary: markered(d.Secondary.Text())}}
	case !d.Secondary.Present():
		return []textdiff.Segment{{Op: textdiff.OpDelete, Primary: markered(d.Primary.Text())}}
	default:
		text := markered(d.Primary.Text())
		return []textdiff.Segment{{Op: textdiff.OpEqual, Primary: text, Secondary: text}}
	}
}

// markered puts raw text into the engine's marker form so splitMarker treats all sides alike.
func markered(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", textdiff.LineBreakMarker)
}

// splitMarker converts the engine's line-break marker back into physical lines. Color codes opened on one line are closed implicitly by the reset that
// every colored fragment emits, so splitting is safe.
func splitMarker(s string) []string {
	parts := strings.Split(s, textdiff.LineBreakMarker)
	if len(parts) == 1 && parts[0] == "" {
		return []string{""}
	}
	return parts
}

// sideBySide lays the two renderings out in two columns separated by " | ".
func sideBySide(primary, secondary []string, opts Options) []string {
	width := opts.Width
	if width <= 0 {
		width = 120
	}
	col := (width - 3) / 2
	if col < 10 {
		col = 10
	}

	n := len(primary)
	if len(secondary) > n {
		n = len(secondary)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var left, right string
		if i < len(primary) {
			left = primary[i]
		}
		if i < len(secondary) {
			right = secondary[i]
		}
		out = append(out, padVisible(left, col)+" | "+right)
	}
	return out
}

// padVisible pads s with spaces to exactly width terminal cells, truncating first if it is too wide.
func padVisible(s string, width int) string {
	w := uni.VisibleWidth(s)
	if w > width {
		s = cutVisible(s, width)
		w = uni.VisibleWidth(s)
	}
	return s + strings.Repeat(" ", width-w)
}

// cutVisible truncates s to at most width terminal cells, preserving ANSI escape sequences and closing any open one with a reset.
func cutVisible(s string, width int) string {
	var b strings.Builder
	used := 0
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			n := ansiLen(s[i:])
			if n == 0 {
				n = 1
			}
			b.WriteString(s[i : i+n])
			i += n
			continue
		}
		// Next plain segment up to the following escape.
		j := strings.IndexByte(s[i:], '\x1b')
		end := len(s)
		if j >= 0 {
			end = i + j
		}
		seg := uni.Truncate(s[i:end], width-used)
		b.WriteString(seg)
		used += uni.TextWidth(seg)
		if len(seg) < end-i {
			b.WriteString(reset)
			return b.String()
		}
		i = end
	}
	return b.String()
}

func ansiLen(s string) int {
	if len(s) < 2 || s[0] != '\x1b' {
		return 0
	}
	if s[1] != '[' {
		return 2
	}
	for i := 2; i < len(s); i++ {
		if s[i] >= 0x40 && s[i] <= 0x7e {
			return i + 1
		}
	}
	return 0
}
