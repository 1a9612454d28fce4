package textdiff

import (
	"fmt"
	"regexp"
	"strings"
)

// emptySpanPattern matches a change wrapper whose content collapsed to nothing. Rendered output must never contain an empty wrapper.
var emptySpanPattern = regexp.MustCompile(`<span class="(?:added|removed)" data-diff-id="[^"]*"></span>`)

// Compare diffs primary against secondary.
//
// Shortcut cases produce no Segments: both sides missing (Same), exactly one side missing (Different, rendered as one whole-text change), and inputs
// that are byte-equal after line-ending unification (Same). Otherwise the full normalize/tokenize/align pipeline runs and Segments carry the aligned
// regions with their span IDs.
func Compare(primary, secondary Value) Diff {
	d := Diff{Primary: primary, Secondary: secondary}

	normP, okP := normalize(primary)
	normS, okS := normalize(secondary)

	switch {
	case !okP && !okS:
		d.Status = StatusSame
		return d
	case !okP || !okS:
		d.Status = StatusDifferent
		return d
	case normP == normS:
		d.Status = StatusSame
		return d
	}

	d.Status = StatusDifferent

	tokensP := tokenize(normP)
	tokensS := tokenize(normS)

	seq := 0
	for _, oc := range align(tokensP, tokensS) {
		seg := Segment{
			Op:        oc.Op,
			Primary:   concatTokens(tokensP, oc.I1, oc.I2),
			Secondary: concatTokens(tokensS, oc.J1, oc.J2),
		}
		if oc.Op != OpEqual {
			seg.ID = spanID(seq, oc)
			seq++
		}
		d.Segments = append(d.Segments, seg)
	}

	if err := d.validate(); err != nil {
		panic(fmt.Errorf("textdiff: Compare: validate failed with %v", err))
	}
	return d
}

// HTML renders both sides as inline markup: changed fragments are wrapped in <span> elements carrying the change class ("removed" on the primary side,
// "added" on the secondary side) and the span identifier; unchanged text is emitted bare. Line breaks become <br> so the output is safe to embed in a
// single-line display context.
func (d Diff) HTML() (renderedPrimary, renderedSecondary string) {
	switch {
	case !d.Primary.Present() && !d.Secondary.Present():
		return "", ""
	case !d.Primary.Present():
		return "", `<span class="added">` + breakToBR(d.Secondary.Text()) + `</span>`
	case !d.Secondary.Present():
		return `<span class="removed">` + breakToBR(d.Primary.Text()) + `</span>`, ""
	case d.Segments == nil:
		// Byte-equal inputs: literal text, no markup.
		return breakToBR(d.Primary.Text()), breakToBR(d.Secondary.Text())
	}

	var p, s strings.Builder
	for _, seg := range d.Segments {
		if seg.Op == OpEqual {
			p.WriteString(seg.Primary)
			s.WriteString(seg.Secondary)
			continue
		}
		if seg.Primary != "" {
			p.WriteString(`<span class="removed" data-diff-id="` + seg.ID + `">` + seg.Primary + `</span>`)
		}
		if seg.Secondary != "" {
			s.WriteString(`<span class="added" data-diff-id="` + seg.ID + `">` + seg.Secondary + `</span>`)
		}
	}

	renderedPrimary = markerToBR(p.String())
	renderedSecondary = markerToBR(s.String())
	renderedPrimary = emptySpanPattern.ReplaceAllString(renderedPrimary, "")
	renderedSecondary = emptySpanPattern.ReplaceAllString(renderedSecondary, "")
	return renderedPrimary, renderedSecondary
}

// breakToBR converts literal line endings for the shortcut render paths.
func breakToBR(s string) string {
	return strings.ReplaceAll(unifyEOL(s), "\n", "<br>")
}

// markerToBR converts the bare marker character, leaving its surrounding spaces in place.
func markerToBR(s string) string {
	return strings.ReplaceAll(s, strings.TrimSpace(LineBreakMarker), "<br>")
}
