package textdiff

// ApplySpan merges one identified change from the primary side into the secondary side: it re-runs the exact alignment Compare would run on the same
// two values, emits the secondary fragment for every region except the one whose ID matches spanID, for which the primary fragment is emitted instead,
// and returns the concatenation with line-break markers reverted to \n.
//
// A spanID that matches no current opcode (for example, one issued before either text changed) is a silent no-op: the secondary text is returned
// unchanged. The engine cannot distinguish a stale ID from an ID it never issued, so no error is reported.
func ApplySpan(primary, secondary Value, spanID string) string {
	d := Compare(primary, secondary)

	if d.Segments == nil {
		// No alignment ran. For one-side-missing pairs the whole present text is a single unidentified change, so there is nothing addressable;
		// the secondary side is returned as-is.
		return d.Secondary.Text()
	}

	var out string
	for _, seg := range d.Segments {
		if seg.ID != "" && seg.ID == spanID {
			out += seg.Primary
			continue
		}
		out += seg.Secondary
	}
	return denormalize(out)
}
