package textdiff

import "fmt"

// validateOpcodes checks the partition invariant: opcodes cover [0,lenA) and [0,lenB) in order with no gaps or overlaps, and each opcode's ranges are
// consistent with its Op. A violation is an internal-contract failure of the aligner, never a user-facing error.
func validateOpcodes(ops []opcode, lenA, lenB int) error {
	i, j := 0, 0
	for n, oc := range ops {
		if oc.I1 != i || oc.J1 != j {
			return fmt.Errorf("opcode[%d]: starts at (%d,%d), want (%d,%d)", n, oc.I1, oc.J1, i, j)
		}
		if oc.I2 < oc.I1 || oc.J2 < oc.J1 {
			return fmt.Errorf("opcode[%d]: negative range", n)
		}
		switch oc.Op {
		case OpEqual:
			if oc.I2-oc.I1 != oc.J2-oc.J1 || oc.I2 == oc.I1 {
				return fmt.Errorf("opcode[%d]: equal requires equal-length non-empty ranges", n)
			}
		case OpReplace:
			if oc.I2 == oc.I1 || oc.J2 == oc.J1 {
				return fmt.Errorf("opcode[%d]: replace requires non-empty ranges on both sides", n)
			}
		case OpInsert:
			if oc.I2 != oc.I1 || oc.J2 == oc.J1 {
				return fmt.Errorf("opcode[%d]: insert requires empty primary range and non-empty secondary range", n)
			}
		case OpDelete:
			if oc.I2 == oc.I1 || oc.J2 != oc.J1 {
				return fmt.Errorf("opcode[%d]: delete requires non-empty primary range and empty secondary range", n)
			}
		}
		i, j = oc.I2, oc.J2
	}
	if i != lenA || j != lenB {
		return fmt.Errorf("opcodes end at (%d,%d), want (%d,%d)", i, j, lenA, lenB)
	}
	return nil
}

// validate checks the Segment reconstruction invariants against the normalized inputs.
func (d Diff) validate() error {
	if d.Segments == nil {
		return nil
	}
	normP, _ := normalize(d.Primary)
	normS, _ := normalize(d.Secondary)
	var p, s string
	for n, seg := range d.Segments {
		switch seg.Op {
		case OpEqual:
			if seg.Primary != seg.Secondary {
				return fmt.Errorf("segment[%d]: equal requires Primary==Secondary", n)
			}
			if seg.ID != "" {
				return fmt.Errorf("segment[%d]: equal requires empty ID", n)
			}
		case OpInsert:
			if seg.Primary != "" || seg.Secondary == "" {
				return fmt.Errorf("segment[%d]: insert requires Primary==\"\" and Secondary!=\"\"", n)
			}
		case OpDelete:
			if seg.Primary == "" || seg.Secondary != "" {
				return fmt.Errorf("segment[%d]: delete requires Primary!=\"\" and Secondary==\"\"", n)
			}
		case OpReplace:
			if seg.Primary == "" || seg.Secondary == "" {
				return fmt.Errorf("segment[%d]: replace requires both sides non-empty", n)
			}
		}
		if seg.Op != OpEqual && seg.ID == "" {
			return fmt.Errorf("segment[%d]: non-equal segment without ID", n)
		}
		p += seg.Primary
		s += seg.Secondary
	}
	if p != normP {
		return fmt.Errorf("segments do not reconstruct primary text")
	}
	if s != normS {
		return fmt.Errorf("segments do not reconstruct secondary text")
	}
	return nil
}
