package textdiff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// opcode is one aligned region over the two token sequences: primary tokens [I1,I2) map onto secondary tokens [J1,J2). Opcodes partition both sequences
// completely and in order (see validate.go).
type opcode struct {
	Op             Op
	I1, I2, J1, J2 int
}

// align computes the opcode sequence between two token sequences with a Ratcliff/Obershelp matcher.
//
// Autojunk stays off: the heuristic discounts tokens occurring in more than 1% of a long sequence, which silently mis-aligns short repeated words. That
// would be a correctness bug here, not a tuning choice.
func align(a, b []string) []opcode {
	m := difflib.NewMatcherWithJunk(a, b, false, nil)

	var ops []opcode
	for _, oc := range m.GetOpCodes() {
		var op Op
		switch oc.Tag {
		case 'e':
			op = OpEqual
		case 'r':
			op = OpReplace
		case 'i':
			op = OpInsert
		case 'd':
			op = OpDelete
		default:
			panic(fmt.Errorf("textdiff: align: unknown opcode tag %q", oc.Tag))
		}
		ops = append(ops, opcode{Op: op, I1: oc.I1, I2: oc.I2, J1: oc.J1, J2: oc.J2})
	}

	if err := validateOpcodes(ops, len(a), len(b)); err != nil {
		panic(fmt.Errorf("textdiff: align: validate failed with %v", err))
	}
	return ops
}

// spanID derives the deterministic identifier for the seq-th non-equal opcode. It encodes the opcode's position and all four range boundaries, so
// identical inputs always yield identical IDs in identical order. Callers treat the result as opaque.
func spanID(seq int, oc opcode) string {
	return fmt.Sprintf("diff-%d-%s-%d.%d-%d.%d", seq, oc.Op, oc.I1, oc.I2, oc.J1, oc.J2)
}

// concatTokens joins tokens[lo:hi].
func concatTokens(tokens []string, lo, hi int) string {
	s := ""
	for _, t := range tokens[lo:hi] {
		s += t
	}
	return s
}
