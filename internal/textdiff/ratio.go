package textdiff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Ratio returns the character-level similarity of the two values as a percentage in [0,100]. Missing values are treated as empty strings. Autojunk is
// disabled for the same reason as in alignment (see align.go).
//
// Identical values (including two empty or two missing ones) yield 100.
func Ratio(primary, secondary Value) float64 {
	a := strings.Split(primary.Text(), "")
	b := strings.Split(secondary.Text(), "")
	m := difflib.NewMatcherWithJunk(a, b, false, nil)
	return m.Ratio() * 100
}
