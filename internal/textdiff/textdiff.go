package textdiff

// Op is an operation from the primary text to the secondary text.
type Op int

// Operations from primary text to secondary text.
const (
	OpEqual Op = iota
	OpReplace
	OpInsert
	OpDelete
)

// String returns the lower-case tag for op. It is also the tag embedded in span identifiers.
func (op Op) String() string {
	switch op {
	case OpEqual:
		return "equal"
	case OpReplace:
		return "replace"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Value is one cell of text: either a string or explicitly missing. Missing is distinct from the empty string and stays distinct through the whole
// pipeline (an empty cell and an absent cell diff differently against a missing counterpart: empty-vs-missing is Same only when both are missing).
type Value struct {
	text    string
	present bool
}

// String returns a present Value holding s.
func String(s string) Value {
	return Value{text: s, present: true}
}

// Missing returns an absent Value.
func Missing() Value {
	return Value{}
}

// Present reports whether v holds a string (possibly empty).
func (v Value) Present() bool {
	return v.present
}

// Text returns v's string, or "" when v is missing.
func (v Value) Text() string {
	return v.text
}

// Status is the derived comparison outcome. It is computed per call and never stored.
type Status int

const (
	StatusSame Status = iota
	StatusDifferent
)

// String returns "same" or "different".
func (s Status) String() string {
	if s == StatusSame {
		return "same"
	}
	return "different"
}

// Segment is one aligned region of the two token sequences. Primary and Secondary are the reconstructed text fragments (in normalized, marker form) for
// each side; either may be empty for pure inserts/deletes. Non-equal segments carry a deterministic ID.
type Segment struct {
	Op        Op
	ID        string // stable span identifier; "" when Op == OpEqual
	Primary   string // concatenated primary-side tokens; "" for OpInsert
	Secondary string // concatenated secondary-side tokens; "" for OpDelete
}

// Diff is the result of comparing two Values.
//
// Segments is nil unless the full alignment pipeline ran: when both sides are present and differ. The shortcut cases (both missing, one side missing,
// byte-equal inputs) are rendered directly from the Values.
type Diff struct {
	Primary   Value
	Secondary Value
	Status    Status
	Segments  []Segment
}

// Spans returns the changed (non-equal) segments in order. For a one-side-missing Diff it returns the single whole-text insert or delete segment; for a
// Same Diff it returns nil.
func (d Diff) Spans() []Segment {
	var spans []Segment
	if d.Segments == nil {
		if d.Status == StatusSame {
			return nil
		}
		// One side missing: the present side is a single whole-text change.
		if !d.Primary.Present() {
			return []Segment{{Op: OpInsert, Secondary: d.Secondary.Text()}}
		}
		return []Segment{{Op: OpDelete, Primary: d.Primary.Text()}}
	}
	for _, seg := range d.Segments {
		if seg.Op != OpEqual {
			spans = append(spans, seg)
		}
	}
	return spans
}
