// Package textdiff computes word-level diffs between two optional text values (the "primary" and "secondary" sides of a reviewed cell pair) and renders
// each side with inline change markup.
//
// Representation: Compare returns a Diff holding both input Values, a derived Status, and — when the full alignment pipeline ran — an ordered slice of
// Segments that, when concatenated per side, reconstruct each side's normalized text. Each Segment has an Op:
//   - OpEqual: unchanged region (Primary == Secondary)
//   - OpInsert: text present only on the secondary side (Primary == "")
//   - OpDelete: text present only on the primary side (Secondary == "")
//   - OpReplace: text changed on both sides
//
// Invariants:
//   - concat(Segments.Primary) == normalized primary text
//   - concat(Segments.Secondary) == normalized secondary text
//   - Non-equal segments carry a deterministic ID; equal segments have ID == "".
//
// Identifiers: span IDs are a pure function of the opcode sequence. Comparing the same two values twice yields identical IDs in identical order, so a
// caller can hold an ID across requests and later pass it to ApplySpan without any server-side session.
//
// Normalization: a missing Value is tracked separately from the empty string until rendering. Line endings (\r\n, \r, \n) are unified and substituted
// with an internal marker token (" ¶ ") before tokenization so that line boundaries never merge into adjacent words during alignment. The marker is
// converted back on the way out: to <br> in HTML output, to \n in merged text.
//
// Tokenization splits on whitespace boundaries while keeping whitespace runs as tokens, so token concatenation is lossless. Alignment uses a
// Ratcliff/Obershelp sequence matcher with the frequency-based autojunk heuristic disabled: short repeated words are common in this domain and must not
// be discounted as noise.
//
// All operations are pure and stateless; concurrent use needs no locking.
package textdiff
