// Package reflow keeps free-form text confined to a character budget
// derived from panel width and font size. It normalizes line endings,
// inserts and removes soft breaks, and keeps the caret anchored to the
// same logical character across every reflow.
package reflow

// Normalize rewrites CR LF and lone CR line terminators as LF.
// A CR at the very end of s has no following character and is dropped.
func Normalize(s string) string {
	out, _ := normalizeRunes([]rune(s), -1)
	return string(out)
}

// normalizeRunes is Normalize over runes. When cursor is a valid index into
// in, the returned offset is the caret position in the output.
func normalizeRunes(in []rune, cursor int) ([]rune, int) {
	out := make([]rune, 0, len(in))
	pendingCR := false
	mark := -1
	markPending := false

	for i, r := range in {
		if i == cursor {
			mark = len(out)
			markPending = pendingCR
		}
		switch {
		case r == '\r':
			if pendingCR {
				out = append(out, '\n')
			}
			pendingCR = true
		case r == '\n':
			out = append(out, '\n')
			pendingCR = false
		default:
			if pendingCR {
				out = append(out, '\n')
				pendingCR = false
			}
			out = append(out, r)
		}
	}

	if cursor >= len(in) {
		mark = len(out)
	} else if markPending {
		// The CR before the caret was resolved into an LF by the rune at
		// the caret.
		mark++
	}
	return out, mark
}
