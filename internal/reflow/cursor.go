package reflow

import "unicode/utf8"

// Anchor is a caret position that survives soft breaks being added,
// moved or removed. Offset counts runes of the collapsed text before the
// caret. Upstream records that the caret sat at the end of a soft-broken
// line rather than at the start of the next one.
type Anchor struct {
	Offset   int
	Upstream bool
}

// AnchorAt computes the anchor for a caret at rune offset cursor in
// normalized in-band text. The cursor is clamped to the text.
func AnchorAt(text string, cursor int) Anchor {
	if cursor < 0 {
		cursor = 0
	}
	var a Anchor
	i := 0
	for _, r := range text {
		if i == cursor {
			a.Upstream = r == SoftBreak
			return a
		}
		if r != SoftBreak {
			a.Offset++
		}
		i++
	}
	return a
}

// Resolve places the anchor in a layout and returns the rune offset into
// the layout's encoded text.
//
// When the offset falls exactly on a soft break the caret goes after the
// marker, onto the line that received the following word, unless it was
// already at the end of the line before the reflow.
func (a Anchor) Resolve(layout Layout) int {
	pos, logical := 0, 0
	for _, line := range layout {
		n := utf8.RuneCountInString(line.Text)
		end := logical + n
		if a.Offset < end || (a.Offset == end && (line.Break != BreakSoft || a.Upstream)) {
			return pos + a.Offset - logical
		}
		pos += n
		logical = end
		switch line.Break {
		case BreakSoft:
			pos++
		case BreakHard:
			pos++
			logical++
		}
	}
	return pos
}

// clampCursor bounds a rune offset to [0, n].
func clampCursor(cursor, n int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > n {
		return n
	}
	return cursor
}
