package tui

import (
	"unicode/utf8"

	"github.com/fsmiamoto/binderclip/internal/input"
	"github.com/fsmiamoto/binderclip/internal/reflow"
)

// Editing operations work on the display text, soft break markers
// included. Deleting never removes a marker on its own: the key acts on
// the nearest real character and the next frame rewraps.

func insertText(doc reflow.Document, s string) reflow.Document {
	ins := []rune(input.Clean(s))
	if len(ins) == 0 {
		return doc
	}
	runes := []rune(doc.Text)
	c := clamp(doc.Cursor, 0, len(runes))

	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:c]...)
	out = append(out, ins...)
	out = append(out, runes[c:]...)
	return reflow.Document{Text: string(out), Cursor: c + len(ins)}
}

func backspace(doc reflow.Document) (reflow.Document, bool) {
	runes := []rune(doc.Text)
	i := clamp(doc.Cursor, 0, len(runes)) - 1
	for i >= 0 && runes[i] == reflow.SoftBreak {
		i--
	}
	if i < 0 {
		return doc, false
	}
	return reflow.Document{Text: string(removeRune(runes, i)), Cursor: i}, true
}

func deleteForward(doc reflow.Document) (reflow.Document, bool) {
	runes := []rune(doc.Text)
	c := clamp(doc.Cursor, 0, len(runes))
	i := c
	for i < len(runes) && runes[i] == reflow.SoftBreak {
		i++
	}
	if i >= len(runes) {
		return doc, false
	}
	return reflow.Document{Text: string(removeRune(runes, i)), Cursor: c}, true
}

func removeRune(runes []rune, i int) []rune {
	out := make([]rune, 0, len(runes)-1)
	out = append(out, runes[:i]...)
	return append(out, runes[i+1:]...)
}

// moveHorizontal steps the caret by delta runes. Crossing a soft break
// passes through the end of the upper line, which is a distinct caret
// position on screen.
func moveHorizontal(doc reflow.Document, delta int) reflow.Document {
	n := utf8.RuneCountInString(doc.Text)
	doc.Cursor = clamp(doc.Cursor+delta, 0, n)
	return doc
}

// moveVertical moves the caret delta display lines, keeping the column
// where the target line is long enough.
func moveVertical(doc reflow.Document, layout reflow.Layout, delta int) reflow.Document {
	if len(layout) == 0 {
		return doc
	}
	line, col := caretPos(layout, doc.Cursor)
	target := clamp(line+delta, 0, len(layout)-1)
	if target == line {
		if delta < 0 {
			col = 0
		} else if delta > 0 {
			col = utf8.RuneCountInString(layout[line].Text)
		}
	}
	doc.Cursor = offsetOf(layout, target, col)
	return doc
}

func moveLineStart(doc reflow.Document, layout reflow.Layout) reflow.Document {
	line, _ := caretPos(layout, doc.Cursor)
	doc.Cursor = offsetOf(layout, line, 0)
	return doc
}

func moveLineEnd(doc reflow.Document, layout reflow.Layout) reflow.Document {
	line, _ := caretPos(layout, doc.Cursor)
	doc.Cursor = offsetOf(layout, line, utf8.RuneCountInString(layout[line].Text))
	return doc
}

// caretPos locates a display offset as a line index and a rune column.
// An offset just before a soft break marker sits at the end of the upper
// line; just after it, at column 0 of the lower one.
func caretPos(layout reflow.Layout, cursor int) (line, col int) {
	pos := 0
	for i, l := range layout {
		n := utf8.RuneCountInString(l.Text)
		if cursor <= pos+n || l.Break == reflow.BreakEnd {
			return i, clamp(cursor-pos, 0, n)
		}
		pos += n + 1
	}
	if len(layout) == 0 {
		return 0, 0
	}
	last := len(layout) - 1
	return last, utf8.RuneCountInString(layout[last].Text)
}

// offsetOf is the inverse of caretPos; col is clamped to the line length.
func offsetOf(layout reflow.Layout, line, col int) int {
	pos := 0
	for i, l := range layout {
		n := utf8.RuneCountInString(l.Text)
		if i == line {
			return pos + clamp(col, 0, n)
		}
		pos += n + 1
	}
	return pos
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
