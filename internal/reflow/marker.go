package reflow

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SoftBreak is the in-band rune that ends a display line inside a
// paragraph. Hard breaks are plain LF.
const SoftBreak = '\uE000'

// BreakKind tags the boundary that follows a display line.
type BreakKind uint8

const (
	BreakEnd  BreakKind = iota // last line of the document
	BreakSoft                  // inserted by wrapping
	BreakHard                  // authored by the user
)

func (k BreakKind) String() string {
	switch k {
	case BreakSoft:
		return "soft"
	case BreakHard:
		return "hard"
	default:
		return "end"
	}
}

// rune returns the in-band encoding of k, or 0 for BreakEnd.
func (k BreakKind) rune() rune {
	switch k {
	case BreakSoft:
		return SoftBreak
	case BreakHard:
		return '\n'
	default:
		return 0
	}
}

// Line is one display line and the kind of break after it.
type Line struct {
	Text  string
	Break BreakKind
}

// Layout is a document split into display lines. The last line always
// carries BreakEnd.
type Layout []Line

// Decode splits in-band text into display lines. Text is expected to be
// normalized; a stray CR is kept as content.
func Decode(text string) Layout {
	var layout Layout
	start := 0
	for i, r := range text {
		var kind BreakKind
		switch r {
		case '\n':
			kind = BreakHard
		case SoftBreak:
			kind = BreakSoft
		default:
			continue
		}
		layout = append(layout, Line{Text: text[start:i], Break: kind})
		start = i + utf8.RuneLen(r)
	}
	return append(layout, Line{Text: text[start:], Break: BreakEnd})
}

// Encode joins the layout back into in-band text.
func (l Layout) Encode() string {
	var b strings.Builder
	for _, line := range l {
		b.WriteString(line.Text)
		if r := line.Break.rune(); r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Paragraphs collapses soft-broken lines back into the logical paragraphs
// the user authored. Soft breaks never consume whitespace, so collapsing is
// plain concatenation.
func (l Layout) Paragraphs() []string {
	paras := make([]string, 0, len(l))
	var cur strings.Builder
	for _, line := range l {
		cur.WriteString(line.Text)
		if line.Break == BreakSoft {
			continue
		}
		paras = append(paras, cur.String())
		cur.Reset()
	}
	return paras
}

// HardBreaks counts the user-authored breaks in the layout.
func (l Layout) HardBreaks() int {
	n := 0
	for _, line := range l {
		if line.Break == BreakHard {
			n++
		}
	}
	return n
}

// Collapse removes every soft break from in-band text.
func Collapse(text string) string {
	if !strings.ContainsRune(text, SoftBreak) {
		return text
	}
	return strings.Map(func(r rune) rune {
		if r == SoftBreak {
			return -1
		}
		return r
	}, text)
}

// VisibleLen is the rune count of s without trailing break whitespace.
// Whitespace left at a soft break does not count against the budget.
func VisibleLen(s string) int {
	return utf8.RuneCountInString(strings.TrimRightFunc(s, isBreakSpace))
}

// isBreakSpace reports whether r separates words for wrapping. No-break
// spaces bind their neighbours into one word.
func isBreakSpace(r rune) bool {
	switch r {
	case '\u00A0', '\u2007', '\u202F':
		return false
	}
	return unicode.IsSpace(r)
}
