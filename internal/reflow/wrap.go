package reflow

import (
	"strings"
	"unicode/utf8"
)

// Wrap soft-wraps a single paragraph at word boundaries so that no line
// holds more than budget visible runes. A word longer than budget is put on
// a line of its own and left whole. The whitespace at each break stays at
// the end of the line it follows, so joining the result gives back the
// paragraph unchanged.
func Wrap(paragraph string, budget int) []string {
	if budget < 1 {
		budget = 1
	}
	if utf8.RuneCountInString(paragraph) <= budget {
		return []string{paragraph}
	}

	var lines []string
	var cur strings.Builder
	curW := 0     // runes up to the end of the last word on the line
	pendingW := 0 // whitespace runes after that word

	for _, tok := range tokenize(paragraph) {
		ww := utf8.RuneCountInString(tok.word)
		if cur.Len() > 0 && curW+pendingW+ww > budget {
			lines = append(lines, cur.String())
			cur.Reset()
			curW, pendingW = 0, 0
		}
		cur.WriteString(tok.word)
		cur.WriteString(tok.space)
		curW += pendingW + ww
		pendingW = utf8.RuneCountInString(tok.space)
	}

	return append(lines, cur.String())
}

// Build wraps every paragraph and tags the boundaries between the
// resulting lines. Paragraph ends become hard breaks, except after the
// last paragraph.
func Build(paragraphs []string, budget int) Layout {
	if len(paragraphs) == 0 {
		paragraphs = []string{""}
	}
	layout := make(Layout, 0, len(paragraphs))
	for i, para := range paragraphs {
		wrapped := Wrap(para, budget)
		for j, text := range wrapped {
			kind := BreakSoft
			if j == len(wrapped)-1 {
				kind = BreakHard
				if i == len(paragraphs)-1 {
					kind = BreakEnd
				}
			}
			layout = append(layout, Line{Text: text, Break: kind})
		}
	}
	return layout
}

// token is a word and the whitespace run that follows it.
type token struct {
	word  string
	space string
}

// tokenize splits a paragraph into words with their trailing whitespace.
// Leading indentation becomes a token with an empty word, so a line can
// break between the indentation and the first word.
func tokenize(p string) []token {
	var toks []token
	start, wordEnd := 0, 0
	inSpace := false

	for i, r := range p {
		sp := isBreakSpace(r)
		switch {
		case sp && !inSpace:
			wordEnd = i
			inSpace = true
		case !sp && inSpace:
			toks = append(toks, token{word: p[start:wordEnd], space: p[wordEnd:i]})
			start = i
			inSpace = false
		}
	}

	if inSpace {
		return append(toks, token{word: p[start:wordEnd], space: p[wordEnd:]})
	}
	return append(toks, token{word: p[start:]})
}
