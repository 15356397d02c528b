package reflow

import (
	"strings"
	"testing"
	"unicode/utf8"
)

var sampleDocs = []string{
	"",
	"short",
	"abcdefgh ijkl",
	"What is Lorem Ipsum?\r\nLorem Ipsum is simply dummy text of the printing and typesetting industry.\rIt has survived not only five centuries.",
	"first paragraph with several words\n\nthird paragraph after a blank line\n",
	"Съешь же ещё этих мягких французских булок\nда выпей чаю",
	"다람쥐 헌 쳇바퀴에 타고파\r\n키스의 고유조건은 입술끼리 만나야 하고",
	"いろはにほへと ちりぬるを わかよたれそ つねならむ",
	"  indented   line   with   gaps  \n\ttabbed\tline",
	"    ab cd ef",
	"pneumonoultramicroscopicsilicovolcanoconiosis is a word",
	"trailing cr\r",
}

var sampleContexts = []WrapContext{
	{WidthPx: 739, FontSizePx: 18},
	{WidthPx: 200, FontSizePx: 18},
	{WidthPx: 120, FontSizePx: 19},
	{WidthPx: 40, FontSizePx: 10},
	{WidthPx: 16, FontSizePx: 8},
	{WidthPx: 3, FontSizePx: 44},
	{WidthPx: 0, FontSizePx: 1},
}

func TestReflowScenarioOverflowingWord(t *testing.T) {
	ctx := WrapContext{WidthPx: 40, FontSizePx: 10}
	if got := ctx.Budget(); got != 8 {
		t.Fatalf("Budget() = %d, want 8", got)
	}

	got := Reflow(Document{Text: "abcdefgh ijkl"}, 40, 10)
	if want := "abcdefgh \uE000ijkl"; got.Text != want {
		t.Fatalf("Reflow() = %q, want %q", got.Text, want)
	}
	layout := Decode(got.Text)
	if len(layout) != 2 || strings.TrimSpace(layout[0].Text) != "abcdefgh" || layout[1].Text != "ijkl" {
		t.Fatalf("layout = %+v", layout)
	}
	if layout[0].Break != BreakSoft {
		t.Fatalf("first line break = %v, want soft", layout[0].Break)
	}
}

func TestReflowIdempotent(t *testing.T) {
	for _, text := range sampleDocs {
		for _, ctx := range sampleContexts {
			for _, cursor := range []int{0, len([]rune(text)) / 2, len([]rune(text))} {
				once := Plan(Document{Text: text, Cursor: cursor}, ctx).Doc
				twice := Plan(once, ctx).Doc
				if once != twice {
					t.Fatalf("not idempotent for %q at %+v: %+v then %+v", text, ctx, once, twice)
				}
			}
		}
	}
}

func TestReflowPreservesHardBreaks(t *testing.T) {
	for _, text := range sampleDocs {
		want := Decode(Normalize(text)).HardBreaks()
		doc := Document{Text: text}
		for _, ctx := range sampleContexts {
			doc = Plan(doc, ctx).Doc
			if got := Decode(doc.Text).HardBreaks(); got != want {
				t.Fatalf("hard breaks for %q at %+v = %d, want %d", text, ctx, got, want)
			}
		}
	}
}

func TestReflowPreservesContent(t *testing.T) {
	for _, text := range sampleDocs {
		want := Normalize(text)
		doc := Document{Text: text}
		for _, ctx := range sampleContexts {
			doc = Plan(doc, ctx).Doc
			if got := Collapse(doc.Text); got != want {
				t.Fatalf("content changed for %q at %+v: %q", text, ctx, got)
			}
		}
	}
}

func TestReflowRespectsBudget(t *testing.T) {
	for _, text := range sampleDocs {
		for _, ctx := range sampleContexts {
			res := Plan(Document{Text: text}, ctx)
			for _, line := range res.Layout {
				if VisibleLen(line.Text) <= res.Budget {
					continue
				}
				words := strings.FieldsFunc(line.Text, isBreakSpace)
				if len(words) != 1 || utf8.RuneCountInString(words[0]) <= res.Budget {
					t.Fatalf("line %q over budget %d without an overlong word", line.Text, res.Budget)
				}
			}
		}
	}
}

func TestReflowMergesLinesWhenWidening(t *testing.T) {
	narrow := Reflow(Document{Text: "one two three four"}, 20, 10)
	if strings.Count(narrow.Text, string(SoftBreak)) == 0 {
		t.Fatalf("expected soft breaks at narrow width: %q", narrow.Text)
	}
	wide := Reflow(narrow, 1000, 10)
	if wide.Text != "one two three four" {
		t.Fatalf("widening should remove soft breaks, got %q", wide.Text)
	}
}

func TestReflowTypingAtLineEnd(t *testing.T) {
	// Budget 9: typing into "hello wor" pushes the word onto a new line and
	// the caret follows the typed character.
	doc := Reflow(Document{Text: "hello wor", Cursor: 9}, 45, 10)
	if doc.Text != "hello wor" {
		t.Fatalf("unexpected wrap: %q", doc.Text)
	}
	runes := []rune(doc.Text)
	typed := string(runes[:doc.Cursor]) + "l" + string(runes[doc.Cursor:])
	doc = Reflow(Document{Text: typed, Cursor: doc.Cursor + 1}, 45, 10)
	if doc.Text != "hello \uE000worl" {
		t.Fatalf("text = %q", doc.Text)
	}
	if doc.Cursor != len([]rune(doc.Text)) {
		t.Fatalf("cursor = %d, want end", doc.Cursor)
	}
}

func TestReflowClampsCursor(t *testing.T) {
	for _, cursor := range []int{-10, 1000} {
		got := Reflow(Document{Text: "abc", Cursor: cursor}, 100, 10)
		if got.Cursor < 0 || got.Cursor > 3 {
			t.Fatalf("cursor %d resolved out of bounds: %d", cursor, got.Cursor)
		}
	}
}

func TestReflowNormalizesLineEndings(t *testing.T) {
	got := Reflow(Document{Text: "a\r\nb\rc\nd", Cursor: 8}, 1000, 10)
	if got.Text != "a\nb\nc\nd" {
		t.Fatalf("text = %q", got.Text)
	}
	if got.Cursor != 7 {
		t.Fatalf("cursor = %d, want 7", got.Cursor)
	}
}
