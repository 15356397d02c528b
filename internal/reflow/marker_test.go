package reflow

import (
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	got := Decode("ab \uE000cd\nef\n")
	want := Layout{
		{Text: "ab ", Break: BreakSoft},
		{Text: "cd", Break: BreakHard},
		{Text: "ef", Break: BreakHard},
		{Text: "", Break: BreakEnd},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Decode() = %+v, want %+v", got, want)
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for _, text := range []string{
		"",
		"\n",
		"plain",
		"one \uE000two \uE000three\nfour",
		"\uE000leading marker",
		"trailing marker \uE000",
		"мир \uE000다람쥐\n\nいろは",
	} {
		if got := Decode(text).Encode(); got != text {
			t.Errorf("Decode(%q).Encode() = %q", text, got)
		}
	}
}

func TestParagraphs(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{""}},
		{text: "a \uE000b", want: []string{"a b"}},
		{text: "a \uE000b\nc \uE000d \uE000e", want: []string{"a b", "c d e"}},
		{text: "a\n\nb", want: []string{"a", "", "b"}},
		{text: "a \uE000", want: []string{"a "}},
	}

	for _, tc := range cases {
		if got := Decode(tc.text).Paragraphs(); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Paragraphs(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestCollapse(t *testing.T) {
	if got, want := Collapse("a \uE000b  \uE000c\nd"), "a b  c\nd"; got != want {
		t.Fatalf("Collapse() = %q, want %q", got, want)
	}
	if got := Collapse("untouched"); got != "untouched" {
		t.Fatalf("Collapse() = %q", got)
	}
}

func TestCollapseInvertsWrap(t *testing.T) {
	para := "the quick  brown\tfox jumps over the lazy dog"
	for budget := 1; budget < 20; budget++ {
		text := Build([]string{para}, budget).Encode()
		if got := Collapse(text); got != para {
			t.Fatalf("budget %d: Collapse(%q) = %q", budget, text, got)
		}
	}
}

func TestHardBreaks(t *testing.T) {
	if got := Decode("a\uE000b\nc\n\nd").HardBreaks(); got != 3 {
		t.Fatalf("HardBreaks() = %d, want 3", got)
	}
}

func TestVisibleLen(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "abc", want: 3},
		{in: "abc   ", want: 3},
		{in: "  abc", want: 5},
		{in: "abc\t", want: 3},
		{in: "abc\u00A0", want: 4},
		{in: "мир ", want: 3},
	}
	for _, tc := range cases {
		if got := VisibleLen(tc.in); got != tc.want {
			t.Errorf("VisibleLen(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestBreakKindString(t *testing.T) {
	for kind, want := range map[BreakKind]string{BreakEnd: "end", BreakSoft: "soft", BreakHard: "hard"} {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
