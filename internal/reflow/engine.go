package reflow

// Document is the text of the editing surface and its caret. Text is
// in-band: display lines separated by SoftBreak and LF. Cursor is a rune
// offset into Text.
type Document struct {
	Text   string
	Cursor int
}

// Result is the outcome of planning a reflow.
type Result struct {
	Doc    Document
	Layout Layout
	Budget int
}

// Reflow rewraps doc for the given panel width and font size and returns
// the new text with the caret moved to the same logical character.
func Reflow(doc Document, widthPx, fontSizePx int) Document {
	return Plan(doc, WrapContext{WidthPx: widthPx, FontSizePx: fontSizePx}).Doc
}

// Plan computes a reflow without touching any state. It is the first half
// of the plan/commit protocol used by Trigger.
func Plan(doc Document, ctx WrapContext) Result {
	runes := []rune(doc.Text)
	norm, cursor := normalizeRunes(runes, clampCursor(doc.Cursor, len(runes)))
	text := string(norm)

	anchor := AnchorAt(text, cursor)
	budget := ctx.Budget()
	layout := Build(Decode(text).Paragraphs(), budget)

	return Result{
		Doc: Document{
			Text:   layout.Encode(),
			Cursor: anchor.Resolve(layout),
		},
		Layout: layout,
		Budget: budget,
	}
}
