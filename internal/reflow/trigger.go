package reflow

import "hash/fnv"

// State remembers what the document was last wrapped against.
type State struct {
	WidthPx     int
	FontSizePx  int
	ContentHash uint64

	valid bool
}

// Valid reports whether the state records a completed wrap.
func (s State) Valid() bool { return s.valid }

// HashContent fingerprints document text for staleness checks.
func HashContent(content string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(content))
	return h.Sum64()
}

// IsDirty reports whether content needs wrapping under ctx given the last
// recorded state. Width, font size and content are compared independently.
func IsDirty(last State, ctx WrapContext, content string) bool {
	if !last.valid {
		return true
	}
	if last.WidthPx != ctx.WidthPx || last.FontSizePx != ctx.FontSizePx {
		return true
	}
	return last.ContentHash != HashContent(content)
}

// Trigger decides once per frame whether to reflow, and guards the commit
// step against the edit notifications it causes itself.
type Trigger struct {
	state      State
	edited     bool
	committing bool
}

// State returns the last committed wrap state.
func (t *Trigger) State() State { return t.state }

// NoteEdit marks the document as changed by the user. Calls made while a
// commit is replacing the document are ignored.
func (t *Trigger) NoteEdit() {
	if t.committing {
		return
	}
	t.edited = true
}

// Dirty reports whether the document must be rewrapped under ctx.
func (t *Trigger) Dirty(ctx WrapContext, content string) bool {
	return t.edited || IsDirty(t.state, ctx, content)
}

// Commit hands the planned document to replace and records the new state.
// replace runs with edit notifications suppressed.
func (t *Trigger) Commit(ctx WrapContext, res Result, replace func(Document)) {
	t.committing = true
	defer func() { t.committing = false }()

	replace(res.Doc)
	t.state = State{
		WidthPx:     ctx.WidthPx,
		FontSizePx:  ctx.FontSizePx,
		ContentHash: HashContent(res.Doc.Text),
		valid:       true,
	}
	t.edited = false
}

// Frame runs the staleness check and, when dirty, plans and commits a
// reflow of doc. It returns the plan and whether a reflow happened.
func (t *Trigger) Frame(ctx WrapContext, doc Document, replace func(Document)) (Result, bool) {
	if !t.Dirty(ctx, doc.Text) {
		return Result{}, false
	}
	res := Plan(doc, ctx)
	t.Commit(ctx, res, replace)
	return res, true
}

// Invalidate forgets the last wrap so the next frame reflows.
func (t *Trigger) Invalidate() {
	t.state = State{}
}
