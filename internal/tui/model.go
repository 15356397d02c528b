// Package tui is the interactive editing surface: a Bubble Tea program
// whose every update is one frame of the reflow loop.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fsmiamoto/binderclip/internal/help"
	"github.com/fsmiamoto/binderclip/internal/journal"
	"github.com/fsmiamoto/binderclip/internal/reflow"
)

// panelInsetCells is the horizontal space the panel border and padding
// take from the terminal width.
const panelInsetCells = 4

// chromeRows is the header, the status bar and the panel border.
const chromeRows = 4

// WindowProps is the host window state. It belongs to the shell; the reflow
// core only ever sees the wrap context derived from it.
type WindowProps struct {
	AlwaysOnTop  bool
	FontSize     int
	PanelWidthPx int
}

// WrapContext derives the reflow parameters from the window.
func (p WindowProps) WrapContext() reflow.WrapContext {
	return reflow.WrapContext{WidthPx: p.PanelWidthPx, FontSizePx: p.FontSize}
}

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
)

// Options configures a new Model.
type Options struct {
	Text        string
	Props       WindowProps
	FontRange   reflow.FontRange
	CellWidthPx float64
	Journal     *journal.Session
	Log         io.Writer // diagnostics; the terminal is owned by the TUI
	Clipboard   Clipboard
	Version     string
}

// Model is the Bubble Tea model for the editor.
type Model struct {
	doc     reflow.Document
	layout  reflow.Layout
	budget  int
	trigger reflow.Trigger

	props       WindowProps
	fontRange   reflow.FontRange
	cellWidthPx float64

	keys     KeyMap
	viewport viewport.Model
	helpText string
	helpView help.Renderer
	showHelp bool

	journal *journal.Session
	log     io.Writer
	clip    Clipboard

	width  int
	height int

	status      string
	statusLevel statusLevel
	quitting    bool
}

// NewModel creates an editor holding text with the caret at its end.
func NewModel(opts Options) *Model {
	if opts.CellWidthPx < 1 {
		opts.CellWidthPx = 1
	}
	if opts.Log == nil {
		opts.Log = io.Discard
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}
	text := reflow.Collapse(opts.Text)

	m := &Model{
		doc:         reflow.Document{Text: text, Cursor: len([]rune(text))},
		props:       opts.Props,
		fontRange:   opts.FontRange,
		cellWidthPx: opts.CellWidthPx,
		keys:        DefaultKeyMap(),
		viewport:    viewport.New(0, 0),
		journal:     opts.Journal,
		log:         opts.Log,
		clip:        opts.Clipboard,
		status:      "F1 for help.",
	}
	m.layout = reflow.Decode(m.doc.Text)

	journalDir := ""
	if opts.Journal != nil {
		journalDir = opts.Journal.Dir
	}
	md, err := help.Build(help.Data{
		Version:    opts.Version,
		Bindings:   m.keys.HelpBindings(),
		MinFont:    opts.FontRange.Min,
		MaxFont:    opts.FontRange.Max,
		StartFont:  opts.Props.FontSize,
		JournalDir: journalDir,
	})
	if err != nil {
		m.logf("warning: build help: %v", err)
	}
	m.helpText = md
	return m
}

// Document returns the current editing surface content.
func (m *Model) Document() reflow.Document { return m.doc }

// Props returns the current window state.
func (m *Model) Props() WindowProps { return m.props }

func (m *Model) logf(format string, args ...any) {
	fmt.Fprintf(m.log, format+"\n", args...)
}

func (m *Model) setStatus(level statusLevel, format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusLevel = level
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. Input is applied first; the reflow frame
// runs last so that a resize, a font change and an edit arriving in the
// same message are wrapped once against the final state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}

	m.props = m.frame(m.props)
	m.refreshViewport()
	return m, cmd
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cells := max(1, w-panelInsetCells)
	m.viewport.Width = cells
	m.viewport.Height = max(1, h-chromeRows)

	widthPx := reflow.WidthPx(float64(cells) * m.cellWidthPx)
	if widthPx != m.props.PanelWidthPx {
		m.props.PanelWidthPx = widthPx
		m.record(journal.Event{Kind: journal.KindResize, WidthPx: widthPx, FontSize: m.props.FontSize})
	}
}

// frame is one iteration of the reflow loop: check staleness, plan, commit.
func (m *Model) frame(props WindowProps) WindowProps {
	ctx := props.WrapContext()
	if ctx.WidthPx <= 0 {
		// No size yet; wrapping against zero width would put every word on
		// its own line for a frame.
		return props
	}
	res, ran := m.trigger.Frame(ctx, m.doc, func(d reflow.Document) { m.doc = d })
	if !ran {
		return props
	}
	m.layout, m.budget = res.Layout, res.Budget
	m.record(journal.Event{
		Kind:       journal.KindReflow,
		WidthPx:    ctx.WidthPx,
		FontSize:   ctx.FontSizePx,
		Budget:     res.Budget,
		Lines:      len(res.Layout),
		SoftBreaks: len(res.Layout) - 1 - res.Layout.HardBreaks(),
		Cursor:     res.Doc.Cursor,
	})
	return props
}

func (m *Model) record(ev journal.Event) {
	if err := m.journal.Record(ev); err != nil {
		m.logf("warning: journal: %v", err)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.CloseHelp):
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.FontUp):
		m.stepFont(1)
	case key.Matches(msg, m.keys.FontDown):
		m.stepFont(-1)
	case key.Matches(msg, m.keys.ToggleOnTop):
		m.toggleOnTop()
	case key.Matches(msg, m.keys.Copy):
		m.copyText()
	case key.Matches(msg, m.keys.Paste):
		m.pasteText()
	case key.Matches(msg, m.keys.Rewrap):
		m.trigger.Invalidate()

	case key.Matches(msg, m.keys.Left):
		m.doc = moveHorizontal(m.doc, -1)
	case key.Matches(msg, m.keys.Right):
		m.doc = moveHorizontal(m.doc, 1)
	case key.Matches(msg, m.keys.Up):
		m.doc = moveVertical(m.doc, m.layout, -1)
	case key.Matches(msg, m.keys.Down):
		m.doc = moveVertical(m.doc, m.layout, 1)
	case key.Matches(msg, m.keys.PageUp):
		m.doc = moveVertical(m.doc, m.layout, -m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.doc = moveVertical(m.doc, m.layout, m.viewport.Height)
	case key.Matches(msg, m.keys.LineStart):
		m.doc = moveLineStart(m.doc, m.layout)
	case key.Matches(msg, m.keys.LineEnd):
		m.doc = moveLineEnd(m.doc, m.layout)
	case key.Matches(msg, m.keys.DocStart):
		m.doc.Cursor = 0
	case key.Matches(msg, m.keys.DocEnd):
		m.doc.Cursor = len([]rune(m.doc.Text))

	case key.Matches(msg, m.keys.Backspace):
		m.edit(backspace(m.doc))
	case key.Matches(msg, m.keys.Delete):
		m.edit(deleteForward(m.doc))
	case key.Matches(msg, m.keys.Newline):
		m.edit(insertText(m.doc, "\n"), true)
	case key.Matches(msg, m.keys.Tab):
		m.edit(insertText(m.doc, "\t"), true)

	case (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !msg.Alt:
		m.edit(insertText(m.doc, string(msg.Runes)), len(msg.Runes) > 0)
	}
	return nil
}

// edit installs doc as a user edit when changed is true.
func (m *Model) edit(doc reflow.Document, changed bool) {
	if !changed {
		return
	}
	m.doc = doc
	m.trigger.NoteEdit()
	// Keep the layout usable for caret movement until the frame rewraps.
	m.layout = reflow.Decode(m.doc.Text)
}

func (m *Model) stepFont(delta int) {
	size, ok := reflow.StepFontSize(m.props.FontSize, delta, m.fontRange)
	if !ok {
		return
	}
	m.props.FontSize = size
	m.record(journal.Event{Kind: journal.KindFont, FontSize: size, WidthPx: m.props.PanelWidthPx})
}

func (m *Model) toggleOnTop() {
	m.props.AlwaysOnTop = !m.props.AlwaysOnTop
	state := "off"
	if m.props.AlwaysOnTop {
		state = "on"
	}
	m.setStatus(statusInfo, "Always on top: %s", state)
	m.record(journal.Event{Kind: journal.KindWindow, Detail: "always_on_top=" + state})
}

func (m *Model) copyText() {
	text := reflow.Collapse(m.doc.Text)
	if err := m.clip.WriteAll(text); err != nil {
		m.setStatus(statusError, "Copy failed: %v", err)
		m.logf("warning: clipboard write: %v", err)
		return
	}
	m.setStatus(statusInfo, "Copied %d characters.", len([]rune(text)))
	m.record(journal.Event{Kind: journal.KindCopy, Cursor: m.doc.Cursor})
}

func (m *Model) pasteText() {
	text, err := m.clip.ReadAll()
	if err != nil {
		m.setStatus(statusError, "Paste failed: %v", err)
		m.logf("warning: clipboard read: %v", err)
		return
	}
	if text == "" {
		return
	}
	m.edit(insertText(m.doc, text), true)
	m.record(journal.Event{Kind: journal.KindPaste, Cursor: m.doc.Cursor})
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.doc = moveVertical(m.doc, m.layout, -3)
		return nil
	case tea.MouseButtonWheelDown:
		m.doc = moveVertical(m.doc, m.layout, 3)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}
	if msg.Y != 0 {
		return nil
	}
	for _, b := range m.headerButtons() {
		if msg.X < b.x0 || msg.X >= b.x1 {
			continue
		}
		switch b.action {
		case actionFontDown:
			m.stepFont(-1)
		case actionFontUp:
			m.stepFont(1)
		case actionOnTop:
			m.toggleOnTop()
		case actionQuit:
			return m.quit()
		}
	}
	return nil
}

// refreshViewport re-renders the document and scrolls the caret line into
// view.
func (m *Model) refreshViewport() {
	line, _ := caretPos(m.layout, m.doc.Cursor)
	m.viewport.SetContent(m.renderDocument())

	h := m.viewport.Height
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if line < y {
		m.viewport.SetYOffset(line)
	} else if line >= y+h {
		m.viewport.SetYOffset(line - h + 1)
	}
}

// Close finalizes the journal with the document as it stands.
func (m *Model) Close() error {
	status := "closed"
	if !m.quitting {
		status = "interrupted"
	}
	chars := len([]rune(reflow.Collapse(m.doc.Text)))
	return m.journal.Close(status, m.props.FontSize, chars)
}
