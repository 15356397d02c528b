package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"
)

type buttonAction int

const (
	actionNone buttonAction = iota
	actionFontDown
	actionFontUp
	actionOnTop
	actionQuit
)

// headerSegment is one piece of the header bar; buttons carry an action
// and the cell range they occupy.
type headerSegment struct {
	text   string
	style  lipgloss.Style
	action buttonAction
	x0, x1 int
}

// headerButtons lays out the header bar. View and the mouse handler share
// it so click targets always match what is drawn.
func (m *Model) headerButtons() []headerSegment {
	onTop := buttonStyle
	if m.props.AlwaysOnTop {
		onTop = buttonActiveStyle
	}
	segs := []headerSegment{
		{text: " binderclip ", style: headerStyle},
		{text: " ", style: headerStyle},
		{text: "-", style: buttonStyle, action: actionFontDown},
		{text: fmt.Sprintf(" Font size: %d ", m.props.FontSize), style: headerStyle},
		{text: "+", style: buttonStyle, action: actionFontUp},
		{text: " ", style: headerStyle},
		{text: "Always on Top", style: onTop, action: actionOnTop},
	}

	x := 0
	for i := range segs {
		w := lipgloss.Width(segs[i].style.Render(segs[i].text))
		segs[i].x0, segs[i].x1 = x, x+w
		x += w
	}

	quit := headerSegment{text: "X", style: buttonStyle, action: actionQuit}
	qw := lipgloss.Width(quit.style.Render(quit.text))
	if m.width-qw > x {
		segs = append(segs, headerSegment{text: strings.Repeat(" ", m.width-qw-x), style: headerStyle, x0: x, x1: m.width - qw})
		x = m.width - qw
	}
	quit.x0, quit.x1 = x, x+qw
	return append(segs, quit)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var header strings.Builder
	for _, s := range m.headerButtons() {
		header.WriteString(s.style.Render(s.text))
	}
	top := ansi.Truncate(header.String(), m.width, "")

	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, top, m.renderHelp(), m.renderStatus())
	}

	body := panelStyle.Width(m.width - 2).Render(m.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, top, body, m.renderStatus())
}

func (m *Model) renderHelp() string {
	rendered := m.helpView.Render(m.helpText, m.width-panelInsetCells)
	lines := strings.Split(rendered, "\n")
	h := max(1, m.height-2)
	if len(lines) > h {
		lines = lines[:h]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, m.width, "…")
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus() string {
	line, col := caretPos(m.layout, m.doc.Cursor)
	budget := "-"
	if m.budget > 0 {
		budget = fmt.Sprint(m.budget)
	}
	sep := statusSepStyle.Render(" | ")

	left := strings.Join([]string{
		fmt.Sprintf("%d px", m.props.PanelWidthPx),
		fmt.Sprintf("%s chars/line", budget),
		fmt.Sprintf("Ln %d, Col %d", line+1, col+1),
	}, sep)
	content := left + sep + statusStyleFor(m.statusLevel).UnsetPadding().Render(m.status)

	inner := max(1, m.width-2)
	return statusBarStyle.Width(m.width).Render(ansi.Truncate(content, inner, "…"))
}

// renderDocument draws every display line, the caret included.
func (m *Model) renderDocument() string {
	caretLine, caretCol := caretPos(m.layout, m.doc.Cursor)
	width := max(1, m.viewport.Width)

	out := make([]string, len(m.layout))
	for i, l := range m.layout {
		col := -1
		if i == caretLine {
			col = caretCol
		}
		out[i] = renderLine(l.Text, col, width)
	}
	return strings.Join(out, "\n")
}

// renderLine fits text into width cells. Lines wider than the panel (an
// overflowing word, or wide runes) are clipped with a marker, unless only
// whitespace is cut off; on the caret
// line the visible window slides so the caret stays on screen. caretCol is
// -1 for lines without the caret.
func renderLine(text string, caretCol, width int) string {
	runes := []rune(strings.ReplaceAll(text, "\t", " "))

	start := 0
	if caretCol >= 0 {
		// Keep the caret cell plus one spare cell for the clip marker.
		used := 1
		start = caretCol
		for start > 0 {
			w := runewidth.RuneWidth(runes[start-1])
			if used+w > width-1 {
				break
			}
			used += w
			start--
		}
	}

	var b strings.Builder
	used := 0
	clipped := false
	for i := start; i < len(runes); i++ {
		r := runes[i]
		w := runewidth.RuneWidth(r)
		if used+w > width {
			// Whitespace left at a soft break may run past the edge.
			clipped = caretCol >= i || strings.TrimLeftFunc(string(runes[i:]), unicode.IsSpace) != ""
			break
		}
		if i == caretCol {
			b.WriteString(caretStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
		used += w
	}
	if caretCol == len(runes) && used < width {
		b.WriteString(caretStyle.Render(" "))
		used++
	}

	s := b.String()
	if clipped {
		// Drop the last cell to make room for the marker.
		s = ansi.Truncate(s, max(0, width-1), "") + overflowStyle.Render("…")
	}
	return s
}
