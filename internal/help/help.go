package help

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
)

// Binding is one row of the key table.
type Binding struct {
	Keys string
	Desc string
}

// Data is passed into the help template.
type Data struct {
	Version    string
	Bindings   []Binding
	MinFont    int
	MaxFont    int
	StartFont  int
	JournalDir string
}

// Build renders the help template to markdown.
func Build(d Data) (string, error) {
	tmpl, err := template.New("help").Parse(helpTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// Renderer turns markdown into styled terminal output, rebuilding the
// underlying glamour renderer only when the wrap width changes.
type Renderer struct {
	width int
	r     *glamour.TermRenderer
}

// Render renders md at width cells. Falls back to plain text on error.
func (h *Renderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 80
	}
	if h.r == nil || h.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			h.r = nil
			return md
		}
		h.r, h.width = r, width
	}

	out, err := h.r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
