package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/fsmiamoto/binderclip/internal/help"
)

// KeyMap holds the editor's non-text bindings. Any other printable key is
// inserted into the document.
type KeyMap struct {
	Quit        key.Binding
	Help        key.Binding
	CloseHelp   key.Binding
	FontUp      key.Binding
	FontDown    key.Binding
	ToggleOnTop key.Binding
	Copy        key.Binding
	Paste       key.Binding
	Rewrap      key.Binding

	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	LineStart key.Binding
	LineEnd   key.Binding
	DocStart  key.Binding
	DocEnd    key.Binding
	PageUp    key.Binding
	PageDown  key.Binding

	Backspace key.Binding
	Delete    key.Binding
	Newline   key.Binding
	Tab       key.Binding
}

// DefaultKeyMap returns the built-in bindings. Font and window actions use
// modifiers so that plain "+" and "-" stay typeable.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Help:        key.NewBinding(key.WithKeys("f1", "alt+h"), key.WithHelp("f1", "toggle help")),
		CloseHelp:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help")),
		FontUp:      key.NewBinding(key.WithKeys("alt+=", "alt++", "ctrl+up"), key.WithHelp("alt+=", "larger font")),
		FontDown:    key.NewBinding(key.WithKeys("alt+-", "ctrl+down"), key.WithHelp("alt+-", "smaller font")),
		ToggleOnTop: key.NewBinding(key.WithKeys("alt+t", "f2"), key.WithHelp("alt+t", "toggle always on top")),
		Copy:        key.NewBinding(key.WithKeys("alt+c", "ctrl+y"), key.WithHelp("alt+c", "copy text")),
		Paste:       key.NewBinding(key.WithKeys("ctrl+v", "alt+v"), key.WithHelp("ctrl+v", "paste")),
		Rewrap:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "rewrap now")),

		Left:      key.NewBinding(key.WithKeys("left", "ctrl+b")),
		Right:     key.NewBinding(key.WithKeys("right", "ctrl+f")),
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n")),
		LineStart: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		LineEnd:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart:  key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:    key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		Newline:   key.NewBinding(key.WithKeys("enter", "ctrl+m"), key.WithHelp("enter", "hard line break")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),
	}
}

// HelpBindings lists the documented bindings for the help overlay.
func (k KeyMap) HelpBindings() []help.Binding {
	var out []help.Binding
	for _, b := range []key.Binding{
		k.Newline, k.Tab, k.FontUp, k.FontDown, k.ToggleOnTop, k.Copy, k.Paste, k.Rewrap,
		k.LineStart, k.LineEnd, k.DocStart, k.DocEnd, k.PageUp, k.PageDown,
		k.Help, k.CloseHelp, k.Quit,
	} {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		out = append(out, help.Binding{Keys: h.Key, Desc: h.Desc})
	}
	return out
}
