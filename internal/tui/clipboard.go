package tui

import "github.com/atotto/clipboard"

// Clipboard is the system clipboard as seen by the editor.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the host clipboard (xclip/xsel/wl-clipboard on
// Linux, pbcopy on macOS).
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }
