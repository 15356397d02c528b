package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the blue-accent theme.
var (
	ColorAccent = lipgloss.Color("69")  // blue, primary accent
	colorDim    = lipgloss.Color("242") // gray
	colorWarn   = lipgloss.Color("220") // yellow
	colorError  = lipgloss.Color("196") // red
)

// Panel border.
var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorAccent).
	Padding(0, 1)

// Header bar and its buttons.
var (
	headerStyle = lipgloss.NewStyle().
			Background(ColorAccent).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	// buttonActiveStyle marks a toggle that is on.
	buttonActiveStyle = buttonStyle.
				Background(lipgloss.Color("214")).
				Foreground(lipgloss.Color("16")).
				Bold(true)
)

// Status bar styles.
var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237")).
			Padding(0, 1)

	statusSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Background(lipgloss.Color("237"))
)

// caretStyle draws the cell under the caret.
var caretStyle = lipgloss.NewStyle().Reverse(true)

// overflowStyle marks a line clipped at the panel edge.
var overflowStyle = lipgloss.NewStyle().Foreground(colorDim)

func statusStyleFor(level statusLevel) lipgloss.Style {
	switch level {
	case statusWarn:
		return statusBarStyle.Foreground(colorWarn)
	case statusError:
		return statusBarStyle.Foreground(colorError).Bold(true)
	default:
		return statusBarStyle
	}
}
