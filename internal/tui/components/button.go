package components

import "github.com/charmbracelet/lipgloss"

// ButtonOptions is the interactive state of a button.
type ButtonOptions struct {
	Disabled bool
	Focus    bool
}

// Button is a bracketed, focusable label.
type Button struct {
	label   string
	options ButtonOptions
	palette Palette
}

// NewButton creates a button.
func NewButton(label string, p Palette, opts ButtonOptions) *Button {
	return &Button{label: label, options: opts, palette: p}
}

// View renders the button. Focus is marked with a caret so it survives
// colorless output.
func (b *Button) View() string {
	style := lipgloss.NewStyle().Padding(0, 1)
	label := "[ " + b.label + " ]"

	switch {
	case b.options.Disabled:
		style = style.Faint(true).Foreground(b.palette.Muted)
	case b.options.Focus:
		style = style.Bold(true).Foreground(b.palette.Primary).Underline(true)
		label = "▸" + label
	default:
		style = style.Foreground(b.palette.Text)
	}
	return style.Render(label)
}
