package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/relax/internal/tui/components"
)

// styles are rebuilt whenever the theme changes.
type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	status  lipgloss.Style
	link    lipgloss.Style
	spinner lipgloss.Style
	faded   lipgloss.Style
	card    components.CardStyle
	warning components.CardStyle
	help    help.Styles
}

func newStyles(p components.Palette) styles {
	h := help.New().Styles
	h.ShortKey = lipgloss.NewStyle().Foreground(p.Primary)
	h.ShortDesc = lipgloss.NewStyle().Foreground(p.Muted)
	h.ShortSeparator = lipgloss.NewStyle().Foreground(p.Border)
	h.FullKey = h.ShortKey
	h.FullDesc = h.ShortDesc
	h.FullSeparator = h.ShortSeparator

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			PaddingLeft(1),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		status:  lipgloss.NewStyle().Italic(true).Foreground(p.Success),
		link:    lipgloss.NewStyle().Foreground(p.Primary).Underline(true),
		spinner: lipgloss.NewStyle().Foreground(p.Accent),
		faded:   lipgloss.NewStyle().Faint(true),
		card:    components.DefaultCardStyle(p),
		warning: components.WarningCardStyle(p),
		help:    h,
	}
}
