package components

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors every component draws with.
type Palette struct {
	Primary lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Muted   lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Danger  lipgloss.TerminalColor
	// Gradient endpoints for the breathing progress bar.
	GradientFrom string
	GradientTo   string
	// Colorless is set when nothing may be colored.
	Colorless bool
}

// LightPalette suits light terminal backgrounds.
func LightPalette() Palette {
	return Palette{
		Primary:      lipgloss.Color("#2563EB"),
		Accent:       lipgloss.Color("#7C3AED"),
		Text:         lipgloss.Color("#1E293B"),
		Muted:        lipgloss.Color("#64748B"),
		Border:       lipgloss.Color("#CBD5E1"),
		Success:      lipgloss.Color("#15803D"),
		Warning:      lipgloss.Color("#B45309"),
		Danger:       lipgloss.Color("#B91C1C"),
		GradientFrom: "#93C5FD",
		GradientTo:   "#2563EB",
	}
}

// DarkPalette suits dark terminal backgrounds.
func DarkPalette() Palette {
	return Palette{
		Primary:      lipgloss.Color("#60A5FA"),
		Accent:       lipgloss.Color("#C4B5FD"),
		Text:         lipgloss.Color("#E2E8F0"),
		Muted:        lipgloss.Color("#94A3B8"),
		Border:       lipgloss.Color("#475569"),
		Success:      lipgloss.Color("#4ADE80"),
		Warning:      lipgloss.Color("#FBBF24"),
		Danger:       lipgloss.Color("#F87171"),
		GradientFrom: "#1E3A8A",
		GradientTo:   "#60A5FA",
	}
}

// ColorlessPalette draws everything in the terminal's default colors.
func ColorlessPalette() Palette {
	none := lipgloss.NoColor{}
	return Palette{
		Primary:   none,
		Accent:    none,
		Text:      none,
		Muted:     none,
		Border:    none,
		Success:   none,
		Warning:   none,
		Danger:    none,
		Colorless: true,
	}
}

// PaletteFor picks a palette. colorless wins over dark.
func PaletteFor(dark, colorless bool) Palette {
	switch {
	case colorless:
		return ColorlessPalette()
	case dark:
		return DarkPalette()
	default:
		return LightPalette()
	}
}
