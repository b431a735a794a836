package components

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// PhaseProgress renders the breathing phase: instruction, indicator, how far
// through the phase the user is, and the cycle counter.
type PhaseProgress struct {
	bar     progress.Model
	palette Palette
}

// NewPhaseProgress creates a phase progress bar of the given width.
func NewPhaseProgress(width int, p Palette) PhaseProgress {
	var bar progress.Model
	if p.Colorless {
		bar = progress.New(progress.WithoutPercentage(), progress.WithSolidFill(""))
		bar.Full = '#'
		bar.Empty = '.'
	} else {
		bar = progress.New(progress.WithoutPercentage(), progress.WithGradient(p.GradientFrom, p.GradientTo))
	}
	bar.Width = width
	return PhaseProgress{bar: bar, palette: p}
}

// PhaseView is what one frame of the breathing exercise shows.
type PhaseView struct {
	Instruction string
	Indicator   string
	CycleLabel  string
	// Ratio is the elapsed share of the phase in [0,1].
	Ratio float64
}

// View renders the phase frame.
func (p PhaseProgress) View(v PhaseView) string {
	ratio := math.Max(0, math.Min(1, v.Ratio))

	instruction := lipgloss.NewStyle().Bold(true).Foreground(p.palette.Primary).Render(v.Instruction)
	lines := []string{instruction}
	if v.Indicator != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(p.palette.Accent).Render(indicatorGlyph(v.Indicator)+" "+v.Indicator))
	}
	lines = append(lines,
		p.bar.ViewAs(ratio),
		lipgloss.NewStyle().Foreground(p.palette.Muted).Render(v.CycleLabel),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func indicatorGlyph(indicator string) string {
	switch indicator {
	case "breathe-in":
		return "◯→●"
	case "breathe-out":
		return "●→◯"
	default:
		return "●"
	}
}
