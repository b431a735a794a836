package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhaseProgressView(t *testing.T) {
	t.Parallel()

	t.Run("renders instruction indicator and label", func(t *testing.T) {
		t.Parallel()
		p := NewPhaseProgress(20, LightPalette())
		view := p.View(PhaseView{Instruction: "Breathe In", Indicator: "breathe-in", CycleLabel: "Cycle 1 of 3", Ratio: 0.5})
		require.Contains(t, view, "Breathe In")
		require.Contains(t, view, "breathe-in")
		require.Contains(t, view, "Cycle 1 of 3")
	})

	t.Run("omits indicator for rest", func(t *testing.T) {
		t.Parallel()
		p := NewPhaseProgress(20, DarkPalette())
		view := p.View(PhaseView{Instruction: "Rest", CycleLabel: "Cycle 2 of 3"})
		require.Equal(t, 3, len(strings.Split(view, "\n")))
	})

	t.Run("colorless bar uses ascii fill", func(t *testing.T) {
		t.Parallel()
		p := NewPhaseProgress(10, ColorlessPalette())
		view := p.View(PhaseView{Instruction: "Hold", Indicator: "hold", CycleLabel: "Cycle 1 of 3", Ratio: 1.5})
		require.Contains(t, view, "##########")
	})
}
