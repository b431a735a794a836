package app

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/relax/internal/content"
	"github.com/alexisbeaulieu97/relax/internal/theme"
	"github.com/alexisbeaulieu97/relax/internal/tui/components"
)

// View renders the scrolled page followed by the status and help lines.
func (m Model) View() string {
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.styles.status.Render(m.status) + "\n" + footer
	}
	return m.viewport.View() + "\n" + footer
}

// syncViewport re-renders the page into the viewport and records where the
// relief region starts.
func (m *Model) syncViewport() {
	page, reliefTop := m.layout()
	m.reliefTop = reliefTop
	offset := m.viewport.YOffset
	m.viewport.SetContent(page)
	m.viewport.SetYOffset(offset)
}

func (m Model) layout() (string, int) {
	top := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderQuoteRegion(),
		m.renderControls(),
	)
	return top + "\n\n" + m.renderReliefRegion(), lipgloss.Height(top) + 1
}

func (m Model) renderHeader() string {
	title := m.styles.title.Render("Relax")
	mode := m.styles.muted.Render(m.attrs.Icon + " " + string(m.attrs.DataTheme))
	if m.attrs.Override {
		mode = m.styles.muted.Render("NO_COLOR")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", mode) + "\n"
}

func (m Model) renderQuoteRegion() string {
	var body string
	switch m.quote.Kind {
	case content.KindLoading:
		body = components.NewCard(components.CardData{
			Body:   m.spinner.View() + " " + m.quote.Author,
			Footer: "",
		}, m.styles.card).WithWidth(m.cardWidth()).View()
	case content.KindWarning:
		body = components.NewCard(components.CardData{
			Icon: m.quote.Icon,
			Body: m.quote.Text,
		}, m.styles.warning).WithWidth(m.cardWidth()).View()
	default:
		body = m.quoteView
	}
	if m.quoteFade.active {
		body = m.styles.faded.Render(body)
	}
	return body
}

// renderQuote renders the quote card through glamour. Called when the quote,
// theme or width changes.
func (m *Model) renderQuote() {
	if m.quote.Kind != content.KindQuote {
		m.quoteView = ""
		return
	}

	text := m.quote.Text
	if r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(m.attrs)),
		glamour.WithColorProfile(lipgloss.ColorProfile()),
		glamour.WithWordWrap(m.cardWidth()-4),
	); err == nil {
		if out, err := r.Render("> " + escapeMarkdown(m.quote.Text)); err == nil {
			text = strings.Trim(out, "\n")
		} else {
			m.log.Error(err, "quote render failed")
		}
	}

	m.quoteView = components.NewCard(components.CardData{
		Body:         text,
		Preformatted: true,
		Footer:       "- " + m.quote.Author,
	}, m.styles.card).WithWidth(m.cardWidth()).View()
}

func glamourStyle(attrs theme.Attributes) string {
	switch {
	case attrs.Override:
		return "notty"
	case attrs.DataTheme == theme.Dark:
		return "dark"
	default:
		return "light"
	}
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "[", `\[`, "]", `\]`, "<", `\<`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func (m Model) renderControls() string {
	buttons := make([]string, 0, 4)
	for _, c := range m.controls() {
		if c == controlFeeling || c == controlStartFresh {
			continue
		}
		buttons = append(buttons, m.button(c))
	}
	return strings.Join(buttons, " ")
}

func (m Model) button(c control) string {
	disabled := false
	switch c {
	case controlRelief:
		disabled = m.reliefGate.Disabled()
	case controlRefresh:
		disabled = m.refreshGate.Disabled()
	}
	return components.NewButton(controlLabel(c, m.attrs), m.palette, components.ButtonOptions{
		Disabled: disabled,
		Focus:    m.focus == c,
	}).View()
}

func (m Model) renderReliefRegion() string {
	var body string
	switch m.owner {
	case ownerBreathing:
		body = m.renderBreathing()
	default:
		body = m.renderReliefState()
	}
	if m.reliefFade.active && body != "" {
		body = m.styles.faded.Render(body)
	}
	return body
}

func (m Model) renderReliefState() string {
	state := m.relief
	width := m.cardWidth()

	switch state.Kind {
	case content.KindLoading:
		return components.NewCard(components.CardData{
			Body: m.spinner.View() + " " + state.Text,
		}, m.styles.card).WithWidth(width).View()

	case content.KindWarning:
		return components.NewCard(components.CardData{
			Icon: state.Icon,
			Body: state.Text,
		}, m.styles.warning).WithWidth(width).View()

	case content.KindMedia:
		data := components.CardData{
			Icon:   state.Icon,
			Title:  state.Title,
			Body:   state.Text,
			Detail: m.renderImage(state),
		}
		if state.HasAttribution() {
			data.Badge = content.AttributionText
		}
		return components.NewCard(data, m.styles.card).WithWidth(width).View()

	case content.KindCompletion:
		return components.NewCard(components.CardData{
			Icon:  state.Icon,
			Title: state.Title,
			Body:  state.Text,
			Actions: []string{
				m.feeling.View(),
				"\n" + m.button(controlStartFresh),
			},
		}, m.styles.card).WithWidth(width).View()

	default:
		return m.styles.muted.Render("Feeling overwhelmed? Press s for a moment of calm.")
	}
}

// renderImage links the image; terminals without hyperlink support still see
// the URL.
func (m Model) renderImage(state content.DisplayState) string {
	if m.palette.Colorless {
		return state.ImageAlt + ": " + state.ImageURL
	}
	return m.styles.link.Render(termenv.Hyperlink(state.ImageURL, state.ImageAlt)) + "\n" + m.styles.muted.Render(state.ImageURL)
}

func (m Model) renderBreathing() string {
	phase := m.breath.Phase
	frame := components.NewPhaseProgress(m.cardWidth()-6, m.palette).View(components.PhaseView{
		Instruction: phase.Instruction(),
		Indicator:   phase.Indicator(),
		CycleLabel:  m.breath.Label(),
		Ratio:       m.phaseRatio,
	})
	return components.NewCard(components.CardData{
		Icon:         "◎",
		Title:        "Breathing Exercise",
		Body:         frame,
		Preformatted: true,
		Actions:      []string{m.button(controlStop)},
	}, m.styles.card).WithWidth(m.cardWidth()).View()
}
