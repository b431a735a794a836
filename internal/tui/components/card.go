package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// CardStyle defines the visual appearance of a Card.
type CardStyle struct {
	BorderStyle  lipgloss.Style
	TitleStyle   lipgloss.Style
	ContentStyle lipgloss.Style
	IconStyle    lipgloss.Style
	FooterStyle  lipgloss.Style
	BadgeStyle   lipgloss.Style
	// Width is the outer width of the card in cells.
	Width   int
	Padding int
}

// DefaultCardStyle builds the card style for a palette.
func DefaultCardStyle(p Palette) CardStyle {
	return CardStyle{
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		TitleStyle:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		ContentStyle: lipgloss.NewStyle().Foreground(p.Text),
		IconStyle:    lipgloss.NewStyle().Foreground(p.Accent),
		FooterStyle:  lipgloss.NewStyle().Italic(true).Foreground(p.Muted),
		BadgeStyle: lipgloss.NewStyle().
			Foreground(p.Muted).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Accent).
			PaddingLeft(1),
		Width:   60,
		Padding: 1,
	}
}

// WarningCardStyle colors the border and icon with the palette's warning color.
func WarningCardStyle(p Palette) CardStyle {
	style := DefaultCardStyle(p)
	style.BorderStyle = style.BorderStyle.BorderForeground(p.Warning)
	style.IconStyle = style.IconStyle.Foreground(p.Warning)
	style.ContentStyle = style.ContentStyle.Foreground(p.Warning)
	return style
}

// CardData is the content of a card.
type CardData struct {
	Icon  string
	Title string
	// Body is wrapped to the card width unless Preformatted is set.
	Body         string
	Preformatted bool
	// Detail is rendered as-is below the body, e.g. a hyperlink.
	Detail string
	// Footer is a short muted line below the body, e.g. an author.
	Footer string
	// Badge is an attribution line at the bottom.
	Badge string
	// Actions are rendered as the last row, already styled.
	Actions []string
}

// Card is a bordered box with a header, body, footer and action row.
type Card struct {
	data  CardData
	style CardStyle
}

// NewCard creates a card with the given data and style.
func NewCard(data CardData, style CardStyle) *Card {
	return &Card{data: data, style: style}
}

// WithWidth sets the card width.
func (c *Card) WithWidth(width int) *Card {
	c.style.Width = width
	return c
}

// WithContentStyle replaces the body style.
func (c *Card) WithContentStyle(style lipgloss.Style) *Card {
	c.style.ContentStyle = style
	return c
}

// View renders the card.
func (c *Card) View() string {
	var content []string

	if c.data.Title != "" || c.data.Icon != "" {
		content = append(content, c.renderHeader())
	}

	if c.data.Body != "" {
		body := c.data.Body
		if !c.data.Preformatted {
			body = c.style.ContentStyle.Render(c.wrapText(body))
		}
		content = append(content, body)
	}

	if c.data.Detail != "" {
		content = append(content, "", c.data.Detail)
	}

	if c.data.Footer != "" {
		content = append(content, c.style.FooterStyle.Render(c.data.Footer))
	}

	if c.data.Badge != "" {
		content = append(content, "", c.style.BadgeStyle.Render(c.data.Badge))
	}

	if len(c.data.Actions) > 0 {
		content = append(content, "", strings.Join(c.data.Actions, " "))
	}

	border := c.style.BorderStyle
	if c.style.Width > 0 {
		border = border.Width(c.innerWidth() + c.style.Padding*2)
	}
	return border.Render(strings.Join(content, "\n"))
}

func (c *Card) renderHeader() string {
	var header strings.Builder
	if c.data.Icon != "" {
		header.WriteString(c.style.IconStyle.Render(c.data.Icon + " "))
	}
	header.WriteString(c.style.TitleStyle.Render(c.data.Title))
	return header.String()
}

// innerWidth is the text width left inside the border and padding.
func (c *Card) innerWidth() int {
	borderWidth := c.style.BorderStyle.GetBorderLeftSize() + c.style.BorderStyle.GetBorderRightSize()
	width := c.style.Width - borderWidth - c.style.Padding*2
	if width < 1 {
		return 1
	}
	return width
}

// wrapText wraps text to the card width, breaking words longer than a line.
func (c *Card) wrapText(text string) string {
	if c.style.Width <= 0 {
		return text
	}
	return wrap(text, c.innerWidth())
}

func wrap(text string, maxWidth int) string {
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		currentLine := ""
		for _, word := range words {
			if utf8.RuneCountInString(word) > maxWidth {
				if currentLine != "" {
					out = append(out, currentLine)
					currentLine = ""
				}
				runes := []rune(word)
				for len(runes) > maxWidth {
					out = append(out, string(runes[:maxWidth]))
					runes = runes[maxWidth:]
				}
				currentLine = string(runes)
				continue
			}

			candidate := word
			if currentLine != "" {
				candidate = currentLine + " " + word
			}
			if utf8.RuneCountInString(candidate) <= maxWidth {
				currentLine = candidate
				continue
			}
			out = append(out, currentLine)
			currentLine = word
		}
		if currentLine != "" {
			out = append(out, currentLine)
		}
	}
	return strings.Join(out, "\n")
}
