package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const brandLabel = "made with Bubble Tea"

func (a *App) View() string {
	var body string
	switch a.screen {
	case screenWelcome:
		body = a.renderWelcome()
	case screenResults:
		body = a.renderResults()
	default:
		body = a.renderCollect()
	}
	return body + "\n\n" + a.renderStatusBar() + "\n" + a.renderFooter()
}

func (a *App) renderWelcome() string {
	var b strings.Builder
	b.WriteString(a.theme.title.Render("Welcome 🎅"))
	b.WriteString("\n\n")
	b.WriteString(a.theme.blurb.Render("Let's prepare your Secret Santa draw!"))
	return b.String()
}

func (a *App) renderCollect() string {
	var b strings.Builder
	b.WriteString(a.theme.title.Render("Secret Santa — entrants"))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	names := a.roster.Names()
	if len(names) == 0 {
		b.WriteString(a.theme.count.Render("(no entrants yet)"))
	} else {
		for i, name := range names {
			marker := "  "
			if i == a.cursor {
				marker = a.theme.cursor.Render("▶ ")
			}
			b.WriteString(marker + a.theme.entrant.Render(name) + "\n")
		}
		b.WriteString(a.theme.count.Render(entrantCount(len(names))))
	}
	return b.String()
}

func (a *App) renderResults() string {
	var b strings.Builder
	b.WriteString(a.theme.title.Render("Secret Santa — results"))
	b.WriteString("\n\n")

	if a.generating {
		b.WriteString(a.theme.blurb.Render("Generating matchings..."))
		return b.String()
	}

	widest := 0
	for _, m := range a.matches {
		if w := lipgloss.Width(m.Giver); w > widest {
			widest = w
		}
	}
	arrow := a.theme.arrow.Render(" 🎁 → ")
	for _, m := range a.matches {
		b.WriteString(a.theme.entrant.Render(padRight(m.Giver, widest)))
		b.WriteString(arrow)
		b.WriteString(a.theme.entrant.Render(m.Receiver))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderStatusBar() string {
	msg := a.status
	if msg == "" {
		msg = "Ready"
	}
	style := a.theme.status
	if a.statusErr {
		style = a.theme.statusErr
	}
	return renderBar(style, max(1, a.width), msg)
}

// renderFooter draws the bottom bar: key help on the left, brand label on
// the right, background fill in between.
func (a *App) renderFooter() string {
	space := a.theme.footerBG.Render(" ")
	sep := a.theme.footerBG.Render("  ")

	parts := make([]string, 0, 8)
	for _, b := range a.keys.bindingsFor(a.screen) {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, a.theme.footerKey.Render(h.Key)+space+a.theme.footerDesc.Render(h.Desc))
	}
	left := strings.Join(parts, sep)
	right := a.theme.brand.Render(brandLabel)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + a.theme.footerBG.Render(strings.Repeat(" ", gap)) + right
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	if w := lipgloss.Width(line); w < width-2 {
		line += strings.Repeat(" ", width-2-w)
	}
	return style.Render(line)
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func entrantCount(n int) string {
	if n < 2 {
		return fmt.Sprintf("%d entrant — need at least 2 to draw", n)
	}
	return fmt.Sprintf("%d entrants", n)
}
