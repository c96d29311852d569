package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const colorAccent = colorRed

// theme bundles the styles for one App instance so the accent color can
// come from configuration.
type theme struct {
	title      lipgloss.Style
	blurb      lipgloss.Style
	entrant    lipgloss.Style
	cursor     lipgloss.Style
	count      lipgloss.Style
	arrow      lipgloss.Style
	status     lipgloss.Style
	statusErr  lipgloss.Style
	footerKey  lipgloss.Style
	footerDesc lipgloss.Style
	footerBG   lipgloss.Style
	brand      lipgloss.Style
}

func newTheme(accent string) theme {
	acc := colorAccent
	if accent != "" {
		acc = lipgloss.Color(accent)
	}
	return theme{
		title:      lipgloss.NewStyle().Bold(true).Underline(true).Foreground(acc),
		blurb:      lipgloss.NewStyle().Foreground(colorText),
		entrant:    lipgloss.NewStyle().Foreground(colorText),
		cursor:     lipgloss.NewStyle().Foreground(acc).Bold(true),
		count:      lipgloss.NewStyle().Foreground(colorOverlay1),
		arrow:      lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		status:     lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorSurface0).Padding(0, 1),
		statusErr:  lipgloss.NewStyle().Foreground(colorRed).Background(colorSurface0).Padding(0, 1),
		footerKey:  lipgloss.NewStyle().Foreground(acc).Bold(true).Background(colorMantle),
		footerDesc: lipgloss.NewStyle().Foreground(colorOverlay1).Background(colorMantle),
		footerBG:   lipgloss.NewStyle().Background(colorMantle),
		brand:      lipgloss.NewStyle().Foreground(colorLavender).Background(colorMantle).Italic(true),
	}
}
