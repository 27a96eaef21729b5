package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, true-color hex values.
// https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Align(lipgloss.Right).
			Padding(0, 1)

	secondaryStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	primaryStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Align(lipgloss.Center)
	operatorButtonStyle = buttonStyle.Foreground(colorPeach)
	activeButtonStyle   = buttonStyle.Foreground(colorBase).Background(colorAccent).Bold(true)
	pressedButtonStyle  = buttonStyle.Foreground(colorBase).Background(colorFocus).Bold(true)

	tapeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	tapeFailedStyle = lipgloss.NewStyle().Foreground(colorError)
	tapeResultStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// footer
	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	footerStyle   = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorMantle).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(colorSubtext1)
	promptStyle   = lipgloss.NewStyle().Foreground(colorFocus)
)
