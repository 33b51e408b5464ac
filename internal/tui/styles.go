package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
)

// tokenColors maps the catalog color tokens to the palette.
var tokenColors = map[string]lipgloss.Color{
	"blue":   "#89b4fa",
	"green":  "#a6e3a1",
	"purple": "#cba6f7",
	"orange": "#fab387",
	"red":    "#f38ba8",
	"gray":   "#9399b2",
}

func tokenColor(token string) lipgloss.Color {
	if c, ok := tokenColors[token]; ok {
		return c
	}
	return tokenColors["gray"]
}

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText).
			Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	userBubble     = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Padding(0, 1)
	botBubble      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	summaryStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	disabledStyle  = lipgloss.NewStyle().Foreground(colorBorder).Strikethrough(true)
	buttonStyle    = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true).Padding(0, 1)
)

func badge(label, token string) string {
	return lipgloss.NewStyle().Foreground(tokenColor(token)).Render("[" + label + "]")
}
