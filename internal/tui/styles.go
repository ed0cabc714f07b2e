package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E53E3E"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#38A169"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#38A169"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E53E3E"))
	bannerStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// meterColors maps strength color tokens to terminal colors.
var meterColors = map[string]lipgloss.Color{
	"red":     lipgloss.Color("#E53E3E"),
	"orange":  lipgloss.Color("#DD6B20"),
	"yellow":  lipgloss.Color("#D69E2E"),
	"green":   lipgloss.Color("#38A169"),
	"emerald": lipgloss.Color("#10B981"),
	"gray":    lipgloss.Color("#A0AEC0"),
}

func scoreStyle(token string) lipgloss.Style {
	c, ok := meterColors[token]
	if !ok {
		c = meterColors["gray"]
	}
	return lipgloss.NewStyle().Foreground(c)
}
