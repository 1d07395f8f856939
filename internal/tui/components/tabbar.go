package components

import (
	"strings"

	"bcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Breakdown", Key: 'b'},
	{Name: "Distribution", Key: 'd'},
	{Name: "Projection", Key: 'p'},
}

// RenderTabBar renders the top tab bar with the active tab highlighted.
func RenderTabBar(active, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Padding(0, 2)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 2)

	var parts []string
	for i, tab := range Tabs {
		if i == active {
			parts = append(parts, activeStyle.Render(tab.Name))
		} else {
			parts = append(parts, inactiveStyle.Render(tab.Name))
		}
	}

	bar := strings.Join(parts, "")
	return lipgloss.NewStyle().Width(width).BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Render(bar)
}
