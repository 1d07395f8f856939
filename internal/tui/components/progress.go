package components

import (
	"strings"

	"bcalc/internal/cli"
	"bcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// CategoryBar renders a category's share-of-income bar in the category's
// own color. The drawn width clamps to 100%; the printed percentage does
// not, so overspend reads as e.g. "120.0%".
func CategoryBar(pct float64, color string, width int) string {
	t := theme.Active

	drawPct := pct
	if drawPct > 100 {
		drawPct = 100
	}
	if drawPct < 0 {
		drawPct = 0
	}

	filled := int(drawPct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	filledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) +
		" " + pctStyle.Render(cli.FormatPercent(pct))
}
