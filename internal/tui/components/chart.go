package components

import (
	"fmt"
	"math"
	"strings"

	"bcalc/internal/chart"
	"bcalc/internal/cli"
	"bcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Swatch renders a small colored block for a category color. Unparseable
// color tokens render in the theme's dim color instead of erroring.
func Swatch(color string) string {
	if _, err := colorful.Hex(color); err != nil {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("■")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}

// Distribution renders pie geometry as a single stacked bar: each slice
// gets a run of cells proportional to its sweep, followed by a legend.
func Distribution(slices []chart.Slice, width int) string {
	if width < 10 {
		width = 10
	}

	var bar strings.Builder
	used := 0
	for i, sl := range slices {
		cells := int(math.Round(sl.Sweep() / 360 * float64(width)))
		if i == len(slices)-1 {
			cells = width - used // last slice absorbs rounding drift
		}
		if cells <= 0 {
			continue
		}
		if used+cells > width {
			cells = width - used
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(sl.Color))
		bar.WriteString(style.Render(strings.Repeat("█", cells)))
		used += cells
	}

	var b strings.Builder
	b.WriteString(bar.String())
	b.WriteString("\n\n")
	for _, sl := range slices {
		b.WriteString(fmt.Sprintf("  %s %s: %s\n",
			Swatch(sl.Color), sl.Label, cli.FormatPercent(sl.Percent)))
	}
	return b.String()
}

// BarChart renders bar-chart geometry as horizontal rows: one colored bar
// per category plus the income reference bar, labels on the left, scaled
// values on the right.
//
// The layout must have been built with its width in terminal columns; bar
// lengths are used as column counts directly.
func BarChart(layout chart.BarLayout, labelWidth int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	monthlyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	row := func(b chart.Bar, monthly bool) string {
		cells := int(math.Round(b.Length))
		if cells < 1 && b.Scaled > 0 {
			cells = 1
		}
		barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color))
		line := labelStyle.Render(fmt.Sprintf("%*s ", labelWidth, b.Label)) +
			barStyle.Render(strings.Repeat("█", cells)) +
			valStyle.Render(" "+cli.FormatAbbreviatedCurrency(b.Scaled))
		if monthly {
			line += monthlyStyle.Render(fmt.Sprintf(" (%s/month)", cli.FormatAbbreviatedCurrency(b.Monthly)))
		}
		return line
	}

	var b strings.Builder
	for _, bar := range layout.Bars {
		b.WriteString(row(bar, true))
		b.WriteString("\n")
	}
	b.WriteString(row(layout.Income, false))
	b.WriteString("\n")
	return b.String()
}
