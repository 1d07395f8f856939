package tui

import (
	"fmt"
	"strings"

	"bcalc/internal/budget"
	"bcalc/internal/chart"
	"bcalc/internal/cli"
	"bcalc/internal/tui/components"
	"bcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 24

func (a App) renderBreakdown() string {
	t := theme.Active
	agg := budget.Aggregate(a.snap)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	nameW := 12
	for _, id := range a.snap.Order {
		if n := len(budget.DisplayName(id)); n > nameW {
			nameW = n
		}
	}

	var b strings.Builder

	income := labelStyle.Render("  Monthly income: ")
	if agg.Income > 0 {
		income += lipgloss.NewStyle().Foreground(t.Green).Render(cli.FormatCurrency(agg.Income))
	} else {
		income += lipgloss.NewStyle().Foreground(t.TextDim).Render("not set — press i")
	}
	b.WriteString(income)
	b.WriteString("\n\n")

	for i, id := range a.snap.Order {
		name := fmt.Sprintf("%-*s", nameW, budget.DisplayName(id))
		if i == a.cursor {
			name = selStyle.Render(name)
		} else {
			name = nameStyle.Render(name)
		}

		amount := a.snap.Amounts[id]
		amountCell := cli.FormatCurrency(budget.ParseAmount(amount))
		if a.editing == editAmount && i == a.cursor {
			amountCell = a.input.View()
		}

		b.WriteString(fmt.Sprintf("  %s %s  %12s  %s\n",
			components.Swatch(budget.Color(a.snap, id)),
			name,
			amountCell,
			components.CategoryBar(agg.Percentages[id], budget.Color(a.snap, id), progressWidth),
		))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-*s", nameW+2, "Total allocated")),
		nameStyle.Render(cli.FormatCurrency(agg.TotalAllocated))))

	remStyle := lipgloss.NewStyle().Foreground(t.Green)
	if agg.Remaining < 0 {
		remStyle = lipgloss.NewStyle().Foreground(t.Red)
	}
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-*s", nameW+2, "Remaining")),
		remStyle.Render(cli.FormatCurrency(agg.Remaining))))

	if a.editing == editIncome {
		b.WriteString("\n  Monthly income: " + a.input.View() + "\n")
	}
	if a.editing == editColor {
		b.WriteString("\n  Color: " + a.input.View() + "\n")
	}

	return b.String()
}

func (a App) renderDistribution() string {
	t := theme.Active

	slices, ok := chart.Pie(a.snap)
	if !ok {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render("  Enter your monthly income to see budget distribution")
	}

	width := a.width - 6
	if width > 80 {
		width = 80
	}
	return "  " + strings.ReplaceAll(components.Distribution(slices, width), "\n", "\n  ")
}

func (a App) renderProjection() string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	months := a.snap.TimeFrameMonths
	proj, err := budget.Project(a.snap, months)
	if err != nil {
		return dim.Render("  " + err.Error())
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("  Projected totals — " + budget.TimeFrameLabel(months)))
	b.WriteString("\n\n")

	// Bar lengths in terminal columns; leave room for labels and values.
	labelW := 14
	for _, id := range a.snap.Order {
		if n := len(budget.DisplayName(id)); n > labelW {
			labelW = n
		}
	}
	chartW := float64(a.width - labelW - 30)
	if chartW < 20 {
		chartW = 20
	}

	layout, ok := chart.Bars(a.snap, months, chartW, float64(a.height))
	if !ok {
		b.WriteString(dim.Render("  Add budget values to see category comparison"))
		b.WriteString("\n")
	} else {
		b.WriteString("  " + strings.ReplaceAll(components.BarChart(layout, labelW), "\n", "\n  "))
	}

	b.WriteString("\n")
	row := func(label string, v float64) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-16s", label)),
			valStyle.Render(cli.FormatAbbreviatedCurrency(v))))
	}
	row("Total income", proj.TotalIncome)
	row("Total allocated", proj.TotalAllocated)
	row("Total remaining", proj.TotalRemaining)
	if proj.TotalSaved != nil {
		row("Total saved", *proj.TotalSaved)
	}
	if proj.TotalBills != nil {
		row("Total bills", *proj.TotalBills)
	}
	if proj.TotalFood != nil {
		row("Total food", *proj.TotalFood)
	}

	return b.String()
}
