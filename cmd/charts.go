package cmd

import (
	"fmt"

	"bcalc/internal/budget"
	"bcalc/internal/chart"
	"bcalc/internal/cli"
	"bcalc/internal/config"
	"bcalc/internal/tui/components"

	"github.com/spf13/cobra"
)

var flagPieGeometry bool

var pieCmd = &cobra.Command{
	Use:   "pie",
	Short: "Show the budget distribution",
	RunE:  runPie,
}

var projectionCmd = &cobra.Command{
	Use:     "projection",
	Aliases: []string{"project"},
	Short:   "Show projected totals over the selected time frame",
	RunE:    runProjection,
}

func init() {
	pieCmd.Flags().BoolVar(&flagPieGeometry, "geometry", false, "Print raw slice angles and arc endpoints")
	rootCmd.AddCommand(pieCmd, projectionCmd)
}

func runPie(_ *cobra.Command, _ []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	slices, ok := chart.Pie(snap)
	if !ok {
		fmt.Println("  Enter your monthly income to see budget distribution.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET DISTRIBUTION"))
	fmt.Println()
	fmt.Println("  " + components.Distribution(slices, 60))

	if flagPieGeometry {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		r := cfg.Chart.PieRadius
		cx, cy := r+20, r+20

		rows := make([][]string, 0, len(slices))
		for _, sl := range slices {
			x1, y1, x2, y2 := sl.ArcPoints(cx, cy, r)
			large := "0"
			if sl.LargeArc() {
				large = "1"
			}
			rows = append(rows, []string{
				sl.Label,
				fmt.Sprintf("%.1f°", sl.StartAngle),
				fmt.Sprintf("%.1f°", sl.EndAngle),
				fmt.Sprintf("(%.1f, %.1f)", x1, y1),
				fmt.Sprintf("(%.1f, %.1f)", x2, y2),
				large,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Slice geometry",
			Headers: []string{"Slice", "Start", "End", "Arc start", "Arc end", "Large"},
			Rows:    rows,
		}))
	}
	return nil
}

func runProjection(_ *cobra.Command, _ []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	months := snap.TimeFrameMonths
	proj, err := budget.Project(snap, months)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECTED TOTALS  " + budget.TimeFrameLabel(months)))
	fmt.Println()

	labelW := 12
	for _, id := range snap.Order {
		if n := len(budget.DisplayName(id)); n > labelW {
			labelW = n
		}
	}
	// Configured chart dimensions are abstract drawing units; the terminal
	// renderer maps ten units onto one column.
	const unitsPerCell = 10
	if layout, ok := chart.Bars(snap, months, cfg.Chart.Width/unitsPerCell, cfg.Chart.Height); ok {
		fmt.Println(components.BarChart(layout, labelW))
	} else {
		fmt.Println("  Add income and budget values to see the category comparison.")
	}

	rows := [][]string{
		{"Total income", cli.FormatAbbreviatedCurrency(proj.TotalIncome)},
		{"Total allocated", cli.FormatAbbreviatedCurrency(proj.TotalAllocated)},
		{"Total remaining", cli.FormatAbbreviatedCurrency(proj.TotalRemaining)},
	}
	if proj.TotalSaved != nil {
		rows = append(rows, []string{"Total saved", cli.FormatAbbreviatedCurrency(*proj.TotalSaved)})
	}
	if proj.TotalBills != nil {
		rows = append(rows, []string{"Total bills", cli.FormatAbbreviatedCurrency(*proj.TotalBills)})
	}
	if proj.TotalFood != nil {
		rows = append(rows, []string{"Total food", cli.FormatAbbreviatedCurrency(*proj.TotalFood)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	return nil
}
