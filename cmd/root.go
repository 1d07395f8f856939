// Package cmd implements the bcalc CLI commands.
package cmd

import (
	"fmt"
	"os"

	"bcalc/internal/budget"
	"bcalc/internal/cli"
	"bcalc/internal/config"
	"bcalc/internal/model"
	"bcalc/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDBPath string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "bcalc",
	Short: "Personal monthly budget calculator",
	Long:  "Track monthly income and spending categories, see the distribution, and project totals over time.",
	RunE:  runBreakdown,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", store.DefaultPath(), "Path to the budget database")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress confirmation output")
}

// loadSnapshot opens the store and loads the current snapshot, with the
// configured default time frame applied to fresh budgets. The caller owns
// closing the returned store.
func loadSnapshot() (*store.Store, model.Snapshot, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, model.Snapshot{}, err
	}

	st, err := store.Open(flagDBPath)
	if err != nil {
		return nil, model.Snapshot{}, err
	}
	st.SetDefaultTimeFrame(cfg.General.DefaultTimeFrameMonths)

	snap, err := st.Load()
	if err != nil {
		_ = st.Close()
		return nil, model.Snapshot{}, err
	}
	return st, snap, nil
}

func confirm(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Printf("  "+format+"\n", args...)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	agg := budget.Aggregate(snap)

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET BREAKDOWN"))
	fmt.Println()

	if agg.Income > 0 {
		fmt.Printf("  Monthly income: %s\n\n", cli.FormatCurrency(agg.Income))
	} else {
		fmt.Println("  Monthly income not set. Run `bcalc income <amount>` first.")
		fmt.Println()
	}

	rows := make([][]string, 0, len(snap.Order)+3)
	for _, id := range snap.Order {
		rows = append(rows, []string{
			budget.DisplayName(id),
			cli.FormatCurrency(budget.ParseAmount(snap.Amounts[id])),
			cli.RenderProgressBar(agg.Percentages[id], budget.Color(snap, id), 20),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total allocated",
		cli.FormatCurrency(agg.TotalAllocated),
		cli.RenderProgressBar(budget.Percentage(agg.TotalAllocated, agg.Income), "#3AA99F", 20),
	})

	remaining := cli.PositiveStyle.Render(cli.FormatCurrency(agg.Remaining))
	if agg.Remaining < 0 {
		remaining = cli.NegativeStyle.Render(cli.FormatCurrency(agg.Remaining))
	}
	rows = append(rows, []string{"Remaining", remaining, ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Amount", "Share of income"},
		Rows:    rows,
	}))
	return nil
}
