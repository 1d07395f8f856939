package cmd

import (
	"fmt"
	"strconv"

	"bcalc/internal/budget"
	"bcalc/internal/cli"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income [amount]",
	Short: "Show or set monthly income",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIncome,
}

var timeframeCmd = &cobra.Command{
	Use:   "timeframe [months]",
	Short: "Show or set the projection time frame",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTimeframe,
}

func init() {
	rootCmd.AddCommand(incomeCmd, timeframeCmd)
}

func runIncome(_ *cobra.Command, args []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		if snap.Income == "" {
			fmt.Println("  Monthly income: not set")
		} else {
			fmt.Printf("  Monthly income: %s\n", cli.FormatCurrency(budget.ParseAmount(snap.Income)))
		}
		return nil
	}

	// Stored as typed; unparseable income aggregates as zero.
	snap.Income = args[0]
	if err := st.Save(snap); err != nil {
		return err
	}
	confirm("Monthly income set to %s", cli.FormatCurrency(budget.ParseAmount(snap.Income)))
	return nil
}

func runTimeframe(_ *cobra.Command, args []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		fmt.Printf("  Time frame: %s\n\n", budget.TimeFrameLabel(snap.TimeFrameMonths))
		fmt.Println("  Available:")
		for _, months := range budget.TimeFrames {
			fmt.Printf("    %s\n", budget.TimeFrameLabel(months))
		}
		fmt.Println("  (any other positive month count works too)")
		return nil
	}

	months, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%q: %w", args[0], budget.ErrInvalidTimeFrame)
	}
	if err := budget.SetTimeFrame(&snap, months); err != nil {
		return err
	}

	if err := st.Save(snap); err != nil {
		return err
	}
	confirm("Time frame set to %s", budget.TimeFrameLabel(snap.TimeFrameMonths))
	return nil
}
