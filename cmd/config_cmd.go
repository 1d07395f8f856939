package cmd

import (
	"fmt"

	"bcalc/internal/config"

	"github.com/spf13/cobra"
)

var flagConfigInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the default config file if none exists")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigInit && !config.Exists() {
		if err := config.Save(config.DefaultConfig()); err != nil {
			return err
		}
		confirm("Wrote %s", config.Path())
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	source := "defaults (no config file)"
	if config.Exists() {
		source = config.Path()
	}

	fmt.Printf("  Config:     %s\n", source)
	fmt.Printf("  Database:   %s\n", flagDBPath)
	fmt.Printf("  Theme:      %s\n", cfg.Appearance.Theme)
	fmt.Printf("  Time frame: %d months (default)\n", cfg.General.DefaultTimeFrameMonths)
	fmt.Printf("  Chart:      %.0fx%.0f, pie radius %.0f\n",
		cfg.Chart.Width, cfg.Chart.Height, cfg.Chart.PieRadius)
	return nil
}
