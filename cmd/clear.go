package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"bcalc/internal/store"

	"github.com/spf13/cobra"
)

var flagClearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the budget to the starter categories",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagClearForce, "force", "f", false, "Skip confirmation")
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	if !flagClearForce && !flagQuiet {
		fmt.Print("  This wipes your income and all categories. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("  Aborted.")
			return nil
		}
	}

	st, err := store.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Clear(); err != nil {
		return err
	}
	confirm("Budget reset")
	return nil
}
