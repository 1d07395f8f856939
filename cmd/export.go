package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"bcalc/internal/budget"
	"bcalc/internal/model"
	"bcalc/internal/store"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the budget as JSON to a file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the budget with a previously exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding budget: %w", err)
	}
	data = append(data, '\n')

	if len(args) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	confirm("Exported budget to %s", args[0])
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	budget.Sanitize(&snap)
	if len(snap.Order) == 0 {
		return fmt.Errorf("%s holds no categories", args[0])
	}

	st, err := store.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Save(snap); err != nil {
		return err
	}
	confirm("Imported %d categories from %s", len(snap.Order), args[0])
	return nil
}
