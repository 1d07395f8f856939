package cmd

import (
	"fmt"
	"strings"

	"bcalc/internal/budget"

	"github.com/spf13/cobra"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var flagAddColor string

var addCmd = &cobra.Command{
	Use:   "add <name> [amount]",
	Short: "Add a budget category",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runAdd,
}

var renameCmd = &cobra.Command{
	Use:   "rename <category> <new name>",
	Short: "Rename a category, keeping its amount, color, and position",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runRename,
}

var removeCmd = &cobra.Command{
	Use:     "remove <category>",
	Aliases: []string{"rm"},
	Short:   "Remove a category",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

var setCmd = &cobra.Command{
	Use:   "set <category> <amount>",
	Short: "Set a category's monthly amount",
	Args:  cobra.ExactArgs(2),
	RunE:  runSet,
}

var colorCmd = &cobra.Command{
	Use:   "color <category> <hex>",
	Short: "Set a category's color",
	Args:  cobra.ExactArgs(2),
	RunE:  runColor,
}

var moveCmd = &cobra.Command{
	Use:   "move <category> <before-category>",
	Short: "Move a category in front of another one",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

func init() {
	addCmd.Flags().StringVar(&flagAddColor, "color", "", "Hex color (default: random palette pick)")
	rootCmd.AddCommand(addCmd, renameCmd, removeCmd, setCmd, colorCmd, moveCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	if flagAddColor != "" {
		if _, err := colorful.Hex(flagAddColor); err != nil {
			return fmt.Errorf("--color %q is not a hex color", flagAddColor)
		}
	}

	id, err := budget.Add(&snap, args[0], flagAddColor)
	if err != nil {
		return err
	}
	if len(args) == 2 {
		if err := budget.SetAmount(&snap, id, args[1]); err != nil {
			return err
		}
	}

	if err := st.Save(snap); err != nil {
		return err
	}
	confirm("Added %s", budget.DisplayName(id))
	return nil
}

func runRename(_ *cobra.Command, args []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := budget.Resolve(snap, args[0])
	if err != nil {
		return err
	}
	newID, err := budget.Rename(&snap, id, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	if err := st.Save(snap); err != nil {
		return err
	}
	confirm("Renamed %s to %s", budget.DisplayName(id), budget.DisplayName(newID))
	return nil
}

func runRemove(_ *cobra.Command, args []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := budget.Resolve(snap, args[0])
	if err != nil {
		return err
	}
	if err := budget.Remove(&snap, id); err != nil {
		return err
	}

	if err := st.Save(snap); err != nil {
		return err
	}
	confirm("Removed %s", budget.DisplayName(id))
	return nil
}

func runSet(_ *cobra.Command, args []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := budget.Resolve(snap, args[0])
	if err != nil {
		return err
	}
	if err := budget.SetAmount(&snap, id, args[1]); err != nil {
		return err
	}

	if err := st.Save(snap); err != nil {
		return err
	}
	confirm("%s = %s/month", budget.DisplayName(id), args[1])
	return nil
}

func runColor(_ *cobra.Command, args []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := budget.Resolve(snap, args[0])
	if err != nil {
		return err
	}
	if _, err := colorful.Hex(args[1]); err != nil {
		return fmt.Errorf("%q is not a hex color", args[1])
	}
	if err := budget.SetColor(&snap, id, args[1]); err != nil {
		return err
	}

	if err := st.Save(snap); err != nil {
		return err
	}
	confirm("%s is now %s", budget.DisplayName(id), args[1])
	return nil
}

func runMove(_ *cobra.Command, args []string) error {
	st, snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	defer st.Close()

	dragged, err := budget.Resolve(snap, args[0])
	if err != nil {
		return err
	}
	target, err := budget.Resolve(snap, args[1])
	if err != nil {
		return err
	}

	budget.Reorder(&snap, dragged, target)

	if err := st.Save(snap); err != nil {
		return err
	}
	confirm("Moved %s before %s", budget.DisplayName(dragged), budget.DisplayName(target))
	return nil
}
