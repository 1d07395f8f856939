package tui

import (
	"bcalc/internal/budget"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formValues backs the add/rename category form.
type formValues struct {
	name  string
	color string
}

// newCategoryForm builds the huh form used for both adding and renaming a
// category. Name validation beyond non-emptiness happens in the registry so
// collisions are reported exactly once, by one code path.
func newCategoryForm(vals *formValues) *huh.Form {
	colors := make([]huh.Option[string], 0, len(budget.DefaultPalette))
	seen := make(map[string]bool)
	for _, c := range budget.DefaultPalette {
		if seen[c] {
			continue
		}
		seen[c] = true
		colors = append(colors, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Category name").
				Placeholder("e.g. Car Payment").
				Value(&vals.name),
			huh.NewSelect[string]().
				Title("Color").
				Options(colors...).
				Value(&vals.color),
		),
	)
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.form = nil
		a.submitForm()
		return a, nil
	case huh.StateAborted:
		a.form = nil
		a.renaming = ""
		return a, nil
	}
	return a, cmd
}

func (a *App) submitForm() {
	if a.renaming != "" {
		id, err := budget.Rename(&a.snap, a.renaming, a.formVals.name)
		a.renaming = ""
		if err != nil {
			a.statusMsg = err.Error()
			return
		}
		if a.formVals.color != "" {
			_ = budget.SetColor(&a.snap, id, a.formVals.color)
		}
		a.persist()
		return
	}

	if _, err := budget.Add(&a.snap, a.formVals.name, a.formVals.color); err != nil {
		a.statusMsg = err.Error()
		return
	}
	a.cursor = len(a.snap.Order) - 1
	a.persist()
}
