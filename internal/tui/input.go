package tui

import (
	"strings"

	"bcalc/internal/budget"

	tea "github.com/charmbracelet/bubbletea"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// startInput opens the shared text input prefilled with the current value.
func (a App) startInput(target editTarget) (tea.Model, tea.Cmd) {
	switch target {
	case editAmount:
		id, ok := a.selected()
		if !ok {
			return a, nil
		}
		a.input.SetValue(a.snap.Amounts[id])
		a.input.Placeholder = "0"
	case editIncome:
		a.input.SetValue(a.snap.Income)
		a.input.Placeholder = "monthly income"
	case editColor:
		id, ok := a.selected()
		if !ok {
			return a, nil
		}
		a.input.SetValue(budget.Color(a.snap, id))
		a.input.Placeholder = "#RRGGBB"
	default:
		return a, nil
	}

	a.editing = target
	return a, a.input.Focus()
}

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editing = editNone
		a.input.Blur()
		return a, nil

	case "enter":
		value := strings.TrimSpace(a.input.Value())
		a.applyInput(value)
		a.editing = editNone
		a.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) applyInput(value string) {
	switch a.editing {
	case editAmount:
		id, ok := a.selected()
		if !ok {
			return
		}
		// Raw strings are stored as typed; aggregation treats junk as zero.
		if err := budget.SetAmount(&a.snap, id, value); err != nil {
			a.statusMsg = err.Error()
			return
		}
	case editIncome:
		a.snap.Income = value
	case editColor:
		id, ok := a.selected()
		if !ok {
			return
		}
		if _, err := colorful.Hex(value); err != nil {
			a.statusMsg = "not a hex color: " + value
			return
		}
		if err := budget.SetColor(&a.snap, id, value); err != nil {
			a.statusMsg = err.Error()
			return
		}
	default:
		return
	}
	a.persist()
}
