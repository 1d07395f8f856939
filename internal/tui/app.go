// Package tui provides the interactive Bubble Tea dashboard for bcalc.
package tui

import (
	"fmt"
	"strings"

	"bcalc/internal/budget"
	"bcalc/internal/config"
	"bcalc/internal/model"
	"bcalc/internal/store"
	"bcalc/internal/tui/components"
	"bcalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabBreakdown = iota
	tabDistribution
	tabProjection
)

// editTarget selects what the shared text input is editing.
type editTarget int

const (
	editNone editTarget = iota
	editAmount
	editIncome
	editColor
)

// App is the root Bubble Tea model.
type App struct {
	snap model.Snapshot
	st   *store.Store
	cfg  config.Config

	width  int
	height int

	activeTab int
	cursor    int // index into snap.Order
	showHelp  bool
	statusMsg string // last error or confirmation, cleared on next keypress

	// Inline editing via a shared text input.
	editing editTarget
	input   textinput.Model

	// Add / rename forms.
	form     *huh.Form
	formVals formValues
	renaming string // identifier being renamed, empty for add
}

// NewApp creates the TUI model around a loaded snapshot.
func NewApp(snap model.Snapshot, st *store.Store, cfg config.Config) App {
	theme.SetActive(cfg.Appearance.Theme)

	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 20

	return App{
		snap:  snap,
		st:    st,
		cfg:   cfg,
		input: ti,
	}
}

// Run starts the TUI event loop.
func Run(snap model.Snapshot, st *store.Store, cfg config.Config) error {
	p := tea.NewProgram(NewApp(snap, st, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width)
		}
		return a, nil

	case tea.KeyMsg:
		if a.form != nil {
			return a.updateForm(msg)
		}
		if a.editing != editNone {
			return a.updateInput(msg)
		}
		return a.updateKeys(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.statusMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "?":
		a.showHelp = !a.showHelp
		return a, nil

	case "tab", "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case "shift+tab", "left":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
	case "b":
		a.activeTab = tabBreakdown
	case "d":
		a.activeTab = tabDistribution
	case "p":
		a.activeTab = tabProjection

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.snap.Order)-1 {
			a.cursor++
		}

	case "K":
		a.moveSelected(-1)
	case "J":
		a.moveSelected(+1)

	case "enter", "e":
		return a.startInput(editAmount)
	case "i":
		return a.startInput(editIncome)
	case "c":
		return a.startInput(editColor)

	case "a":
		a.formVals = formValues{color: budget.RandomColor()}
		a.renaming = ""
		a.form = newCategoryForm(&a.formVals)
		return a, a.form.Init()

	case "r":
		if id, ok := a.selected(); ok {
			a.formVals = formValues{name: budget.DisplayName(id), color: budget.Color(a.snap, id)}
			a.renaming = id
			a.form = newCategoryForm(&a.formVals)
			return a, a.form.Init()
		}

	case "x", "delete":
		if id, ok := a.selected(); ok {
			if err := budget.Remove(&a.snap, id); err != nil {
				a.statusMsg = err.Error()
			} else {
				if a.cursor >= len(a.snap.Order) {
					a.cursor = len(a.snap.Order) - 1
				}
				a.persist()
			}
		}

	case "t":
		a.cycleTimeFrame()
		a.persist()
	}

	return a, nil
}

// moveSelected shifts the selected category one position up or down by
// reordering it before its neighbor.
func (a *App) moveSelected(delta int) {
	id, ok := a.selected()
	if !ok {
		return
	}
	target := a.cursor + delta
	if target < 0 || target >= len(a.snap.Order) {
		return
	}
	if delta > 0 {
		// Moving down: drop the dragged entry before the one after the
		// neighbor, or append at the end.
		if target == len(a.snap.Order)-1 {
			budget.Reorder(&a.snap, a.snap.Order[target], id)
		} else {
			budget.Reorder(&a.snap, id, a.snap.Order[target+1])
		}
	} else {
		budget.Reorder(&a.snap, id, a.snap.Order[target])
	}
	a.cursor = target
	a.persist()
}

func (a *App) cycleTimeFrame() {
	for i, months := range budget.TimeFrames {
		if months == a.snap.TimeFrameMonths {
			next := budget.TimeFrames[(i+1)%len(budget.TimeFrames)]
			_ = budget.SetTimeFrame(&a.snap, next)
			return
		}
	}
	_ = budget.SetTimeFrame(&a.snap, budget.TimeFrames[0])
}

func (a App) selected() (string, bool) {
	if a.cursor < 0 || a.cursor >= len(a.snap.Order) {
		return "", false
	}
	return a.snap.Order[a.cursor], true
}

// persist saves the snapshot, surfacing failures in the status line. The
// in-memory snapshot is kept regardless; a failed save never loses edits.
func (a *App) persist() {
	if err := a.st.Save(a.snap); err != nil {
		a.statusMsg = fmt.Sprintf("save failed: %s", err)
	}
}

func (a App) View() string {
	t := theme.Active

	if a.width == 0 {
		return "loading..."
	}
	if a.form != nil {
		return a.form.View()
	}
	if a.showHelp {
		return a.renderHelp()
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Accent).
		Render(" bcalc — Budget Calculator")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab, a.width))
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabBreakdown:
		b.WriteString(a.renderBreakdown())
	case tabDistribution:
		b.WriteString(a.renderDistribution())
	case tabProjection:
		b.WriteString(a.renderProjection())
	}

	if a.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render("  " + a.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(components.RenderStatusBar(a.width, budget.TimeFrameLabel(a.snap.TimeFrameMonths)))
	return b.String()
}

func (a App) renderHelp() string {
	t := theme.Active
	key := lipgloss.NewStyle().Foreground(t.Accent)
	desc := lipgloss.NewStyle().Foreground(t.TextMuted)

	lines := []struct{ k, d string }{
		{"tab / b d p", "switch tabs"},
		{"j / k", "move selection"},
		{"J / K", "reorder selected category"},
		{"enter / e", "edit amount"},
		{"i", "edit monthly income"},
		{"c", "edit color"},
		{"a", "add category"},
		{"r", "rename category"},
		{"x", "remove category"},
		{"t", "cycle time frame"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			key.Render(fmt.Sprintf("%-12s", l.k)), desc.Render(l.d)))
	}
	b.WriteString("\n")
	b.WriteString(desc.Render("  Press ? to close help"))
	return b.String()
}
