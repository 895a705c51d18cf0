/*
model.go - Terminal dashboard state and input handling

PURPOSE:
  Interactive terminal dashboard for the projection engine, following
  The Elm Architecture:

  1. Model: Application state (current plan, projection, view)
  2. Update: State transitions driven by key messages
  3. View: Renders state to a string (views.go)

  The flow is: User Input -> Message -> Update -> New Model -> View.

VIEWS:
  1 Revenue       Revenue table, yearly totals, bar chart
  2 Productivity  Ramp factors and the cohort 1 ramp profile
  3 Employees     Retained headcount, yearly totals, bar chart
  4 Attrition     Cohort survival percentages and retention curve
  5 Assumptions   The effective plan, spelled out

EDITING:
  Up/down select a parameter, left/right adjust it within bounds, and
  every change recomputes the projection. Toggles: r (ramp type),
  h (first-year hire timing), a (first-year attrition). s opens the
  scenario picker, q quits.

SEE ALSO:
  - params.go: Parameter rows and bounds
  - views.go: Rendering
  - cmd/dashboard/main.go: Program startup
*/
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/warp/cohort-engine/catalog"
	"github.com/warp/cohort-engine/cohort"
	"github.com/warp/cohort-engine/factory"
)

// viewID identifies which dashboard screen is showing.
type viewID int

const (
	viewRevenue      viewID = iota // Revenue table and chart
	viewProductivity               // Ramp factors
	viewEmployees                  // Retained headcount
	viewAttrition                  // Survival percentages
	viewAssumptions                // Plan summary
)

var viewTitles = []string{"Revenue", "Productivity", "Employees", "Attrition", "Assumptions"}

// scenarioItem implements list.Item for the scenario picker.
type scenarioItem struct {
	id   string
	name string
	desc string
}

func (s scenarioItem) Title() string       { return s.name }
func (s scenarioItem) Description() string { return s.desc }
func (s scenarioItem) FilterValue() string { return s.name }

// Model is the dashboard model. It holds ALL the state.
type Model struct {
	catalog *catalog.Catalog
	planner *factory.PlanFactory

	// Working plan and its projection. proj is recomputed on every
	// edit; projErr is only set if an edit produces an invalid plan,
	// which the bounds should prevent.
	cfg     cohort.Config
	proj    *cohort.Projection
	projErr error

	scenarioID   string
	scenarioName string

	view     viewID
	paramSel int

	picking bool
	picker  list.Model

	statusMsg string

	width  int
	height int
}

// New creates a dashboard showing the given catalog scenario. An empty
// id selects the first scenario in the catalog.
func New(cat *catalog.Catalog, scenarioID string) (*Model, error) {
	entries := cat.List()
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog has no scenarios")
	}

	entry := entries[0]
	if scenarioID != "" {
		e, ok := cat.Get(scenarioID)
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", scenarioID)
		}
		entry = e
	}

	picker := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	picker.Title = "Select Scenario"
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(false)

	m := &Model{
		catalog: cat,
		planner: factory.NewPlanFactory(),
		picker:  picker,
	}
	m.applyScenario(entry)
	m.refreshPicker()
	return m, nil
}

// applyScenario replaces the working plan with a catalog entry's plan.
func (m *Model) applyScenario(entry catalog.Entry) {
	m.cfg = entry.Config
	m.scenarioID = entry.ID
	m.scenarioName = entry.Name
	m.paramSel = 0
	m.recompute()
}

// refreshPicker rebuilds the picker items from the catalog, so entries
// added by a file reload show up the next time the picker opens.
func (m *Model) refreshPicker() {
	entries := m.catalog.List()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		desc := e.Description
		if desc == "" {
			desc = fmt.Sprintf("Scenario ID: %s", e.ID)
		}
		items[i] = scenarioItem{id: e.ID, name: e.Name, desc: desc}
	}
	m.picker.SetItems(items)

	for i, e := range entries {
		if e.ID == m.scenarioID {
			m.picker.Select(i)
			break
		}
	}
}

// recompute runs the pipeline on the working plan.
func (m *Model) recompute() {
	proj, err := cohort.Project(m.cfg)
	if err != nil {
		m.projErr = err
		return
	}
	m.proj = proj
	m.projErr = nil
}

// Init is called once when the program starts.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.SetSize(max(0, msg.Width-6), max(0, msg.Height-8))
		return m, nil

	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.updateDashboard(msg)
	}

	return m, nil
}

// updatePicker handles keys while the scenario picker is open.
func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.picking = false
		return m, nil
	case "enter":
		item, ok := m.picker.SelectedItem().(scenarioItem)
		if !ok {
			return m, nil
		}
		entry, ok := m.catalog.Get(item.id)
		if !ok {
			m.statusMsg = fmt.Sprintf("Scenario %s is no longer in the catalog", item.id)
			m.picking = false
			return m, nil
		}
		m.applyScenario(entry)
		m.statusMsg = fmt.Sprintf("Loaded scenario: %s", entry.Name)
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// updateDashboard handles keys on the main screens.
func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		m.view = viewID(int(msg.String()[0] - '1'))
		return m, nil

	case "up", "k":
		if m.paramSel > 0 {
			m.paramSel--
		}
		return m, nil

	case "down", "j":
		if m.paramSel < len(m.params())-1 {
			m.paramSel++
		}
		return m, nil

	case "left":
		m.adjustParam(-1)
		return m, nil

	case "right":
		m.adjustParam(+1)
		return m, nil

	case "h":
		m.cfg.FirstYearFullHire = !m.cfg.FirstYearFullHire
		m.recompute()
		return m, nil

	case "r":
		if m.cfg.RampType == cohort.RampSigmoid {
			m.cfg.RampType = cohort.RampLinear
		} else {
			m.cfg.RampType = cohort.RampSigmoid
			// A plan that was always linear has no curve shape yet. Beta
			// can never legitimately be zero, so zero means unset.
			if m.cfg.Beta == 0 {
				m.cfg.Beta = cohort.DefaultBeta
				m.cfg.Shift = cohort.DefaultShift
			}
		}
		m.clampParamSel()
		m.recompute()
		return m, nil

	case "a":
		m.cfg.AttritionYearZero = !m.cfg.AttritionYearZero
		m.recompute()
		return m, nil

	case "s":
		m.refreshPicker()
		m.picking = true
		return m, nil
	}

	return m, nil
}

// adjustParam steps the selected parameter and recomputes.
func (m *Model) adjustParam(dir int) {
	params := m.params()
	if m.paramSel >= len(params) {
		return
	}
	params[m.paramSel].adjust(m, dir)
	m.recompute()
}

// clampParamSel keeps the selection valid when the row count changes,
// e.g. after switching ramp types hides the curve parameters.
func (m *Model) clampParamSel() {
	if n := len(m.params()); m.paramSel >= n {
		m.paramSel = n - 1
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
