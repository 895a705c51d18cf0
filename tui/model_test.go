package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warp/cohort-engine/catalog"
	"github.com/warp/cohort-engine/cohort"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(catalog.NewWithDefaults(), "baseline-growth")
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func press(t *testing.T, m *Model, msg tea.Msg) *Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(*Model)
	if !ok {
		t.Fatalf("unexpected model type: %T", next)
	}
	return nm
}

func key(r rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew_SelectsScenario(t *testing.T) {
	m := newTestModel(t)
	if m.scenarioID != "baseline-growth" {
		t.Fatalf("expected baseline-growth, got %s", m.scenarioID)
	}
	if m.proj == nil {
		t.Fatalf("expected an initial projection")
	}
	if m.cfg.ForecastPeriod != 5 {
		t.Fatalf("expected the scenario's forecast period, got %d", m.cfg.ForecastPeriod)
	}
}

func TestNew_EmptyIDTakesFirstScenario(t *testing.T) {
	m, err := New(catalog.NewWithDefaults(), "")
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if m.scenarioID == "" {
		t.Fatalf("expected a scenario to be selected")
	}
}

func TestNew_UnknownScenario(t *testing.T) {
	if _, err := New(catalog.NewWithDefaults(), "missing"); err == nil {
		t.Fatalf("expected error for unknown scenario id")
	}
}

func TestNumberKeysSwitchViews(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, key('3'))
	if m.view != viewEmployees {
		t.Fatalf("expected employees view, got %d", m.view)
	}
	m = press(t, m, key('5'))
	if m.view != viewAssumptions {
		t.Fatalf("expected assumptions view, got %d", m.view)
	}
	m = press(t, m, key('1'))
	if m.view != viewRevenue {
		t.Fatalf("expected revenue view, got %d", m.view)
	}
}

func TestAdjustForecastPeriodRecomputes(t *testing.T) {
	m := newTestModel(t)

	before := m.cfg.ForecastPeriod
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.cfg.ForecastPeriod != before+1 {
		t.Fatalf("expected forecast %d, got %d", before+1, m.cfg.ForecastPeriod)
	}
	if got := m.proj.Revenue().Size(); got != before+1 {
		t.Fatalf("projection should track the new period, got size %d", got)
	}
}

func TestForecastPeriodBounds(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 30; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.cfg.ForecastPeriod != 15 {
		t.Fatalf("expected upper bound 15, got %d", m.cfg.ForecastPeriod)
	}

	for i := 0; i < 30; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.cfg.ForecastPeriod != 1 {
		t.Fatalf("expected lower bound 1, got %d", m.cfg.ForecastPeriod)
	}
}

func TestAttritionStepsWithoutDrift(t *testing.T) {
	m := newTestModel(t)

	// Move down to the attrition row.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.cfg.AnnualAttrition != 0.11 {
		t.Fatalf("expected 0.11 after one step, got %v", m.cfg.AnnualAttrition)
	}

	for i := 0; i < 200; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.cfg.AnnualAttrition != 1 {
		t.Fatalf("expected attrition capped at 1, got %v", m.cfg.AnnualAttrition)
	}

	for i := 0; i < 200; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.cfg.AnnualAttrition != 0 {
		t.Fatalf("expected attrition floored at 0, got %v", m.cfg.AnnualAttrition)
	}
}

func TestRampToggle(t *testing.T) {
	m := newTestModel(t)
	if m.cfg.RampType == cohort.RampSigmoid {
		t.Fatalf("baseline scenario should start linear")
	}
	linearRows := len(m.params())

	m = press(t, m, key('r'))
	if m.cfg.RampType != cohort.RampSigmoid {
		t.Fatalf("expected sigmoid after toggle")
	}
	if m.cfg.Beta != cohort.DefaultBeta || m.cfg.Shift != cohort.DefaultShift {
		t.Fatalf("expected the default curve shape, got beta=%v shift=%v", m.cfg.Beta, m.cfg.Shift)
	}
	if len(m.params()) != linearRows+2 {
		t.Fatalf("expected two extra curve rows, got %d", len(m.params()))
	}

	// Park the selection on the last curve row, then drop back to
	// linear: the selection must stay in range.
	for i := 0; i < 10; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = press(t, m, key('r'))
	if m.cfg.RampType == cohort.RampSigmoid {
		t.Fatalf("expected linear after second toggle")
	}
	if m.paramSel >= len(m.params()) {
		t.Fatalf("selection out of range: %d of %d", m.paramSel, len(m.params()))
	}
}

func TestFlagToggles(t *testing.T) {
	m := newTestModel(t)

	fy := m.cfg.FirstYearFullHire
	m = press(t, m, key('h'))
	if m.cfg.FirstYearFullHire == fy {
		t.Fatalf("expected h to flip first-year hire timing")
	}

	az := m.cfg.AttritionYearZero
	m = press(t, m, key('a'))
	if m.cfg.AttritionYearZero == az {
		t.Fatalf("expected a to flip first-year attrition")
	}
	if m.projErr != nil {
		t.Fatalf("toggles should never break the projection: %v", m.projErr)
	}
}

func TestScenarioPicker(t *testing.T) {
	m := newTestModel(t)

	// The terminal always delivers a size before any keystroke.
	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = press(t, m, key('s'))
	if !m.picking {
		t.Fatalf("expected picker to open")
	}

	// Escape closes without changing the plan.
	before := m.scenarioID
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.picking {
		t.Fatalf("expected picker to close on esc")
	}
	if m.scenarioID != before {
		t.Fatalf("esc should not change the scenario")
	}

	// Selecting the next scenario applies its plan.
	m = press(t, m, key('s'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.picking {
		t.Fatalf("expected picker to close on enter")
	}
	if m.scenarioID == before {
		t.Fatalf("expected a different scenario after selection")
	}
	if m.proj == nil || m.projErr != nil {
		t.Fatalf("selected scenario should project cleanly: %v", m.projErr)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(key('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestWindowSizeIsTracked(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Fatalf("expected size 120x40, got %dx%d", m.width, m.height)
	}
}
