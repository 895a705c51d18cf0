package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestView_Revenue(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	if !strings.Contains(out, "COHORT REVENUE PROJECTIONS") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Sum of Revenue") {
		t.Fatalf("missing revenue table title:\n%s", out)
	}
	if !strings.Contains(out, "Total Revenue by Year") {
		t.Fatalf("missing revenue chart title:\n%s", out)
	}
	if !strings.Contains(out, "Variables") {
		t.Fatalf("missing parameter panel:\n%s", out)
	}
	if !strings.Contains(out, "Cohort 1") || !strings.Contains(out, "Year 1") {
		t.Fatalf("missing matrix labels:\n%s", out)
	}
}

func TestView_Employees(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, key('3'))
	out := m.View()
	if !strings.Contains(out, "Sum of Employees") {
		t.Fatalf("missing employees table title:\n%s", out)
	}
	if !strings.Contains(out, "Number of Employees After Attrition by Year") {
		t.Fatalf("missing employees chart title:\n%s", out)
	}
}

func TestView_Attrition(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, key('4'))
	out := m.View()
	if !strings.Contains(out, "Cumulative Percentage of Cohort Retained by Year") {
		t.Fatalf("missing attrition chart title:\n%s", out)
	}
}

func TestView_Assumptions(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, key('5'))
	out := m.View()
	if !strings.Contains(out, "Forecast Period") {
		t.Fatalf("missing forecast assumption:\n%s", out)
	}
	if !strings.Contains(out, "Hires per Year") {
		t.Fatalf("missing hire plan:\n%s", out)
	}
	if !strings.Contains(out, "The ramp is linear.") {
		t.Fatalf("missing ramp prose:\n%s", out)
	}

	m = press(t, m, key('r'))
	out = m.View()
	if !strings.Contains(out, "s-curve (sigmoid)") {
		t.Fatalf("missing sigmoid prose:\n%s", out)
	}
	if !strings.Contains(out, "degree of curve") {
		t.Fatalf("missing beta line:\n%s", out)
	}
}

func TestView_Picker(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = press(t, m, key('s'))
	out := m.View()
	if !strings.Contains(out, "Select Scenario") {
		t.Fatalf("missing picker title:\n%s", out)
	}
	if !strings.Contains(out, "Esc") {
		t.Fatalf("missing picker hint:\n%s", out)
	}
}

func TestView_SigmoidShowsCurveRows(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, key('r'))
	out := m.View()
	if !strings.Contains(out, "Curve Beta") || !strings.Contains(out, "Curve Shift") {
		t.Fatalf("missing curve parameter rows:\n%s", out)
	}
}

func TestFormatters(t *testing.T) {
	if got := count(1234567.4); got != "1,234,567" {
		t.Fatalf("count: got %s", got)
	}
	if got := count(9.5); got != "10" {
		t.Fatalf("count should round, got %s", got)
	}
	if got := money(1000000); got != "$1,000,000" {
		t.Fatalf("money: got %s", got)
	}
	if got := pct(0.333); got != "33%" {
		t.Fatalf("pct: got %s", got)
	}
	if got := pct(1); got != "100%" {
		t.Fatalf("pct: got %s", got)
	}
}

func TestBarChartScalesToWidestBar(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	if !strings.Contains(out, "█") {
		t.Fatalf("expected at least one bar:\n%s", out)
	}
	if strings.Contains(out, strings.Repeat("█", barWidth+1)) {
		t.Fatalf("bars must not exceed the chart width:\n%s", out)
	}
}
