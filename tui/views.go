/*
views.go - Dashboard rendering

PURPOSE:
  Renders the model to a string: labeled matrix tables with totals
  rows, terminal bar charts for yearly totals, sparkline curves for
  ramp and retention profiles, and the assumptions summary.

LAYOUT:
  Header and view tabs on top, the active view on the left, the
  parameter panel on the right, key hints on the bottom.

SEE ALSO:
  - model.go: The state being rendered
*/
package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/warp/cohort-engine/cohort"
	"github.com/warp/cohort-engine/grid"
)

const (
	accentColor = lipgloss.Color("#800000")
	hintColor   = lipgloss.Color("#888888")
	labelColor  = lipgloss.Color("#5B8DEF")

	barWidth = 30
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// View renders the current state to a string.
func (m *Model) View() string {
	if m.picking {
		hint := lipgloss.NewStyle().
			Foreground(hintColor).
			MarginTop(1).
			Render("Enter → load scenario    Esc → cancel")
		return lipgloss.JoinVertical(lipgloss.Left, m.picker.View(), hint)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		Render("COHORT REVENUE PROJECTIONS")
	scenario := lipgloss.NewStyle().
		Foreground(hintColor).
		Render(fmt.Sprintf("Scenario: %s", m.scenarioName))

	var content string
	if m.projErr != nil {
		content = lipgloss.NewStyle().Foreground(accentColor).
			Render(fmt.Sprintf("Projection failed: %v", m.projErr))
	} else {
		switch m.view {
		case viewRevenue:
			content = m.renderRevenue()
		case viewProductivity:
			content = m.renderProductivity()
		case viewEmployees:
			content = m.renderEmployees()
		case viewAttrition:
			content = m.renderAttrition()
		case viewAssumptions:
			content = m.renderAssumptions()
		}
	}

	contentBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(content)
	paramsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(m.renderParamsPanel())
	body := lipgloss.JoinHorizontal(lipgloss.Top, contentBox, paramsBox)

	sections := []string{header, scenario, m.renderTabs(), body}
	if m.statusMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(hintColor).Render(m.statusMsg))
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

// renderTabs draws the numbered view switcher with the active view lit.
func (m *Model) renderTabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	idle := lipgloss.NewStyle().Foreground(hintColor)

	tabs := make([]string, len(viewTitles))
	for i, title := range viewTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if viewID(i) == m.view {
			tabs[i] = active.Render(label)
		} else {
			tabs[i] = idle.Render(label)
		}
	}
	return strings.Join(tabs, "   ")
}

func (m *Model) renderFooter() string {
	return lipgloss.NewStyle().
		Foreground(hintColor).
		MarginTop(1).
		Render("1-5 views · ↑/↓ select · ←/→ adjust · r ramp type · h hire timing · a first-year attrition · s scenarios · q quit")
}

// renderParamsPanel draws the editable parameter rows with a selection
// marker, plus the current toggle states.
func (m *Model) renderParamsPanel() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(labelColor).Render("Variables")

	rows := []string{title}
	for i, p := range m.params() {
		marker := "  "
		style := lipgloss.NewStyle()
		if i == m.paramSel {
			marker = "▸ "
			style = style.Bold(true)
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%-17s %s", marker, p.name, p.value(m))))
	}

	rampName := "linear"
	if m.cfg.RampType == cohort.RampSigmoid {
		rampName = "sigmoid"
	}
	rows = append(rows, "",
		fmt.Sprintf("  %-17s %s", "Ramp Type", rampName),
		fmt.Sprintf("  %-17s %s", "First Year Full", onOff(m.cfg.FirstYearFullHire)),
		fmt.Sprintf("  %-17s %s", "Year 0 Attrition", onOff(m.cfg.AttritionYearZero)),
	)
	return strings.Join(rows, "\n")
}

func onOff(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// =============================================================================
// MATRIX VIEWS
// =============================================================================

func (m *Model) renderRevenue() string {
	note := "Revenue from FTE figures, after ramp, hire timing, and attrition."
	tbl := m.renderMatrixTable(m.proj.Revenue(), count, "Sum of Revenue")
	chart := barChart("Total Revenue by Year", m.proj.YearLabels(),
		columnTotals(m.proj.Revenue()), count)
	return strings.Join([]string{note, "", tbl, "", chart}, "\n")
}

func (m *Model) renderProductivity() string {
	note := "Productivity ramp factor for each year by cohort."
	tbl := m.renderMatrixTable(m.proj.Productivity(), pct, "")
	curve := sparkChart("Productivity Ramp as % of Full Potential",
		m.proj.YearLabels(), rowValues(m.proj.Productivity(), 0), pct)
	return strings.Join([]string{note, "", tbl, "", curve}, "\n")
}

func (m *Model) renderEmployees() string {
	note := "Employees by year after attrition. Counts are rounded from\n" +
		"fractional FTE, so small cohorts read high: one employee under\n" +
		"gradual FTE attrition never reaches an exact zero."
	tbl := m.renderMatrixTable(m.proj.RetainedHeadcount(), count, "Sum of Employees")
	chart := barChart("Number of Employees After Attrition by Year", m.proj.YearLabels(),
		columnTotals(m.proj.RetainedHeadcount()), count)
	return strings.Join([]string{note, "", tbl, "", chart}, "\n")
}

func (m *Model) renderAttrition() string {
	note := "Cumulative % of each cohort remaining after attrition."
	tbl := m.renderMatrixTable(m.proj.AttritionMask(), pct, "")
	curve := sparkChart("Cumulative Percentage of Cohort Retained by Year",
		m.proj.YearLabels(), rowValues(m.proj.AttritionMask(), 0), pct)
	return strings.Join([]string{note, "", tbl, "", curve}, "\n")
}

func (m *Model) renderAssumptions() string {
	eff := m.proj.Config()

	heading := lipgloss.NewStyle().Bold(true).Foreground(labelColor)

	lines := []string{
		heading.Render("General"),
		fmt.Sprintf("  Forecast Period    %d years", eff.ForecastPeriod),
		fmt.Sprintf("  Productivity Ramp  %d years", eff.RampYears),
		fmt.Sprintf("  Revenue Goal       %s per employee", money(eff.RevenueGoal)),
		fmt.Sprintf("  Annual Attrition   %s", pct(eff.AnnualAttrition)),
		"",
	}

	if eff.AttritionYearZero {
		lines = append(lines, "This model assumes there is attrition in the hire year.")
	} else {
		lines = append(lines, "This model does not assume attrition in the hire year.")
	}
	if eff.FirstYearFullHire {
		lines = append(lines, "First-year employees are hired at the beginning of the year.")
	} else {
		lines = append(lines, "First-year employees are hired throughout the year.")
	}

	lines = append(lines, "", heading.Render("Hires per Year"))
	hires := make([]string, len(eff.HiresPerYear))
	for i, h := range eff.HiresPerYear {
		hires[i] = fmt.Sprintf("Year %d: %s", i+1, count(h))
	}
	lines = append(lines, "  "+strings.Join(hires, "   "))

	lines = append(lines, "", heading.Render("Productivity Ramp"))
	if eff.RampType == cohort.RampSigmoid {
		lines = append(lines,
			"  The ramp is s-curve (sigmoid) shaped.",
			fmt.Sprintf("  Beta, or degree of curve: %.2f", eff.Beta),
			fmt.Sprintf("  Shift, skewing the curve left or right: %.0f", eff.Shift),
		)
	} else {
		lines = append(lines, "  The ramp is linear.")
	}

	return strings.Join(lines, "\n")
}

// =============================================================================
// TABLES AND CHARTS
// =============================================================================

// renderMatrixTable lays out a labeled matrix, optionally with a bold
// totals row summing each year's column.
func (m *Model) renderMatrixTable(mtx grid.Matrix, format func(float64) string, totalLabel string) string {
	rowLabels := m.proj.CohortLabels()
	colLabels := m.proj.YearLabels()
	floats := mtx.Float64s()

	cells := make([][]string, len(floats))
	for i, row := range floats {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = format(v)
		}
	}

	var totals []string
	if totalLabel != "" {
		sums := columnTotals(mtx)
		totals = make([]string, len(sums))
		for j, v := range sums {
			totals[j] = format(v)
		}
	}

	// Column widths fit the widest of header, cells, and totals.
	labelW := 0
	for _, l := range rowLabels {
		labelW = max(labelW, len(l))
	}
	labelW = max(labelW, len(totalLabel))

	colW := make([]int, len(colLabels))
	for j, l := range colLabels {
		colW[j] = len(l)
		for i := range cells {
			colW[j] = max(colW[j], len(cells[i][j]))
		}
		if totals != nil {
			colW[j] = max(colW[j], len(totals[j]))
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	line := func(label string, row []string) string {
		parts := make([]string, 0, len(row)+1)
		parts = append(parts, fmt.Sprintf("%-*s", labelW, label))
		for j, cell := range row {
			parts = append(parts, fmt.Sprintf("%*s", colW[j], cell))
		}
		return strings.Join(parts, "  ")
	}

	out := []string{headerStyle.Render(line("", colLabels))}
	for i, row := range cells {
		out = append(out, line(rowLabels[i], row))
	}
	if totals != nil {
		totalStyle := lipgloss.NewStyle().Bold(true).Foreground(accentColor)
		out = append(out, totalStyle.Render(line(totalLabel, totals)))
	}
	return strings.Join(out, "\n")
}

// barChart draws one horizontal bar per year, scaled to the largest
// value.
func barChart(title string, labels []string, values []float64, format func(float64) string) string {
	maxV := 0.0
	for _, v := range values {
		maxV = math.Max(maxV, v)
	}

	labelW := 0
	for _, l := range labels {
		labelW = max(labelW, len(l))
	}

	barStyle := lipgloss.NewStyle().Foreground(accentColor)
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(labelColor).Render(title)}
	for i, v := range values {
		n := 0
		if maxV > 0 {
			n = int(math.Round(v / maxV * barWidth))
			if n == 0 && v > 0 {
				n = 1
			}
		}
		bar := barStyle.Render(strings.Repeat("█", n))
		lines = append(lines, fmt.Sprintf("%-*s %s %s", labelW, labels[i], bar, format(v)))
	}
	return strings.Join(lines, "\n")
}

// sparkChart draws a profile of values in [0, 1] as block characters
// with the percent value under each year.
func sparkChart(title string, labels []string, values []float64, format func(float64) string) string {
	marks := make([]string, len(values))
	cells := make([]string, len(values))
	names := make([]string, len(values))
	for i, v := range values {
		level := int(math.Round(math.Max(0, math.Min(1, v)) * float64(len(sparkLevels)-1)))
		w := max(3, max(len(labels[i]), len(format(values[i]))))
		// Block characters are multi-byte, so pad by visible width, not
		// with %-*s.
		marks[i] = strings.Repeat(string(sparkLevels[level]), 3) + strings.Repeat(" ", w-3)
		cells[i] = fmt.Sprintf("%-*s", w, format(values[i]))
		names[i] = fmt.Sprintf("%-*s", w, labels[i])
	}

	head := lipgloss.NewStyle().Bold(true).Foreground(labelColor).Render(title)
	curve := lipgloss.NewStyle().Foreground(accentColor).Render(strings.Join(marks, "  "))
	return strings.Join([]string{head, curve, strings.Join(cells, "  "), strings.Join(names, "  ")}, "\n")
}

// =============================================================================
// FORMATTING
// =============================================================================

func columnTotals(mtx grid.Matrix) []float64 {
	sums := mtx.ColumnSums()
	out := make([]float64, len(sums))
	for j, s := range sums {
		f, _ := s.Float64()
		out[j] = f
	}
	return out
}

func rowValues(mtx grid.Matrix, i int) []float64 {
	row := mtx.Row(i)
	out := make([]float64, len(row))
	for j, c := range row {
		f, _ := c.Float64()
		out[j] = f
	}
	return out
}

// count renders a whole-unit figure with thousands separators, rounding
// fractional FTE to the nearest person.
func count(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func money(v float64) string {
	return "$" + count(v)
}

func pct(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}
