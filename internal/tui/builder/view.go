package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/panel"
)

var panelTitles = map[panel.ID]string{
	panel.Data:     "Data",
	panel.Settings: "Settings",
	panel.Style:    "Style",
	panel.Preview:  "Preview",
}

// View renders the model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Chart Builder"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	var body string
	switch m.session.Panels().Active() {
	case panel.Data:
		body = m.renderData()
	case panel.Settings:
		body = m.renderSettings()
	case panel.Style:
		body = m.renderStyle()
	case panel.Preview:
		body = m.renderPreview()
	}
	b.WriteString(panelStyle.Width(max(m.width-4, 40)).Render(body))
	b.WriteString("\n")

	if message, severity, _ := m.toaster.Current(); message != "" {
		b.WriteString(toastStyleFor(severity).Render(message))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, state := range m.session.Panels().States() {
		if !state.Enabled {
			continue
		}
		if state.Active {
			tabs = append(tabs, activeTabStyle.Render(panelTitles[state.ID]))
			continue
		}
		tabs = append(tabs, tabStyle.Render(panelTitles[state.ID]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) renderData() string {
	if m.bulkOpen {
		return "Bulk edit (one \"label,value\" per line)\n\n" + m.bulk.View() +
			"\n\n" + mutedStyle.Render("ctrl+s apply • esc back to table")
	}

	var b strings.Builder
	if m.editing == editImportPath {
		b.WriteString("Import CSV file\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	partial := map[int]bool{}
	for _, issue := range chart.Validate(m.session.Model()).Partial {
		partial[issue.Index] = true
	}

	b.WriteString(labelStyle.Render("") + cellStyle.Render("Label") + cellStyle.Render("Value") + "\n")
	for i, e := range m.session.Model().Entries() {
		label := e.Label
		if label == "" {
			label = mutedStyle.Render("Enter label")
		}
		value := e.Value
		if value == "" {
			value = mutedStyle.Render("Enter value")
		}
		cells := [2]string{label, value}
		for col := range cells {
			style := cellStyle
			if i == m.row && col == m.col {
				style = selectedCellStyle
				if m.editing == editCell {
					cells[col] = m.input.View()
				}
			}
			cells[col] = style.Render(cells[col])
		}

		marker := fmt.Sprintf("%3d ", i+1)
		if partial[i] {
			marker = partialRowStyle.Render(fmt.Sprintf("%3d!", i+1))
		}
		b.WriteString(labelStyle.Render(marker) + cells[0] + cells[1] + "\n")
	}

	if m.confirmReset {
		b.WriteString("\n")
		b.WriteString(partialRowStyle.Render("Are you sure you want to reset all data? (y/n)"))
	}
	return b.String()
}

func (m Model) renderSettings() string {
	opts := m.session.Options()
	rows := []struct {
		field settingField
		name  string
		value string
		muted bool
	}{
		{fieldType, "Chart type", string(opts.Type), false},
		{fieldTitle, "Title", opts.Title, false},
		{fieldLegend, "Show legend", onOff(opts.ShowLegend), false},
		{fieldLegendPosition, "Legend position", string(opts.LegendPosition), !opts.ShowLegend},
		{fieldAnimation, "Animation", onOff(opts.AnimationEnabled), false},
		{fieldDataLabels, "Data labels", onOff(opts.DataLabelsEnabled), false},
		{fieldTooltips, "Tooltips", onOff(opts.TooltipsEnabled), false},
		{fieldAspectRatio, "Aspect ratio", opts.AspectRatio.String(), false},
	}

	var b strings.Builder
	for _, r := range rows {
		name := labelStyle.Render(r.name)
		if r.field == m.setting {
			name = selectedLabelStyle.Render(r.name)
		}
		value := valueStyle.Render(r.value)
		switch {
		case r.field == fieldTitle && m.editing == editTitle:
			value = m.input.View()
		case r.muted:
			value = mutedStyle.Render(r.value)
		}
		b.WriteString(name + value + "\n")
	}
	return b.String()
}

func (m Model) renderStyle() string {
	opts := m.session.Options()
	resolver := chart.NewResolver(nil)

	var b strings.Builder
	b.WriteString("Theme\n")
	for _, theme := range chart.ThemeNames {
		name := labelStyle.Render(string(theme))
		if theme == opts.Theme {
			name = selectedLabelStyle.Render("▸ " + string(theme))
		}
		b.WriteString(name)
		for _, c := range resolver.Colors(theme, 5, nil, false) {
			b.WriteString(swatch(c, 2))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Custom colours") + valueStyle.Render(onOff(opts.UseCustomColors)) + "\n\n")

	swatches := m.session.Swatches()
	if len(swatches) == 0 {
		b.WriteString(mutedStyle.Render("Add data to pick colours"))
		return b.String()
	}
	for i, sw := range swatches {
		name := labelStyle.Render(truncate(sw.Label, 16))
		if i == m.swatch {
			name = selectedLabelStyle.Render(truncate(sw.Label, 16))
		}
		value := valueStyle.Render(sw.Color)
		if i == m.swatch && m.editing == editColor {
			value = m.input.View()
		}
		line := swatch(sw.Color, 4) + " " + name + value
		if !opts.UseCustomColors {
			line = swatch(sw.Color, 4) + " " + name + mutedStyle.Render(sw.Color)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) renderPreview() string {
	spec := m.session.Current()
	var b strings.Builder
	if spec == nil {
		b.WriteString(mutedStyle.Render("Loading chart..."))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(spec.Title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s • %s", spec.Type, spec.AspectRatio)))
	b.WriteString("\n\n")
	b.WriteString(renderBars(spec, max(m.width-12, 30)))

	if m.lastSaved != "" {
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("Saved " + m.lastSaved))
	}
	return b.String()
}

// renderBars draws the spec as horizontal bars scaled to the largest
// magnitude.
func renderBars(spec *chart.Spec, width int) string {
	if spec.Empty() {
		return mutedStyle.Render("No data to display")
	}

	labelWidth := 0
	maxAbs := 0.0
	for i, label := range spec.Labels {
		labelWidth = max(labelWidth, len([]rune(truncate(label, 20))))
		maxAbs = math.Max(maxAbs, math.Abs(spec.Values[i]))
	}
	barWidth := max(width-labelWidth-24, 10)

	var lines []string
	for i, label := range spec.Labels {
		v := spec.Values[i]
		n := int(math.Round(math.Abs(v) / maxAbs * float64(barWidth)))
		if n == 0 {
			n = 1
		}
		text := strconv.FormatFloat(v, 'f', -1, 64)
		if spec.DataLabels.Enabled {
			text += " (" + spec.DataLabels.Format(v) + ")"
		}
		name := truncate(label, 20)
		pad := strings.Repeat(" ", labelWidth-len([]rune(name)))
		lines = append(lines, name+pad+" "+swatch(spec.Colors[i], n)+" "+text)
	}

	if spec.Legend.Show {
		lines = append(lines, "", mutedStyle.Render("legend: "+string(spec.Legend.Position)))
	}
	return strings.Join(lines, "\n")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
