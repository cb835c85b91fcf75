package builder

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/chart"
	"github.com/alexisbeaulieu97/chartbuilder/internal/domain/panel"
	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bulk.SetWidth(min(msg.Width-8, 80))

	case readyMsg:
		m.run(func() error { return m.session.Ready(m.ctx) })

	case clearToastMsg:
		m.toaster.Clear(msg.seq)
		return m, nil

	case savedMsg:
		m.lastSaved = msg.path

	case errMsg:
		m.toaster.Notify(msg.err.Error(), ports.SeverityError)

	case tea.KeyMsg:
		m, cmd = m.handleKeyPress(msg)

	default:
		switch {
		case m.editing != editNone:
			m.input, cmd = m.input.Update(msg)
		case m.bulkOpen:
			m.bulk, cmd = m.bulk.Update(msg)
		}
	}

	return m, tea.Batch(cmd, m.toastCmd())
}

// handleKeyPress routes keys to the editor that owns focus, then to the
// active panel.
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.editing != editNone {
		return m.handleEditKeys(msg)
	}
	if m.bulkOpen {
		return m.handleBulkKeys(msg)
	}
	if m.confirmReset {
		m.confirmReset = false
		if key.Matches(msg, m.keys.Confirm) {
			m.run(func() error { return m.session.Reset(m.ctx) })
			m.row, m.col = 0, 0
		}
		return m, nil
	}

	panels := m.session.Panels()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.NextPanel):
		m.run(func() error { return m.session.ActivatePanel(m.ctx, panels.Next()) })
		return m, nil
	case key.Matches(msg, m.keys.PrevPanel):
		m.run(func() error { return m.session.ActivatePanel(m.ctx, panels.Prev()) })
		return m, nil
	case key.Matches(msg, m.keys.TogglePanel):
		id := togglePanels[msg.String()]
		m.session.SetPanelEnabled(m.ctx, id, !panels.Enabled(id))
		return m, nil
	}

	switch msg.String() {
	case "1", "2", "3", "4":
		id := panel.Priority[int(msg.String()[0]-'1')]
		m.run(func() error { return m.session.ActivatePanel(m.ctx, id) })
		return m, nil
	}

	switch panels.Active() {
	case panel.Data:
		return m.handleDataKeys(msg)
	case panel.Settings:
		return m.handleSettingsKeys(msg)
	case panel.Style:
		return m.handleStyleKeys(msg)
	case panel.Preview:
		return m.handlePreviewKeys(msg)
	}
	return m, nil
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.stopEdit()
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		return m.finishEdit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) finishEdit() (Model, tea.Cmd) {
	value := m.input.Value()
	target := m.editing
	m.stopEdit()

	switch target {
	case editCell:
		if m.col == 0 {
			m.run(func() error { return m.session.EditLabel(m.ctx, m.row, value) })
		} else {
			m.run(func() error { return m.session.EditValue(m.ctx, m.row, value) })
		}
	case editTitle:
		m.run(func() error { return m.session.SetTitle(m.ctx, value) })
	case editColor:
		swatches := m.session.Swatches()
		if m.swatch < len(swatches) {
			id := swatches[m.swatch].ID
			m.run(func() error { return m.session.SetColor(m.ctx, id, value) })
		}
	case editImportPath:
		var text string
		ok := m.run(func() error {
			var err error
			text, err = m.session.ImportCSV(m.ctx, value)
			return err
		})
		if ok {
			return m, m.openBulk(text)
		}
	}
	return m, nil
}

func (m Model) handleBulkKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.session.SetBulk(m.bulk.Value())
		m.closeBulk()
		return m, nil
	case key.Matches(msg, m.keys.Apply):
		text := m.bulk.Value()
		if m.run(func() error {
			_, err := m.session.ApplyCSV(m.ctx, text)
			return err
		}) {
			m.closeBulk()
			m.row, m.col = 0, 0
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.bulk, cmd = m.bulk.Update(msg)
	return m, cmd
}

func (m Model) handleDataKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.row--
		m.clampRow()
	case key.Matches(msg, m.keys.Down):
		m.row++
		m.clampRow()
	case key.Matches(msg, m.keys.Left):
		m.col = 0
	case key.Matches(msg, m.keys.Right):
		m.col = 1
	case key.Matches(msg, m.keys.Edit):
		entry, err := m.session.Model().At(m.row)
		if err != nil {
			return m, nil
		}
		if m.col == 0 {
			return m, m.startEdit(editCell, entry.Label, "Enter label")
		}
		return m, m.startEdit(editCell, entry.Value, "Enter value")
	case key.Matches(msg, m.keys.AddRow):
		m.session.AddRow(m.ctx)
		m.row = m.session.Model().Len() - 1
	case key.Matches(msg, m.keys.RemoveRow):
		m.run(func() error { return m.session.RemoveRow(m.ctx, m.row) })
		m.clampRow()
	case key.Matches(msg, m.keys.Commit):
		m.run(func() error { return m.session.Commit(m.ctx) })
	case key.Matches(msg, m.keys.Reset):
		m.confirmReset = true
	case key.Matches(msg, m.keys.Bulk):
		return m, m.openBulk(m.session.BulkText())
	case key.Matches(msg, m.keys.Import):
		return m, m.startEdit(editImportPath, "", "path/to/data.csv")
	}
	return m, nil
}

func (m Model) handleSettingsKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.setting = (m.setting - 1 + settingFieldCount) % settingFieldCount
	case key.Matches(msg, m.keys.Down):
		m.setting = (m.setting + 1) % settingFieldCount
	case key.Matches(msg, m.keys.Left):
		m.changeSetting(-1)
	case key.Matches(msg, m.keys.Right):
		m.changeSetting(1)
	case key.Matches(msg, m.keys.Edit):
		if m.setting == fieldTitle {
			return m, m.startEdit(editTitle, m.session.Options().Title, "Chart title")
		}
		m.changeSetting(1)
	}
	return m, nil
}

func (m *Model) changeSetting(delta int) {
	opts := m.session.Options()
	m.run(func() error {
		switch m.setting {
		case fieldType:
			return m.session.SetType(m.ctx, cycle(chart.ChartTypes, opts.Type, delta))
		case fieldLegend:
			return m.session.SetShowLegend(m.ctx, !opts.ShowLegend)
		case fieldLegendPosition:
			return m.session.SetLegendPosition(m.ctx, cycle(chart.LegendPositions, opts.LegendPosition, delta))
		case fieldAnimation:
			return m.session.SetAnimation(m.ctx, !opts.AnimationEnabled)
		case fieldDataLabels:
			return m.session.SetDataLabels(m.ctx, !opts.DataLabelsEnabled)
		case fieldTooltips:
			return m.session.SetTooltips(m.ctx, !opts.TooltipsEnabled)
		case fieldAspectRatio:
			return m.session.SetAspectRatio(m.ctx, nextAspectRatio(opts.AspectRatio, delta))
		}
		return nil
	})
}

func (m Model) handleStyleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	opts := m.session.Options()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.run(func() error { return m.session.SetTheme(m.ctx, cycle(chart.ThemeNames, opts.Theme, -1)) })
	case key.Matches(msg, m.keys.Right):
		m.run(func() error { return m.session.SetTheme(m.ctx, cycle(chart.ThemeNames, opts.Theme, 1)) })
	case key.Matches(msg, m.keys.ToggleCustom):
		m.run(func() error { return m.session.SetUseCustomColors(m.ctx, !opts.UseCustomColors) })
	case key.Matches(msg, m.keys.Up):
		m.swatch--
		m.clampSwatch()
	case key.Matches(msg, m.keys.Down):
		m.swatch++
		m.clampSwatch()
	case key.Matches(msg, m.keys.Edit):
		swatches := m.session.Swatches()
		if m.swatch < len(swatches) {
			return m, m.startEdit(editColor, swatches[m.swatch].Color, "#rrggbb")
		}
	}
	return m, nil
}

func (m Model) handlePreviewKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ExportPNG):
		var (
			name string
			data []byte
		)
		if m.run(func() error {
			var err error
			name, data, err = m.session.ExportPNG(m.ctx)
			return err
		}) {
			return m, saveFileCmd(m.outDir, name, data)
		}
	case key.Matches(msg, m.keys.ExportCSV):
		name, doc := m.session.ExportCSV(m.ctx)
		return m, saveFileCmd(m.outDir, name, []byte(doc))
	case key.Matches(msg, m.keys.Commit):
		m.run(func() error { return m.session.Commit(m.ctx) })
	}
	return m, nil
}

// cycle returns the item delta steps from cur, wrapping around. An unknown
// cur starts from the first item.
// togglePanels maps shifted digits to the panels they show or hide.
var togglePanels = map[string]panel.ID{
	"!": panel.Data,
	"@": panel.Settings,
	"#": panel.Style,
}

func cycle[T comparable](items []T, cur T, delta int) T {
	idx := 0
	for i, it := range items {
		if it == cur {
			idx = i
			break
		}
	}
	n := len(items)
	return items[((idx+delta)%n+n)%n]
}

func nextAspectRatio(cur chart.AspectRatio, delta int) chart.AspectRatio {
	labels := make([]string, len(chart.AspectRatioChoices))
	for i, c := range chart.AspectRatioChoices {
		labels[i] = c.Label
	}
	next := cycle(labels, cur.String(), delta)
	for _, c := range chart.AspectRatioChoices {
		if c.Label == next {
			return c.Ratio
		}
	}
	return cur
}
