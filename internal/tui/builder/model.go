// Package builder is the terminal front end of the chart builder. It maps
// keys onto session events and draws the panels, toasts and a bar preview.
package builder

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	app "github.com/alexisbeaulieu97/chartbuilder/internal/application/builder"
	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

// editTarget is what the single-line input is currently editing.
type editTarget int

const (
	editNone editTarget = iota
	editCell
	editTitle
	editColor
	editImportPath
)

// settingField is a row of the settings panel.
type settingField int

const (
	fieldType settingField = iota
	fieldTitle
	fieldLegend
	fieldLegendPosition
	fieldAnimation
	fieldDataLabels
	fieldTooltips
	fieldAspectRatio
	settingFieldCount
)

// Model is the Bubble Tea model driving one session.
type Model struct {
	ctx     context.Context
	session *app.Session
	toaster *Toaster
	outDir  string

	keys  keyMap
	help  help.Model
	input textinput.Model
	bulk  textarea.Model

	// Cursor state
	row     int
	col     int
	setting settingField
	swatch  int

	editing      editTarget
	bulkOpen     bool
	confirmReset bool
	showHelp     bool
	toastSeq     int
	lastSaved    string

	width  int
	height int
}

// NewModel creates a model over session. The toaster must be the Notifier
// the session was built with; exports are written to outDir.
func NewModel(ctx context.Context, session *app.Session, toaster *Toaster, outDir string) Model {
	input := textinput.New()
	input.CharLimit = 200
	input.Prompt = "> "

	bulk := textarea.New()
	bulk.Placeholder = "Label,Value"
	bulk.SetWidth(60)
	bulk.SetHeight(10)

	if outDir == "" {
		outDir = "."
	}
	_, _, seq := toaster.Current()

	return Model{
		ctx:      ctx,
		session:  session,
		toaster:  toaster,
		outDir:   outDir,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    input,
		bulk:     bulk,
		toastSeq: seq,
		width:    80,
		height:   24,
	}
}

// Init defers the first render until the program is running.
func (m Model) Init() tea.Cmd {
	return readyCmd()
}

// run executes a session event and surfaces failures the session did not
// already report.
func (m *Model) run(fn func() error) bool {
	_, _, before := m.toaster.Current()
	err := fn()
	if err == nil {
		return true
	}
	if _, _, after := m.toaster.Current(); after == before {
		m.toaster.Notify(err.Error(), ports.SeverityError)
	}
	return false
}

// toastCmd schedules the expiry of a toast raised since the last call.
func (m *Model) toastCmd() tea.Cmd {
	_, _, seq := m.toaster.Current()
	if seq == m.toastSeq {
		return nil
	}
	m.toastSeq = seq
	return clearToastCmd(seq)
}

func (m *Model) clampRow() {
	n := m.session.Model().Len()
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m *Model) clampSwatch() {
	n := len(m.session.Swatches())
	if m.swatch >= n {
		m.swatch = n - 1
	}
	if m.swatch < 0 {
		m.swatch = 0
	}
}

func (m *Model) startEdit(target editTarget, value, placeholder string) tea.Cmd {
	m.editing = target
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) stopEdit() {
	m.editing = editNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) openBulk(text string) tea.Cmd {
	m.bulkOpen = true
	m.bulk.SetValue(text)
	return m.bulk.Focus()
}

func (m *Model) closeBulk() {
	m.bulkOpen = false
	m.bulk.Blur()
}
