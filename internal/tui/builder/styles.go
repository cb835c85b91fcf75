package builder

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(primaryColor)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	cellStyle = lipgloss.NewStyle().
			Width(24).
			PaddingRight(1)

	selectedCellStyle = cellStyle.
				Foreground(accentColor).
				Bold(true)

	partialRowStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(18)

	selectedLabelStyle = labelStyle.
				Foreground(accentColor).
				Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	toastStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true)
)

// toastStyleFor colours a notification by severity.
func toastStyleFor(severity ports.Severity) lipgloss.Style {
	switch severity {
	case ports.SeveritySuccess:
		return toastStyle.Foreground(lipgloss.Color("0")).Background(successColor)
	case ports.SeverityError:
		return toastStyle.Foreground(lipgloss.Color("15")).Background(errorColor)
	default:
		return toastStyle.Foreground(lipgloss.Color("0")).Background(mutedColor)
	}
}

// swatch renders a block in a #rrggbb colour.
func swatch(hex string, width int) string {
	if width <= 0 {
		return ""
	}
	block := make([]rune, width)
	for i := range block {
		block[i] = ' '
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(string(block))
}
