package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func readyCmd() tea.Cmd {
	return func() tea.Msg {
		return readyMsg{}
	}
}

func clearToastCmd(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

// saveFileCmd writes an export next to the configured output directory.
func saveFileCmd(dir, name string, data []byte) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errMsg{err: fmt.Errorf("write %s: %w", path, err)}
		}
		return savedMsg{path: path}
	}
}
