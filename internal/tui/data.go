package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mehulj/portreap/internal/output"
	"github.com/mehulj/portreap/pkg/model"
)

func (m MainModel) refreshListeners() tea.Cmd {
	scanner := m.scanner
	ranges := m.ranges
	return func() tea.Msg {
		infos, err := scanner.Scan(ranges)
		if err != nil {
			return err
		}
		return listenersMsg(infos)
	}
}

func (m MainModel) killListener(pid uint32) tea.Cmd {
	killer := m.killer
	return func() tea.Msg {
		return killResultMsg{pid: pid, err: killer.Kill(pid)}
	}
}

func (m *MainModel) filterListeners() {
	filter := strings.ToLower(m.input.Value())
	var rows []table.Row

	m.filtered = nil
	for _, l := range m.listeners {
		name := "-"
		if l.ProcessName != nil {
			name = *l.ProcessName
		}
		uptime := "-"
		if l.StartedSecondsAgo != nil {
			uptime = output.FormatUptime(*l.StartedSecondsAgo)
		}

		match := filter == "" ||
			strings.Contains(fmt.Sprintf("%d", l.Port), filter) ||
			strings.Contains(fmt.Sprintf("%d", l.PID), filter) ||
			strings.Contains(strings.ToLower(name), filter)
		if !match {
			continue
		}

		m.filtered = append(m.filtered, l)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", l.Port),
			fmt.Sprintf("%d", l.PID),
			name,
			uptime,
		})
	}
	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// selectedListener resolves the table cursor back to its listener record.
func (m *MainModel) selectedListener() *model.ListenerInfo {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.filtered) {
		return nil
	}
	l := m.filtered[cursor]
	return &l
}
