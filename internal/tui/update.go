package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mehulj/portreap/pkg/model"
)

type listenersMsg []model.ListenerInfo

type killResultMsg struct {
	pid uint32
	err error
}

type tickMsg time.Time

func waitTick() tea.Cmd {
	return tea.Tick(5*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tickMsg:
		if !m.quitting && !m.input.Focused() && m.confirming == nil {
			cmd = m.refreshListeners()
		}
		return m, tea.Batch(cmd, waitTick())

	case listenersMsg:
		m.listeners = msg
		m.filterListeners()
		return m, nil

	case killResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("kill %d: %v", msg.pid, msg.err)
			m.statusErr = true
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Killed PID %d", msg.pid)
		m.statusErr = false
		// The socket table lags a kill briefly; refresh to show reality.
		return m, m.refreshListeners()

	case error:
		m.statusMsg = msg.Error()
		m.statusErr = true
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(m.height-9, 3))
		return m, nil

	case tea.KeyMsg:
		// A pending confirmation swallows every key until answered.
		if m.confirming != nil {
			switch msg.String() {
			case "y", "Y":
				target := *m.confirming
				m.confirming = nil
				m.statusMsg = fmt.Sprintf("Killing PID %d...", target.PID)
				m.statusErr = false
				return m, m.killListener(target.PID)
			case "n", "N", "esc":
				m.confirming = nil
				m.statusMsg = ""
			}
			return m, nil
		}

		if m.input.Focused() {
			switch msg.String() {
			case "esc", "enter":
				m.input.Blur()
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			default:
				m.input, cmd = m.input.Update(msg)
				m.filterListeners()
			}
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "/":
			m.statusMsg = ""
			m.input.Focus()
			return m, textinput.Blink
		case "r":
			m.statusMsg = ""
			return m, m.refreshListeners()
		case "k":
			if sel := m.selectedListener(); sel != nil {
				m.confirming = sel
			}
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}
