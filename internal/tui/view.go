package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wrap"

	"github.com/mehulj/portreap/pkg/model"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}

	outerStyle := baseStyle.
		Width(m.width-2).
		Height(m.height-2).
		Padding(0, 1)

	var b strings.Builder

	title := titleStyle.Render("portreap")
	if m.version != "" {
		title += " " + rangeStyle.Render(m.version)
	}
	fmt.Fprintf(&b, "%s  %s\n\n", title, rangeStyle.Render("watching "+rangesLabel(m.ranges)))

	fmt.Fprintf(&b, "%s\n\n", m.input.View())
	fmt.Fprintf(&b, "%s\n", m.table.View())

	status := "Mode: Navigation (Press / to search)"
	switch {
	case m.confirming != nil:
		name := "unknown process"
		if m.confirming.ProcessName != nil {
			name = *m.confirming.ProcessName
		}
		status = confirmStyle.Render(fmt.Sprintf(
			"Kill PID %d (%s) on port %d? y/n", m.confirming.PID, name, m.confirming.Port))
	case m.statusMsg != "" && m.statusErr:
		status = errorStyle.Render(m.statusMsg)
	case m.statusMsg != "":
		status = okStyle.Render(m.statusMsg)
	case m.input.Focused():
		status = "Mode: Searching (Press Esc/Enter to stop)"
	}

	footer := status + "\n" + "↑/↓ select · k kill · r refresh · / search · q quit"
	if m.width > 4 {
		footer = wrap.String(footer, m.width-4)
	}
	fmt.Fprintf(&b, "%s", footerStyle.Width(m.width-4).Render(footer))

	return outerStyle.Render(b.String())
}

func rangesLabel(ranges []model.PortRange) string {
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}
