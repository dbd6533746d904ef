package output

import (
	"fmt"
	"io"

	"github.com/mehulj/portreap/pkg/model"
)

var (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"
	colorGreen = "\033[32m"
)

// RenderTable writes one line per listener. Unknown owners render as dimmed
// dashes rather than being dropped.
func RenderTable(w io.Writer, infos []model.ListenerInfo, colorEnabled bool) {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No listeners found.")
		return
	}

	if colorEnabled {
		fmt.Fprintf(w, "%s%-7s %-8s %-24s %s%s\n", colorBold, "PORT", "PID", "PROCESS", "UPTIME", colorReset)
	} else {
		fmt.Fprintf(w, "%-7s %-8s %-24s %s\n", "PORT", "PID", "PROCESS", "UPTIME")
	}

	for _, info := range infos {
		name := "-"
		uptime := "-"
		if info.ProcessName != nil {
			name = *info.ProcessName
		}
		if info.StartedSecondsAgo != nil {
			uptime = FormatUptime(*info.StartedSecondsAgo)
		}

		if colorEnabled {
			nameColor := colorGreen
			if info.ProcessName == nil {
				nameColor = colorDim
			}
			fmt.Fprintf(w, "%-7d %-8d %s%-24s%s %s\n", info.Port, info.PID, nameColor, name, colorReset, uptime)
		} else {
			fmt.Fprintf(w, "%-7d %-8d %-24s %s\n", info.Port, info.PID, name, uptime)
		}
	}
}

// FormatUptime renders elapsed seconds in the largest two useful units,
// e.g. "45s", "3m20s", "2h05m", "4d11h".
func FormatUptime(seconds uint64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 60*60:
		return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
	case seconds < 24*60*60:
		return fmt.Sprintf("%dh%02dm", seconds/3600, seconds%3600/60)
	default:
		return fmt.Sprintf("%dd%02dh", seconds/86400, seconds%86400/3600)
	}
}
