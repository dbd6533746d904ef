// Package scan joins the TCP socket table against the process table to
// report who is listening inside a set of port ranges.
package scan

import (
	"github.com/mehulj/portreap/internal/proc"
	"github.com/mehulj/portreap/pkg/model"
)

// Scanner filters listening sockets by port range and enriches each owning
// PID with its process name and uptime. The reader funcs are swappable so
// tests can run against fixed tables.
type Scanner struct {
	sockets   func() ([]proc.Socket, error)
	processes func() (map[uint32]proc.ProcessInfo, error)
}

func New() *Scanner {
	return &Scanner{
		sockets:   proc.SocketTable,
		processes: proc.ProcessTable,
	}
}

// Scan takes fresh socket and process snapshots and returns one ListenerInfo
// per (listening socket, owning PID) pair whose port falls in any range.
// Result order is unspecified. An empty range set returns an empty result
// without touching the OS.
func (s *Scanner) Scan(ranges []model.PortRange) ([]model.ListenerInfo, error) {
	if len(ranges) == 0 {
		return []model.ListenerInfo{}, nil
	}

	sockets, err := s.sockets()
	if err != nil {
		return nil, err
	}
	procs, err := s.processes()
	if err != nil {
		return nil, err
	}

	out := []model.ListenerInfo{}
	for _, sock := range sockets {
		if !sock.Listen {
			continue
		}
		if !model.InAnyRange(sock.Port, ranges) {
			continue
		}

		// A socket with no visible owner yields nothing; one with
		// several owners yields one record per PID.
		for _, pid := range sock.PIDs {
			info := model.ListenerInfo{
				Port: sock.Port,
				PID:  pid,
			}
			if p, ok := procs[pid]; ok {
				name := p.Name
				runTime := p.RunTimeSeconds
				info.ProcessName = &name
				info.StartedSecondsAgo = &runTime
			}
			out = append(out, info)
		}
	}
	return out, nil
}
