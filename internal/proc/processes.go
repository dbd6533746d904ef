package proc

import (
	"time"

	gops "github.com/shirou/gopsutil/v4/process"
)

// ProcessInfo carries the per-process fields the scanner joins on.
type ProcessInfo struct {
	Name           string
	RunTimeSeconds uint64
}

// ProcessTable returns a fresh snapshot of running processes keyed by PID.
// Processes that exit or deny access mid-read are simply absent from the
// map; the join treats absence as "owner unknown", not as a failure.
func ProcessTable() (map[uint32]ProcessInfo, error) {
	procs, err := gops.Processes()
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	table := make(map[uint32]ProcessInfo, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		info := ProcessInfo{Name: name}
		if created, err := p.CreateTime(); err == nil && created <= now {
			info.RunTimeSeconds = uint64(now-created) / 1000
		}
		table[uint32(p.Pid)] = info
	}
	return table, nil
}
