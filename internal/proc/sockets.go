// Package proc reads point-in-time snapshots of the OS socket and process
// tables. Every call hits the OS again; nothing is cached, since owners and
// uptimes go stale the moment a snapshot is taken.
package proc

import (
	"fmt"

	gnet "github.com/shirou/gopsutil/v4/net"
)

// Socket is one entry from the TCP socket table.
type Socket struct {
	Port   uint16
	Listen bool
	// PIDs holds the owning process IDs. Usually one; zero when the OS
	// would not reveal the owner (unreadable inode map, sandboxes), and
	// possibly several where sockets are shared across processes.
	PIDs []uint32
}

// SocketTable returns the live TCP socket table, IPv4 and IPv6 together in
// one query so the snapshot is time-consistent. The read is all-or-nothing:
// any enumeration failure returns an error with no partial result.
func SocketTable() ([]Socket, error) {
	conns, err := gnet.Connections("tcp")
	if err != nil {
		return nil, fmt.Errorf("query socket table: %w", err)
	}

	sockets := make([]Socket, 0, len(conns))
	for _, c := range conns {
		s := Socket{
			Port:   uint16(c.Laddr.Port),
			Listen: c.Status == "LISTEN",
		}
		if c.Pid > 0 {
			s.PIDs = append(s.PIDs, uint32(c.Pid))
		}
		sockets = append(sockets, s)
	}
	return sockets, nil
}
