package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PortRange is an inclusive pair of ports. Start and End may arrive in either
// order; Bounds yields the normalized pair.
type PortRange struct {
	Start uint16 `json:"start"`
	End   uint16 `json:"end"`
}

func (r PortRange) Bounds() (lo, hi uint16) {
	if r.Start <= r.End {
		return r.Start, r.End
	}
	return r.End, r.Start
}

func (r PortRange) Contains(port uint16) bool {
	lo, hi := r.Bounds()
	return port >= lo && port <= hi
}

func (r PortRange) String() string {
	lo, hi := r.Bounds()
	if lo == hi {
		return strconv.Itoa(int(lo))
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}

// InAnyRange reports whether port falls inside at least one of the ranges.
func InAnyRange(port uint16, ranges []PortRange) bool {
	for _, r := range ranges {
		if r.Contains(port) {
			return true
		}
	}
	return false
}

// ParseRanges parses specs of the form "8080" or "3000-4000". Each spec may
// itself be a comma-separated list, so both repeated flags and a single
// "80,443,8000-9000" argument work.
func ParseRanges(specs []string) ([]PortRange, error) {
	var ranges []PortRange
	for _, spec := range specs {
		for _, part := range strings.Split(spec, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			r, err := parseRange(part)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, r)
		}
	}
	return ranges, nil
}

func parseRange(s string) (PortRange, error) {
	if a, b, ok := strings.Cut(s, "-"); ok {
		start, err := parsePort(a)
		if err != nil {
			return PortRange{}, fmt.Errorf("invalid port range %q: %w", s, err)
		}
		end, err := parsePort(b)
		if err != nil {
			return PortRange{}, fmt.Errorf("invalid port range %q: %w", s, err)
		}
		return PortRange{Start: start, End: end}, nil
	}

	port, err := parsePort(s)
	if err != nil {
		return PortRange{}, fmt.Errorf("invalid port %q: %w", s, err)
	}
	return PortRange{Start: port, End: port}, nil
}

func parsePort(s string) (uint16, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("port must be 0-65535")
	}
	return uint16(n), nil
}
