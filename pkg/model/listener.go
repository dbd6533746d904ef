package model

// ListenerInfo describes one listening socket joined against the process
// table. ProcessName and StartedSecondsAgo are nil when the owning process
// was gone (or unreadable) by the time the process snapshot was taken; the
// PID still reflects what the socket table reported.
type ListenerInfo struct {
	Port              uint16  `json:"port"`
	PID               uint32  `json:"pid"`
	ProcessName       *string `json:"process_name"`
	StartedSecondsAgo *uint64 `json:"started_seconds_ago"`
}
