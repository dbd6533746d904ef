// Package terminate kills processes by PID through the OS kill utilities,
// escalating from a graceful request to a forceful one where the platform
// distinguishes the two.
package terminate

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
)

// ErrInvalidPID rejects PID 0 before any OS interaction. Signalling PID 0
// would hit the caller's own process group on Unix.
var ErrInvalidPID = errors.New("invalid pid 0")

// CommandError reports a termination command that ran but did not succeed.
// ExitCode is -1 when the command could not be started at all.
type CommandError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s failed (exit %d)", e.Command, e.ExitCode)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Runner executes one termination command and reports its exit code.
// Abstracted so tests can assert on the exact escalation sequence without
// signalling real processes.
type Runner interface {
	Run(name string, args ...string) (exitCode int, err error)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) (int, error) {
	err := exec.Command(name, args...).Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// Terminator kills the process with the given PID. Sending the signal is
// irreversible; callers worried about PID reuse must revalidate liveness
// themselves before calling.
type Terminator interface {
	Kill(pid uint32) error
}

// New returns the Terminator for the current platform.
func New() Terminator {
	if runtime.GOOS == "windows" {
		return Forceful{Runner: execRunner{}}
	}
	return Escalating{Runner: execRunner{}}
}

// Escalating asks politely first: kill -TERM, and only when that is refused,
// kill -KILL. The failure it reports carries the second attempt's exit code.
type Escalating struct {
	Runner Runner
}

func (t Escalating) Kill(pid uint32) error {
	if pid == 0 {
		return ErrInvalidPID
	}
	arg := strconv.FormatUint(uint64(pid), 10)

	if code, err := t.Runner.Run("kill", "-TERM", arg); err == nil && code == 0 {
		return nil
	}

	code, err := t.Runner.Run("kill", "-KILL", arg)
	if err != nil {
		return &CommandError{Command: "kill", ExitCode: -1, Err: err}
	}
	if code != 0 {
		return &CommandError{Command: "kill", ExitCode: code}
	}
	return nil
}

// Forceful tears down the PID and its whole tree in one taskkill call.
// Windows offers no TERM-like request for arbitrary processes, so there is
// nothing to escalate from.
type Forceful struct {
	Runner Runner
}

func (t Forceful) Kill(pid uint32) error {
	if pid == 0 {
		return ErrInvalidPID
	}
	arg := strconv.FormatUint(uint64(pid), 10)

	code, err := t.Runner.Run("taskkill", "/PID", arg, "/T", "/F")
	if err != nil {
		return &CommandError{Command: "taskkill", ExitCode: -1, Err: err}
	}
	if code != 0 {
		return &CommandError{Command: "taskkill", ExitCode: code}
	}
	return nil
}
