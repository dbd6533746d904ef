package terminate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner scripts exit codes per invocation and records the exact
// commands it was asked to run.
type fakeRunner struct {
	codes []int
	errs  []error
	calls [][]string
}

func (f *fakeRunner) Run(name string, args ...string) (int, error) {
	i := len(f.calls)
	f.calls = append(f.calls, append([]string{name}, args...))
	code := 0
	if i < len(f.codes) {
		code = f.codes[i]
	}
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return code, err
}

func TestEscalating_RejectsPIDZero(t *testing.T) {
	r := &fakeRunner{}
	err := Escalating{Runner: r}.Kill(0)

	require.ErrorIs(t, err, ErrInvalidPID)
	assert.Empty(t, r.calls, "pid 0 must be rejected before any OS call")
}

func TestForceful_RejectsPIDZero(t *testing.T) {
	r := &fakeRunner{}
	err := Forceful{Runner: r}.Kill(0)

	require.ErrorIs(t, err, ErrInvalidPID)
	assert.Empty(t, r.calls)
}

func TestEscalating_GracefulSucceeds(t *testing.T) {
	r := &fakeRunner{codes: []int{0}}
	err := Escalating{Runner: r}.Kill(4242)

	require.NoError(t, err)
	require.Len(t, r.calls, 1, "no forceful attempt after a graceful success")
	assert.Equal(t, []string{"kill", "-TERM", "4242"}, r.calls[0])
}

func TestEscalating_GracefulFailsForcefulSucceeds(t *testing.T) {
	r := &fakeRunner{codes: []int{1, 0}}
	err := Escalating{Runner: r}.Kill(4242)

	require.NoError(t, err)
	require.Len(t, r.calls, 2)
	assert.Equal(t, []string{"kill", "-TERM", "4242"}, r.calls[0])
	assert.Equal(t, []string{"kill", "-KILL", "4242"}, r.calls[1])
}

func TestEscalating_BothFailCarriesSecondExitCode(t *testing.T) {
	r := &fakeRunner{codes: []int{1, 2}}
	err := Escalating{Runner: r}.Kill(4242)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "kill", cmdErr.Command)
	assert.Equal(t, 2, cmdErr.ExitCode)
	assert.Len(t, r.calls, 2)
}

func TestEscalating_GracefulStartFailureStillEscalates(t *testing.T) {
	// kill not even startable on the first attempt.
	r := &fakeRunner{codes: []int{-1, 0}, errs: []error{errors.New("exec: not found"), nil}}
	err := Escalating{Runner: r}.Kill(4242)

	require.NoError(t, err)
	assert.Len(t, r.calls, 2)
}

func TestEscalating_ForcefulStartFailure(t *testing.T) {
	startErr := errors.New("exec: \"kill\": executable file not found in $PATH")
	r := &fakeRunner{codes: []int{1, -1}, errs: []error{nil, startErr}}
	err := Escalating{Runner: r}.Kill(4242)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, -1, cmdErr.ExitCode)
	require.ErrorIs(t, err, startErr)
}

func TestForceful_SingleTreeWideKill(t *testing.T) {
	r := &fakeRunner{codes: []int{0}}
	err := Forceful{Runner: r}.Kill(4242)

	require.NoError(t, err)
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"taskkill", "/PID", "4242", "/T", "/F"}, r.calls[0])
}

func TestForceful_FailureCarriesExitCode(t *testing.T) {
	r := &fakeRunner{codes: []int{128}}
	err := Forceful{Runner: r}.Kill(4242)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "taskkill", cmdErr.Command)
	assert.Equal(t, 128, cmdErr.ExitCode)
	assert.Len(t, r.calls, 1, "no retry beyond the single forceful attempt")
}

func TestCommandError_Message(t *testing.T) {
	assert.Equal(t, "kill failed (exit 1)", (&CommandError{Command: "kill", ExitCode: 1}).Error())
	assert.Equal(t, "taskkill failed: boom",
		(&CommandError{Command: "taskkill", ExitCode: -1, Err: errors.New("boom")}).Error())
}

func TestNew_ReturnsATerminator(t *testing.T) {
	require.NotNil(t, New())
}
