package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// Command is a fully resolved program invocation.
type Command struct {
	Path string
	Args []string // excluding Path
	Env  []string
}

// Runner spawns a command and waits for it, returning its exit code.
// A non-zero exit is not an error.
type Runner interface {
	Run(ctx context.Context, cmd Command) (int, error)
}

// DefaultWaitDelay is how long a cancelled child gets after the interrupt
// before it is killed.
const DefaultWaitDelay = 5 * time.Second

// ExecRunner runs commands as child processes with the given stdio.
type ExecRunner struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	WaitDelay time.Duration
}

// NewExecRunner returns an ExecRunner attached to the process's own stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		WaitDelay: DefaultWaitDelay,
	}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, c Command) (int, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...) // #nosec G204 -- running the configured target with user-forwarded arguments is the launcher's purpose
	cmd.Env = c.Env
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
	cmd.WaitDelay = r.WaitDelay

	err := cmd.Run()
	// Once the child has been waited on, its status is the answer even if
	// the context was cancelled or WaitDelay expired.
	if cmd.ProcessState != nil {
		return exitCode(cmd.ProcessState), nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return -1, fmt.Errorf("%w: %s", ErrTargetNotFound, c.Path)
	}
	return -1, fmt.Errorf("run %s: %w", c.Path, err)
}

// exitCode follows the shell convention of 128+N for a child killed by signal N.
func exitCode(ps *os.ProcessState) int {
	if code := ps.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
