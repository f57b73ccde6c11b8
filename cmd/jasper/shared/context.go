// Package shared holds the context passed to all CLI commands.
package shared

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/jasper/internal/config"
	"github.com/go-ports/jasper/internal/launcher"
)

// ErrUsage is returned when usage was printed instead of launching.
var ErrUsage = errors.New("usage requested")

// ExitError carries a non-zero exit code from the launched program.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// Context carries the collaborators used by CLI commands. Zero values select
// the real process environment, jasper.py next to the executable, virtualenv
// activation, and a child process attached to the command's stdio.
type Context struct {
	Lookup       config.Lookup
	TargetScript string
	Activator    launcher.Activator
	Runner       launcher.Runner
}

// Resolve returns the environment root for the current settings.
func (c *Context) Resolve() config.Resolution {
	return config.ResolveEnvironmentRoot(c.lookup())
}

func (c *Context) lookup() config.Lookup {
	if c.Lookup != nil {
		return c.Lookup
	}
	return config.OSLookup
}

// LookupEnv reads a variable through the configured lookup.
func (c *Context) LookupEnv(key string) string { return c.lookup()(key) }

// Target returns the target script path.
func (c *Context) Target() (string, error) {
	if c.TargetScript != "" {
		return c.TargetScript, nil
	}
	return launcher.DefaultTargetScript()
}

// NewLaunch builds a LaunchContext for the given forwarded arguments.
func (c *Context) NewLaunch(forwarded []string) (*launcher.LaunchContext, error) {
	target, err := c.Target()
	if err != nil {
		return nil, err
	}
	return launcher.New(c.Resolve(), target, forwarded, c.Activator), nil
}

// Launch runs the target with forwarded arguments and converts a non-zero
// exit into an *ExitError.
func (c *Context) Launch(cmd *cobra.Command, forwarded []string) error {
	lc, err := c.NewLaunch(forwarded)
	if err != nil {
		return err
	}
	runner := c.Runner
	if runner == nil {
		runner = &launcher.ExecRunner{
			Stdin:     cmd.InOrStdin(),
			Stdout:    cmd.OutOrStdout(),
			Stderr:    cmd.ErrOrStderr(),
			WaitDelay: launcher.DefaultWaitDelay,
		}
	}
	res, err := lc.Launch(cmd.Context(), runner)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ExitError{Code: res.ExitCode}
	}
	return nil
}
