// Package startcmd implements the `jasper start` command.
package startcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/jasper/cmd/jasper/shared"
)

// Command implements `jasper start`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the start command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:                "start [args...]",
		Short:              "Activate the Jasper virtualenv and run jasper.py with args",
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE:               c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

// Every argument after "start" goes to the target unchanged, --help included.
func (c *Command) run(cmd *cobra.Command, args []string) error {
	return c.ctx.Launch(cmd, args)
}
