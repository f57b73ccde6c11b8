// Package rootcmd wires the root cobra.Command for the jasper launcher binary.
package rootcmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	doctorcmd "github.com/go-ports/jasper/cmd/jasper/doctor"
	envcmd "github.com/go-ports/jasper/cmd/jasper/env"
	"github.com/go-ports/jasper/cmd/jasper/shared"
	startcmd "github.com/go-ports/jasper/cmd/jasper/start"
	versioncmd "github.com/go-ports/jasper/cmd/jasper/version"
	"github.com/go-ports/jasper/internal/launcher"
)

// New creates the root command using the real process environment.
func New() *cobra.Command {
	return NewWithContext(&shared.Context{})
}

// NewWithContext creates the root command with the given collaborators.
//
// Flag parsing is disabled: the first argument is discarded and everything
// after it is passed to jasper.py verbatim. Only the reserved subcommand
// names and help/-h/--help are interpreted in the first position.
func NewWithContext(ctx *shared.Context) *cobra.Command {
	root := &cobra.Command{
		Use:                "jasper [first] [args...]",
		Short:              "Activate the Jasper virtualenv and run jasper.py",
		Long:               "Runs jasper.py inside the Jasper virtualenv.\n\nThe virtualenv is $JASPER_VENV, else $WORKON_HOME/Jasper, else ~/.virtualenvs/Jasper.\nThe first argument is ignored; the rest are passed to jasper.py unchanged.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	usage := func(cmd *cobra.Command) error {
		fmt.Fprint(cmd.ErrOrStderr(), root.UsageString())
		return shared.ErrUsage
	}
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && isHelp(args[0]) {
			return usage(cmd)
		}
		return ctx.Launch(cmd, launcher.ForwardedArgs(args))
	}
	root.SetHelpCommand(&cobra.Command{
		Use:                "help",
		Short:              "Show usage",
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE:               func(cmd *cobra.Command, _ []string) error { return usage(cmd) },
	})

	root.AddCommand(
		startcmd.New(ctx).Cmd(),
		envcmd.New(ctx).Cmd(),
		doctorcmd.New(ctx).Cmd(),
		versioncmd.New(),
	)

	return root
}

// Execute runs root with args. cobra registers hidden shell-completion
// request commands on every root; in the first position they are treated
// like any other discarded word, so they are rewritten to "start".
func Execute(ctx context.Context, root *cobra.Command, args []string) error {
	fwd := make([]string, 0, len(args))
	if len(args) > 0 && isCompletionRequest(args[0]) {
		fwd = append(fwd, "start")
		fwd = append(fwd, args[1:]...)
	} else {
		fwd = append(fwd, args...)
	}
	root.SetArgs(fwd)
	return root.ExecuteContext(ctx)
}

func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

func isHelp(arg string) bool {
	return arg == "help" || arg == "-h" || arg == "--help"
}

// ExitCode maps an Execute error to the process exit code, printing launcher
// errors to stderr. The launched program's own status passes through silently.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *shared.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if !errors.Is(err, shared.ErrUsage) {
		fmt.Fprintln(stderr, err)
	}
	return 1
}
