// Package doctorcmd implements the `jasper doctor` command.
package doctorcmd

import (
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/go-ports/jasper/cmd/jasper/shared"
	"github.com/go-ports/jasper/internal/config"
	"github.com/go-ports/jasper/internal/diagnose"
	"github.com/go-ports/jasper/internal/launcher"
)

// ErrChecksFailed is returned when a required check does not pass.
var ErrChecksFailed = errors.New("doctor: required checks failed")

// optionalExecutables are the audio and speech tools Jasper's engines call.
var optionalExecutables = []string{"aplay", "espeak", "julius", "pocketsphinx_continuous"}

// Command implements `jasper doctor`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the doctor command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "doctor",
		Short: "Check that the virtualenv, interpreter and jasper.py are in place",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	report, err := c.collect()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	table := tablewriter.NewWriter(out)
	table.Header("Check", "Status", "Detail")
	for _, ch := range report.Checks {
		table.Append([]string{ch.Name, ch.Status(), ch.Detail})
	}
	if err := table.Render(); err != nil {
		return err
	}

	if report.Failed() {
		return ErrChecksFailed
	}
	fmt.Fprintln(out, "All required checks passed.")
	return nil
}

func (c *Command) collect() (*diagnose.Report, error) {
	lc, err := c.ctx.NewLaunch(nil)
	if err != nil {
		return nil, err
	}
	root := lc.EnvironmentRoot

	report := &diagnose.Report{}
	rootCheck := diagnose.CheckDir("environment root", root, true)
	rootCheck.Detail = fmt.Sprintf("%s (%s)", root, lc.Source)
	report.Add(
		rootCheck,
		diagnose.CheckFile("activation script", launcher.ActivateScript(root), true),
	)

	python := diagnose.Check{Name: "python", Required: true}
	if err := lc.ActivateOnce(); err != nil {
		python.Detail = err.Error()
	} else if p, err := lc.Interpreter(); err != nil {
		python.Detail = err.Error()
	} else {
		python.OK, python.Detail = true, p
	}
	report.Add(
		python,
		diagnose.CheckFile("target script", lc.TargetScript, true),
		diagnose.CheckFile("jasper profile", config.ProfilePath(c.ctx.LookupEnv), false),
	)
	for _, name := range optionalExecutables {
		report.Add(diagnose.CheckExecutable(name, false))
	}
	return report, nil
}
