// Package envcmd implements the `jasper env` command.
package envcmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/jasper/cmd/jasper/shared"
	"github.com/go-ports/jasper/internal/launcher"
	"github.com/go-ports/jasper/internal/redaction"
)

// Command implements `jasper env`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	output string
	all    bool
}

// New creates the env command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "env",
		Short: "Show how the Jasper virtualenv and target are resolved",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	f := c.cmd.Flags()
	f.StringVarP(&c.output, "output", "o", "yaml", "Output format: yaml | json")
	f.BoolVar(&c.all, "all", false, "Include the activated environment (secrets redacted)")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

type report struct {
	EnvironmentRoot  string   `yaml:"environment_root" json:"environment_root"`
	Source           string   `yaml:"source" json:"source"`
	ActivationScript string   `yaml:"activation_script" json:"activation_script"`
	Activated        bool     `yaml:"activated" json:"activated"`
	TargetScript     string   `yaml:"target_script" json:"target_script"`
	Interpreter      string   `yaml:"interpreter,omitempty" json:"interpreter,omitempty"`
	Error            string   `yaml:"error,omitempty" json:"error,omitempty"`
	Environment      []string `yaml:"environment,omitempty" json:"environment,omitempty"`
}

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	if c.output != "yaml" && c.output != "json" {
		return fmt.Errorf("env: unknown output format %q", c.output)
	}

	lc, err := c.ctx.NewLaunch(nil)
	if err != nil {
		return err
	}
	r := report{
		EnvironmentRoot:  lc.EnvironmentRoot,
		Source:           string(lc.Source),
		ActivationScript: launcher.ActivateScript(lc.EnvironmentRoot),
		TargetScript:     lc.TargetScript,
	}
	if err := lc.ActivateOnce(); err != nil {
		r.Error = err.Error()
	} else {
		r.Activated = true
		if python, err := lc.Interpreter(); err == nil {
			r.Interpreter = python
		} else {
			r.Error = err.Error()
		}
		if c.all {
			r.Environment = redaction.RedactEnv(lc.Env())
		}
	}

	out := cmd.OutOrStdout()
	if c.output == "json" {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}
	b, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(b))
	return nil
}
