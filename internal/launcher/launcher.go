// Package launcher activates the Jasper virtualenv and runs the Jasper program
// inside it.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/go-ports/jasper/internal/config"
)

// TargetScriptName is the Jasper entry point the launcher runs.
const TargetScriptName = "jasper.py"

// Interpreter is the program name used to run the target script.
const Interpreter = "python"

// Result is the outcome of a launch.
type Result struct {
	ExitCode int
}

// LaunchContext holds everything needed for a single launch. The environment
// root is fixed at construction; activation happens at most once.
type LaunchContext struct {
	EnvironmentRoot string
	Source          config.Source
	TargetScript    string
	Args            []string

	activator Activator
	activated bool
	env       []string
}

// New creates a LaunchContext. A nil activator means Virtualenv{}.
func New(res config.Resolution, targetScript string, args []string, activator Activator) *LaunchContext {
	if activator == nil {
		activator = Virtualenv{}
	}
	if args == nil {
		args = []string{}
	}
	return &LaunchContext{
		EnvironmentRoot: res.Path,
		Source:          res.Source,
		TargetScript:    targetScript,
		Args:            args,
		activator:       activator,
	}
}

// ForwardedArgs drops the first invocation argument and returns the rest unchanged.
func ForwardedArgs(argv []string) []string {
	if len(argv) <= 1 {
		return []string{}
	}
	out := make([]string, len(argv)-1)
	copy(out, argv[1:])
	return out
}

// DefaultTargetScript returns jasper.py next to the running executable.
func DefaultTargetScript() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate launcher: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), TargetScriptName), nil
}

// Activated reports whether ActivateOnce has succeeded.
func (lc *LaunchContext) Activated() bool { return lc.activated }

// Env returns the activated environment, or nil before activation.
func (lc *LaunchContext) Env() []string { return lc.env }

// ActivateOnce activates the environment root on the first successful call;
// later calls do nothing.
func (lc *LaunchContext) ActivateOnce() error {
	if lc.activated {
		return nil
	}
	env, err := lc.activator.Activate(lc.EnvironmentRoot)
	if err != nil {
		return err
	}
	lc.env = env
	lc.activated = true
	slog.Debug("activated environment", "root", lc.EnvironmentRoot, "source", lc.Source)
	return nil
}

// Interpreter returns the python used to run the target: <root>/bin/python
// when present, otherwise the first python on the activated PATH.
func (lc *LaunchContext) Interpreter() (string, error) {
	candidate := filepath.Join(BinDir(lc.EnvironmentRoot), Interpreter)
	if p, err := exec.LookPath(candidate); err == nil {
		return p, nil
	}
	for _, dir := range filepath.SplitList(lookupEnv(lc.env, "PATH")) {
		if dir == "" {
			continue
		}
		if p, err := exec.LookPath(filepath.Join(dir, Interpreter)); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: no %s in %s or PATH", ErrInterpreterNotFound, Interpreter, BinDir(lc.EnvironmentRoot))
}

// Command builds the invocation for the target script. It activates the
// environment if that has not happened yet.
func (lc *LaunchContext) Command() (Command, error) {
	if err := lc.ActivateOnce(); err != nil {
		return Command{}, err
	}
	info, err := os.Stat(lc.TargetScript)
	if err != nil || info.IsDir() {
		return Command{}, fmt.Errorf("%w: %s", ErrTargetNotFound, lc.TargetScript)
	}
	python, err := lc.Interpreter()
	if err != nil {
		return Command{}, err
	}
	args := make([]string, 0, len(lc.Args)+1)
	args = append(args, lc.TargetScript)
	args = append(args, lc.Args...)
	return Command{Path: python, Args: args, Env: lc.env}, nil
}

// Launch activates the environment if needed and runs the target script with
// the forwarded arguments. The child's exit code is returned as-is.
func (lc *LaunchContext) Launch(ctx context.Context, runner Runner) (Result, error) {
	cmd, err := lc.Command()
	if err != nil {
		return Result{}, err
	}
	slog.Debug("launching", "python", cmd.Path, "args", cmd.Args)
	code, err := runner.Run(ctx, cmd)
	if err != nil {
		return Result{}, err
	}
	return Result{ExitCode: code}, nil
}
