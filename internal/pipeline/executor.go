package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/p4cdriver/internal/command"
	"github.com/specialistvlad/p4cdriver/internal/ctxlog"
	"github.com/specialistvlad/p4cdriver/internal/stage"
)

// Status is the outcome of one stage.
type Status int

const (
	Skipped Status = iota
	Printed
	Executed
)

func (s Status) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case Printed:
		return "printed"
	case Executed:
		return "executed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result records what happened to one stage.
type Result struct {
	Stage    stage.Name
	Status   Status
	Output   []byte
	ExitCode int
}

// Executor runs a PipelineSpec. Diagnostics and stage output go to out.
type Executor struct {
	out     io.Writer
	locator Locator
	runner  Runner
}

// New creates an executor that uses the given collaborators.
func New(out io.Writer, locator Locator, runner Runner) *Executor {
	return &Executor{out: out, locator: locator, runner: runner}
}

// NewDefault creates an executor that searches PATH and spawns real processes.
func NewDefault(out io.Writer) *Executor {
	return New(out, PathLocator{}, ExecRunner{})
}

// Run executes the spec. It returns the results of every stage reached, and
// the first error, after which no further stage is started.
func (e *Executor) Run(ctx context.Context, spec *command.PipelineSpec) ([]Result, error) {
	logger := ctxlog.FromContext(ctx).With("backend", spec.Backend)

	// Every executable must resolve before anything is spawned, gated or not.
	for _, n := range stage.All {
		exe := spec.Commands[n].Executable()
		if err := e.locate(exe); err != nil {
			logger.Debug("Executable lookup failed.", "stage", n, "executable", exe, "error", err)
			fmt.Fprintf(e.out, "%s: command not found\n", exe)
			return nil, &ExecutableNotFoundError{Stage: n, Executable: exe}
		}
	}

	results := make([]Result, 0, stage.Count)
	for _, n := range stage.All {
		cmd := spec.Commands[n]

		if spec.DryRun {
			fmt.Fprintf(e.out, "%s: %s\n", n, cmd)
			results = append(results, Result{Stage: n, Status: Printed})
			continue
		}
		if !spec.Enablement.Enabled(n) {
			logger.Debug("Stage disabled, skipping.", "stage", n)
			results = append(results, Result{Stage: n, Status: Skipped})
			continue
		}

		if spec.Verbose {
			fmt.Fprintf(e.out, "running %s\n", cmd)
		}
		logger.Debug("Running stage.", "stage", n, "command", cmd.String())

		output, code, err := e.runner.Run(ctx, cmd.Args)
		if err != nil {
			fmt.Fprintf(e.out, "error invoking %s\n%v\n", cmd, err)
			return results, &SpawnError{Stage: n, Command: cmd.String(), Err: err}
		}

		results = append(results, Result{Stage: n, Status: Executed, Output: output, ExitCode: code})
		if err := e.echo(output); err != nil {
			logger.Debug("Could not forward stage output.", "stage", n, "error", err)
		}
		if code != 0 {
			logger.Debug("Stage failed.", "stage", n, "exit_code", code)
			return results, &StageExecutionError{Stage: n, ExitCode: code}
		}
	}

	return results, nil
}

// echo forwards captured stage output, terminated by a newline.
func (e *Executor) echo(output []byte) error {
	if len(output) == 0 {
		return nil
	}
	if _, err := e.out.Write(output); err != nil {
		return err
	}
	if !strings.HasSuffix(string(output), "\n") {
		if _, err := io.WriteString(e.out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// locate accepts absolute paths unchecked and resolves everything else on PATH.
func (e *Executor) locate(exe string) error {
	if exe == "" {
		return fmt.Errorf("empty executable name")
	}
	if filepath.IsAbs(exe) {
		return nil
	}
	_, err := e.locator.LookPath(exe)
	return err
}
