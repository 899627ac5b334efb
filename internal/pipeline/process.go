package pipeline

import (
	"context"
	"errors"
	"os/exec"
)

// Locator resolves an executable name the way a shell would.
type Locator interface {
	LookPath(file string) (string, error)
}

// Runner starts one stage process, waits for it and returns its combined
// stdout/stderr and exit status. err is non-nil only when the process could
// not be started or waited on.
type Runner interface {
	Run(ctx context.Context, args []string) (output []byte, exitCode int, err error)
}

// PathLocator searches the PATH environment variable.
type PathLocator struct{}

func (PathLocator) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// ExecRunner runs stages as child processes. Cancelling ctx kills the
// running stage.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, args []string) ([]byte, int, error) {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, exitErr.ExitCode(), nil
		}
		return out, -1, err
	}
	return out, 0, nil
}
