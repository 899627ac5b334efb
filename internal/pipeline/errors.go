package pipeline

import (
	"fmt"

	"github.com/specialistvlad/p4cdriver/internal/stage"
)

// ExecutableNotFoundError reports a stage executable that is neither an
// absolute path nor found on PATH.
type ExecutableNotFoundError struct {
	Stage      stage.Name
	Executable string
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("%s: command not found", e.Executable)
}

// SpawnError reports a stage process that could not be started at all.
type SpawnError struct {
	Stage   stage.Name
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("error invoking %s: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// StageExecutionError reports a stage that exited with a non-zero status.
type StageExecutionError struct {
	Stage    stage.Name
	ExitCode int
}

func (e *StageExecutionError) Error() string {
	return fmt.Sprintf("%s failed with exit status %d", e.Stage, e.ExitCode)
}
