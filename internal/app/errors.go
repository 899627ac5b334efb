package app

import (
	"errors"

	"github.com/specialistvlad/p4cdriver/internal/pipeline"
)

// ErrNoInput is returned when a compilation is requested without a source file.
var ErrNoInput = errors.New("no input specified")

// ExitCode maps a run error to the driver's process exit status. A failing
// stage propagates its own status; every other failure is 1, except a missing
// input which is a usage error (2).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrNoInput) {
		return 2
	}
	var stageErr *pipeline.StageExecutionError
	if errors.As(err, &stageErr) && stageErr.ExitCode > 0 {
		return stageErr.ExitCode
	}
	return 1
}
