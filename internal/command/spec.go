package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/specialistvlad/p4cdriver/internal/config"
	"github.com/specialistvlad/p4cdriver/internal/ctxlog"
	"github.com/specialistvlad/p4cdriver/internal/stage"
)

// PipelineSpec is everything the executor needs for one run. It is built once
// and never mutated afterwards.
type PipelineSpec struct {
	Backend    string // the identifier the user asked for
	Pattern    string // the registry pattern it resolved to
	Commands   [stage.Count]Command
	Enablement stage.Enablement
	DryRun     bool
	Verbose    bool
}

// Build assembles the four stage commands for a resolved toolchain.
func Build(ctx context.Context, backendID string, tc *config.Toolchain, opts Options, mode stage.ModeFlags, dryRun bool) (*PipelineSpec, error) {
	logger := ctxlog.FromContext(ctx)

	derived := Derive(opts)
	spec := &PipelineSpec{
		Backend:    backendID,
		Pattern:    tc.Pattern,
		Enablement: stage.Gate(mode),
		DryRun:     dryRun,
		Verbose:    opts.Verbose,
	}

	for _, n := range stage.All {
		cmd, err := Assemble(n, tc.Executable(n), Sources{
			PassThrough: opts.PassThrough[n],
			Derived:     derived[n],
			Defaults:    tc.Options[n],
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}
		spec.Commands[n] = cmd
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("Pipeline assembled.", "spec", spew.Sdump(spec))
	}
	return spec, nil
}
