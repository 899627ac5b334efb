package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/p4cdriver/internal/backend"
	"github.com/specialistvlad/p4cdriver/internal/command"
	"github.com/specialistvlad/p4cdriver/internal/config"
	"github.com/specialistvlad/p4cdriver/internal/ctxlog"
)

// state names the phases of a run, for logging.
type state string

const (
	stateResolving  state = "resolving"
	stateAssembling state = "assembling"
	stateExecuting  state = "executing"
	stateSucceeded  state = "success"
	stateFailed     state = "failed"
)

// Run executes one driver invocation. The returned error, if any, has already
// been reported to the user; ExitCode turns it into a process status.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config
	a.logger.Debug("App.Run method started.")

	reg, err := a.loader.Load(ctx, config.Vars{OutputDir: cfg.OutputDir, SourceFile: cfg.SourceFile}, cfg.ConfigPaths...)
	if err != nil {
		fmt.Fprintln(a.outW, err)
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Configuration loaded.", "backends", reg.Len())

	if cfg.ShowTargets {
		a.displaySupportedTargets(reg)
		return nil
	}

	a.transition(stateResolving)
	if _, err := backend.ParseIdentifier(cfg.Backend); err != nil {
		fmt.Fprintln(a.outW, "Invalid target-arch-vendor triplet.")
		a.displaySupportedTargets(reg)
		return a.fail(err)
	}
	if cfg.SourceFile == "" {
		fmt.Fprintln(a.outW, "error: no input specified")
		return a.fail(ErrNoInput)
	}

	pattern, err := backend.Resolve(ctx, cfg.Backend, reg.Patterns())
	if err != nil {
		var unknown *backend.UnknownError
		if errors.As(err, &unknown) {
			fmt.Fprintln(a.outW, "Unknown backend:", cfg.Backend)
			if len(unknown.Suggestions) > 0 {
				fmt.Fprintln(a.outW, "Did you mean:", unknown.Suggestions[0])
			}
		}
		return a.fail(err)
	}
	toolchain, err := toolchainFor(reg, pattern)
	if err != nil {
		fmt.Fprintln(a.outW, err)
		return a.fail(err)
	}

	if err := a.ensureOutputDir(ctx); err != nil {
		fmt.Fprintln(a.outW, err)
		return a.fail(err)
	}

	a.transition(stateAssembling)
	opts := cfg.Options
	if lang, ok := reg.Language(opts.Language); ok && lang.IncludePath != "" {
		opts.DefaultIncludePath = lang.IncludePath
	}
	if cfg.Mode.Conflicting() {
		a.logger.Warn("Several stage-limiting flags given; using the first of -E, -e, -S.", "mode", fmt.Sprintf("%+v", cfg.Mode))
	}

	spec, err := command.Build(ctx, cfg.Backend, toolchain, opts, cfg.Mode, cfg.DryRun)
	if err != nil {
		fmt.Fprintln(a.outW, err)
		return a.fail(err)
	}
	a.logger.Debug("Stages gated.", "enabled", spec.Enablement.String())

	a.transition(stateExecuting)
	results, err := a.executor.Run(ctx, spec)
	if err != nil {
		return a.fail(err)
	}

	a.logger.Debug("Pipeline finished.", "stages", len(results))
	a.transition(stateSucceeded)
	return nil
}

// toolchainFor fetches the toolchain registered under a resolved pattern.
func toolchainFor(reg *config.Registry, pattern string) (*config.Toolchain, error) {
	toolchain, ok := reg.Toolchain(pattern)
	if !ok {
		return nil, fmt.Errorf("no toolchain registered for backend pattern %q", pattern)
	}
	return toolchain, nil
}

func (a *App) transition(s state) {
	a.logger.Debug("Run state changed.", "state", s)
}

func (a *App) fail(err error) error {
	a.logger.Debug("Run state changed.", "state", stateFailed, "error", err, "exit_code", ExitCode(err))
	return err
}
