package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/p4cdriver/internal/config"
	"github.com/specialistvlad/p4cdriver/internal/ctxlog"
	"github.com/specialistvlad/p4cdriver/internal/pipeline"
)

// App encapsulates the driver's dependencies and configuration.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	executor *pipeline.Executor
}

// NewApp is the constructor for the driver. User-facing output goes to outW,
// logs to logW. A nil executor means real PATH lookups and real processes.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, executor *pipeline.Executor) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, cfg.Verbose, logW)
	if executor == nil {
		executor = pipeline.NewDefault(outW)
	}
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		executor: executor,
	}
}

// displaySupportedTargets prints every registered backend pattern.
func (a *App) displaySupportedTargets(reg *config.Registry) {
	fmt.Fprintln(a.outW, `Supported targets in "target-arch-vendor" triplet:`)
	for _, p := range reg.Patterns() {
		fmt.Fprintln(a.outW, p)
	}
}

// ensureOutputDir creates the output directory if it does not exist yet.
func (a *App) ensureOutputDir(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if err := os.MkdirAll(a.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	logger.Debug("Output directory ready.", "path", a.config.OutputDir)
	return nil
}
