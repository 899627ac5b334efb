package app

import (
	"errors"

	"github.com/specialistvlad/p4cdriver/internal/command"
	"github.com/specialistvlad/p4cdriver/internal/stage"
)

// Version is reported by -V/--version.
var Version = "0.1.0"

// DefaultBackend is used when no -b/--target is given.
const DefaultBackend = "bmv2-ss-p4org"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SourceFile  string
	Backend     string
	ConfigPaths []string // directories or files holding .hcl registry files
	OutputDir   string

	Mode        stage.ModeFlags
	DryRun      bool
	Verbose     bool
	ShowTargets bool

	// Options feeds command assembly. Its DefaultIncludePath is only a
	// fallback: a language block in the registry takes precedence.
	Options command.Options

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Backend == "" {
		cfg.Backend = DefaultBackend
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Options.Language == "" {
		return nil, errors.New("a source language is required")
	}
	return &cfg, nil
}
