package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every configuration file under the given paths and returns
	// the populated registry. vars supplies the per-invocation values that
	// configuration expressions may reference.
	Load(ctx context.Context, vars Vars, paths ...string) (*Registry, error)
}

// Vars are the per-invocation values exposed to configuration expressions.
type Vars struct {
	OutputDir  string
	SourceFile string
}
