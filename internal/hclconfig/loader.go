package hclconfig

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/p4cdriver/internal/config"
	"github.com/specialistvlad/p4cdriver/internal/ctxlog"
	"github.com/specialistvlad/p4cdriver/internal/fsutil"
	"github.com/specialistvlad/p4cdriver/internal/stage"
)

// Extension is the suffix of configuration files.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	getenv func(string) string
}

// NewLoader creates a new HCL configuration loader that reads the process
// environment for env() calls.
func NewLoader() *Loader {
	return &Loader{getenv: os.Getenv}
}

// NewLoaderWithEnv creates a loader whose env() function reads from getenv.
func NewLoaderWithEnv(getenv func(string) string) *Loader {
	return &Loader{getenv: getenv}
}

// Load parses every .hcl file under paths and registers its blocks in file
// order. Paths that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, vars config.Vars, paths ...string) (*config.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(Extension, paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	reg := config.NewRegistry()
	parser := hclparse.NewParser()
	evalCtx := newEvalContext(vars, l.getenv)
	check := newValidator()

	for _, file := range files {
		logger.Debug("Loading config.", "file", file)

		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, b := range root.Backends {
			diags = append(diags, check.checkBackend(b)...)
		}
		for _, lang := range root.Languages {
			diags = append(diags, check.checkLanguage(lang)...)
		}
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid configuration in %s: %w", file, diags)
		}

		for _, b := range root.Backends {
			if err := reg.AddToolchain(translateBackend(b)); err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
		}
		for _, lang := range root.Languages {
			if err := reg.AddLanguage(&config.Language{Name: lang.Name, IncludePath: lang.IncludePath}); err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
		}
	}

	logger.Debug("HCL loading complete.", "backends", reg.Len())
	return reg, nil
}

// translateBackend converts the HCL-specific backend schema into the agnostic model.
func translateBackend(b *backendBlock) *config.Toolchain {
	t := &config.Toolchain{Pattern: b.Pattern}
	t.Executables[stage.Preprocessor] = b.Preprocessor
	t.Executables[stage.Compiler] = b.Compiler
	t.Executables[stage.Assembler] = b.Assembler
	t.Executables[stage.Linker] = b.Linker
	if b.Options != nil {
		t.Options[stage.Preprocessor] = b.Options.Preprocessor
		t.Options[stage.Compiler] = b.Options.Compiler
		t.Options[stage.Assembler] = b.Options.Assembler
		t.Options[stage.Linker] = b.Options.Linker
	}
	return t
}
