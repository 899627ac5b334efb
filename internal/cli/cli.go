package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/specialistvlad/p4cdriver/internal/app"
	"github.com/specialistvlad/p4cdriver/internal/stage"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

var (
	languages        = []string{"p4-14", "p4-16"}
	p4runtimeFormats = []string{"binary", "json", "text"}
)

// includePathEnv names the environment variable holding a language's standard
// include directory.
func includePathEnv(language string) string {
	return "P4C_" + strings.TrimPrefix(language, "p4-") + "_INCLUDE_PATH"
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// getenv supplies P4C_CFG_PATH and the include path fallbacks.
func Parse(args []string, output io.Writer, getenv func(string) string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("p4c", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
p4c - P4 compiler driver

Usage:
  p4c [options] [SOURCE_FILE]

Arguments:
  SOURCE_FILE
    The P4 program to compile.

Options:
`)
		flagSet.PrintDefaults()
	}

	var (
		showVersion, verbose, dryRun                bool
		preprocessOnly, skipPreprocessor, stopAfter bool
		runAll, debugInfo, targetHelp               bool
		backend                                     string
		passThrough                                 [stage.Count]stringList
		defines, includes, logLevels, passes        stringList
		configPaths                                 stringList
	)

	flagSet.BoolVar(&showVersion, "V", false, "Show version and exit.")
	flagSet.BoolVar(&showVersion, "version", false, "Show version and exit.")
	flagSet.BoolVar(&verbose, "v", false, "Verbose.")
	flagSet.BoolVar(&verbose, "debug", false, "Verbose.")
	flagSet.BoolVar(&dryRun, "###", false, "Print (but do not run) the commands.")
	flagSet.BoolVar(&dryRun, "test-only", false, "Print (but do not run) the commands.")
	flagSet.Var(&passThrough[stage.Preprocessor], "Xpreprocessor", "Pass `arg` to the preprocessor.")
	flagSet.Var(&passThrough[stage.Compiler], "Xp4c", "Pass `arg` to the compiler.")
	flagSet.Var(&passThrough[stage.Assembler], "Xassembler", "Pass `arg` to the assembler.")
	flagSet.Var(&passThrough[stage.Linker], "Xlinker", "Pass `arg` to the linker.")
	flagSet.StringVar(&backend, "b", app.DefaultBackend, "Specify target backend.")
	flagSet.StringVar(&backend, "target", app.DefaultBackend, "Specify target backend.")
	flagSet.BoolVar(&runAll, "c", true, "Run all steps: preprocess, compile, assemble and link (the default).")
	flagSet.Var(&defines, "D", "Define a `macro` to be used by the preprocessor.")
	flagSet.BoolVar(&preprocessOnly, "E", false, "Only run the preprocessor.")
	flagSet.BoolVar(&skipPreprocessor, "e", false, "Skip the preprocessor.")
	flagSet.BoolVar(&debugInfo, "g", false, "Generate debug information.")
	flagSet.Var(&includes, "I", "Add `directory` to include search path.")
	outputDir := flagSet.String("o", ".", "Write output to the provided `path`.")
	p4runtimeFile := flagSet.String("p4runtime-file", "", "Write a P4Runtime control plane API description to the specified `file`.")
	p4runtimeFormat := flagSet.String("p4runtime-format", "binary", "Choose output format for the P4Runtime API description: binary, json or text.")
	flagSet.BoolVar(&targetHelp, "target-help", false, "Display the supported targets.")
	flagSet.BoolVar(&stopAfter, "S", false, "Only run the preprocess and compilation steps.")
	language := flagSet.String("x", "p4-16", "Treat input files as having type `language`: p4-14 or p4-16.")

	flagSet.Var(&logLevels, "T", "[Compiler debugging] Adjust logging `level` per file.")
	flagSet.Var(&passes, "top4", "[Compiler debugging] Dump the P4 representation after passes whose name contains `pass`.")
	dumpDir := flagSet.String("dump", "", "[Compiler debugging] Folder where P4 programs are dumped.")
	jsonFile := flagSet.String("toJson", "", "[Compiler debugging] Dump IR to JSON in the specified file.")
	prettyPrint := flagSet.String("pp", "", "[Compiler debugging] Pretty-print the program in the specified file.")

	flagSet.Var(&configPaths, "config-path", "Directory with .hcl backend configuration (default $P4C_CFG_PATH).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	positional, err := parseInterleaved(flagSet, splitAttached(flagSet, args))
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if showVersion {
		fmt.Fprintf(output, "p4c %s\n", app.Version)
		return nil, true, nil
	}

	if len(positional) > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unrecognized arguments: %s", strings.Join(positional[1:], " "))}
	}
	source := ""
	if len(positional) == 1 {
		source = positional[0]
	}

	if !slices.Contains(languages, *language) {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid language %q: must be one of %s", *language, strings.Join(languages, ", "))}
	}
	if !slices.Contains(p4runtimeFormats, *p4runtimeFormat) {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid p4runtime-format %q: must be one of %s", *p4runtimeFormat, strings.Join(p4runtimeFormats, ", "))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	if len(configPaths) == 0 {
		if env := getenv("P4C_CFG_PATH"); env != "" {
			configPaths = append(configPaths, env)
		}
	}

	cfg := app.Config{
		SourceFile:  source,
		Backend:     backend,
		ConfigPaths: configPaths,
		OutputDir:   *outputDir,
		Mode: stage.ModeFlags{
			PreprocessOnly:   preprocessOnly,
			SkipPreprocessor: skipPreprocessor,
			StopAfterCompile: stopAfter,
		},
		DryRun:      dryRun,
		Verbose:     verbose,
		ShowTargets: targetHelp,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	}
	for _, n := range stage.All {
		cfg.Options.PassThrough[n] = passThrough[n]
	}
	cfg.Options.Defines = defines
	cfg.Options.IncludePaths = includes
	cfg.Options.DebugInfo = debugInfo
	cfg.Options.Verbose = verbose
	cfg.Options.Language = *language
	cfg.Options.DefaultIncludePath = getenv(includePathEnv(*language))
	cfg.Options.P4RuntimeFile = *p4runtimeFile
	cfg.Options.P4RuntimeFormat = *p4runtimeFormat
	cfg.Options.LogLevels = logLevels
	cfg.Options.Passes = passes
	cfg.Options.DumpDir = *dumpDir
	cfg.Options.JSONFile = *jsonFile
	cfg.Options.PrettyPrint = *prettyPrint

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "backend", config.Backend, "source", config.SourceFile)
	return config, false, nil
}

// parseInterleaved parses flags that may appear before and after positional
// arguments, returning the positionals in order.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		// flag stops at "--"; everything after it is positional.
		if len(args) > len(rest) && args[len(args)-len(rest)-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}
