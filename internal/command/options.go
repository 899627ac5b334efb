package command

import (
	"strings"

	"github.com/specialistvlad/p4cdriver/internal/stage"
)

// Options are the user-facing switches that feed command assembly.
type Options struct {
	// PassThrough holds the -Xpreprocessor/-Xp4c/-Xassembler/-Xlinker values.
	PassThrough [stage.Count][]string

	Defines      []string // -D
	IncludePaths []string // -I
	DebugInfo    bool     // -g
	Verbose      bool     // -v

	// Language is the dialect selected with -x, e.g. "p4-16".
	Language string
	// DefaultIncludePath is the language's standard include directory.
	DefaultIncludePath string

	P4RuntimeFile   string
	P4RuntimeFormat string

	// Developer options.
	LogLevels   []string // -T
	Passes      []string // --top4
	DumpDir     string
	JSONFile    string
	PrettyPrint string
}

const verboseFlag = "-vvv"

// Derive translates the high-level options into per-stage fragments.
func Derive(o Options) [stage.Count][]Fragment {
	var d [stage.Count][]Fragment
	add := func(f Fragment, stages ...stage.Name) {
		for _, n := range stages {
			d[n] = append(d[n], f)
		}
	}

	for _, level := range o.LogLevels {
		add(Raw("-T"+quote(level)), stage.Compiler)
	}
	if len(o.Passes) > 0 {
		add(Raw("--top4 "+quote(strings.Join(o.Passes, ","))), stage.Compiler)
	}
	if o.Verbose {
		add(Raw(verboseFlag), stage.Compiler, stage.Assembler)
	}
	if o.DumpDir != "" {
		add(Raw("--dump "+quote(o.DumpDir)), stage.Compiler)
	}
	if o.JSONFile != "" {
		add(Raw("--toJSON "+quote(o.JSONFile)), stage.Compiler)
	}
	if o.PrettyPrint != "" {
		add(Raw("--pp "+quote(o.PrettyPrint)), stage.Compiler)
	}
	if o.DebugInfo {
		add(Raw("-g"), stage.Compiler, stage.Assembler, stage.Linker)
	}

	for _, def := range o.Defines {
		add(Raw("-D"+quote(def)), stage.Preprocessor, stage.Compiler)
	}
	if o.DefaultIncludePath != "" {
		add(Raw("-I "+quote(o.DefaultIncludePath)), stage.Preprocessor, stage.Compiler)
	}
	for _, path := range o.IncludePaths {
		add(Literal("-I"), stage.Preprocessor, stage.Compiler)
		add(Literal(path), stage.Preprocessor, stage.Compiler)
	}
	if v := languageVersion(o.Language); v != "" {
		add(Raw("--p4v="+v), stage.Compiler)
	}

	if o.P4RuntimeFile != "" {
		add(Raw("--p4runtime-file "+quote(o.P4RuntimeFile)), stage.Compiler)
		if o.P4RuntimeFormat != "" {
			add(Raw("--p4runtime-format "+quote(o.P4RuntimeFormat)), stage.Compiler)
		}
	}

	return d
}

// languageVersion maps "p4-16" to "16".
func languageVersion(lang string) string {
	return strings.TrimPrefix(lang, "p4-")
}
