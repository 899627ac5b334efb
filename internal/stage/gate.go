package stage

import "strings"

// ModeFlags are the mutually exclusive stage-limiting switches of the CLI.
type ModeFlags struct {
	PreprocessOnly   bool // -E
	SkipPreprocessor bool // -e
	StopAfterCompile bool // -S
}

// Enablement says, per stage in execution order, whether the stage runs.
type Enablement [Count]bool

// Enabled reports whether the given stage is switched on.
func (e Enablement) Enabled(n Name) bool {
	return e[n]
}

func (e Enablement) String() string {
	var parts []string
	for _, n := range All {
		if e[n] {
			parts = append(parts, n.String())
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

var (
	PreprocessOnly   = Enablement{true, false, false, false}
	SkipPreprocessor = Enablement{false, true, true, true}
	StopAfterCompile = Enablement{true, true, false, false}
	RunAll           = Enablement{true, true, true, true}
)

// Gate picks the enablement vector for a set of mode flags. The first flag set,
// in the order -E, -e, -S, wins; contradictory combinations are not rejected.
func Gate(m ModeFlags) Enablement {
	switch {
	case m.PreprocessOnly:
		return PreprocessOnly
	case m.SkipPreprocessor:
		return SkipPreprocessor
	case m.StopAfterCompile:
		return StopAfterCompile
	default:
		return RunAll
	}
}

// Conflicting reports whether more than one mode flag is set. The driver only
// logs this, keeping the priority order above authoritative.
func (m ModeFlags) Conflicting() bool {
	n := 0
	for _, set := range []bool{m.PreprocessOnly, m.SkipPreprocessor, m.StopAfterCompile} {
		if set {
			n++
		}
	}
	return n > 1
}
