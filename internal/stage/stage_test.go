package stage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		flags    ModeFlags
		expected Enablement
	}{
		{name: "default runs all", flags: ModeFlags{}, expected: Enablement{true, true, true, true}},
		{name: "preprocess only", flags: ModeFlags{PreprocessOnly: true}, expected: Enablement{true, false, false, false}},
		{name: "skip preprocessor", flags: ModeFlags{SkipPreprocessor: true}, expected: Enablement{false, true, true, true}},
		{name: "stop after compile", flags: ModeFlags{StopAfterCompile: true}, expected: Enablement{true, true, false, false}},
		{name: "-E beats -e", flags: ModeFlags{PreprocessOnly: true, SkipPreprocessor: true}, expected: PreprocessOnly},
		{name: "-e beats -S", flags: ModeFlags{SkipPreprocessor: true, StopAfterCompile: true}, expected: SkipPreprocessor},
		{name: "all set picks -E", flags: ModeFlags{true, true, true}, expected: PreprocessOnly},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, Gate(tc.flags))
		})
	}
}

func TestGate_IsTotal(t *testing.T) {
	t.Parallel()

	valid := map[Enablement]bool{PreprocessOnly: true, SkipPreprocessor: true, StopAfterCompile: true, RunAll: true}
	for i := 0; i < 8; i++ {
		flags := ModeFlags{PreprocessOnly: i&1 != 0, SkipPreprocessor: i&2 != 0, StopAfterCompile: i&4 != 0}
		require.True(t, valid[Gate(flags)], "flags %+v produced %v", flags, Gate(flags))
	}
}

func TestModeFlags_Conflicting(t *testing.T) {
	t.Parallel()

	require.False(t, ModeFlags{}.Conflicting())
	require.False(t, ModeFlags{StopAfterCompile: true}.Conflicting())
	require.True(t, ModeFlags{PreprocessOnly: true, StopAfterCompile: true}.Conflicting())
}

func TestName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "preprocessor", Preprocessor.String())
	require.Equal(t, "linker", Linker.String())
	require.Equal(t, "stage(7)", Name(7).String())

	n, ok := Parse("assembler")
	require.True(t, ok)
	require.Equal(t, Assembler, n)

	_, ok = Parse("optimizer")
	require.False(t, ok)
}

func TestEnablement_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[preprocessor compiler]", StopAfterCompile.String())
	require.True(t, RunAll.Enabled(Linker))
	require.False(t, PreprocessOnly.Enabled(Compiler))
}
