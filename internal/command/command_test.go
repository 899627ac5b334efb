package command

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/p4cdriver/internal/config"
	"github.com/specialistvlad/p4cdriver/internal/stage"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw      string
		expected []string
	}{
		{raw: "-O2", expected: []string{"-O2"}},
		{raw: "--emit json  -o out", expected: []string{"--emit", "json", "-o", "out"}},
		{raw: `-DMSG="hello world"`, expected: []string{"-DMSG=hello world"}},
		{raw: `'a b' c\ d`, expected: []string{"a b", "c d"}},
		{raw: `-I '/opt/my dir'`, expected: []string{"-I", "/opt/my dir"}},
		{raw: "-DF(x)=x", expected: []string{"-DF(x)=x"}},
		{raw: "-DMAX(a,b)=a", expected: []string{"-DMAX(a,b)=a"}},
		{raw: "a;b", expected: []string{"a;b"}},
		{raw: "a&b", expected: []string{"a&b"}},
		{raw: "--define=A&B x|y <in >out", expected: []string{"--define=A&B", "x|y", "<in", ">out"}},
		{raw: `"a\qb"`, expected: []string{`a\qb`}},
		{raw: `"a\"b"`, expected: []string{`a"b`}},
		{raw: "$HOME", expected: []string{"$HOME"}},
		{raw: "", expected: []string{}},
	}

	for _, tc := range testCases {
		got, err := Tokenize(tc.raw)
		require.NoError(t, err, "raw %q", tc.raw)
		if diff := cmp.Diff(tc.expected, got, cmpEmpty); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tc.raw, diff)
		}
	}
}

// cmpEmpty treats nil and empty slices as equal.
var cmpEmpty = cmp.Comparer(func(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
})

func TestTokenize_SyntaxErrors(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`"unterminated`, `'open`, `-a 'b`, `trailing\`} {
		_, err := Tokenize(raw)
		var syntaxErr *OptionSyntaxError
		require.True(t, errors.As(err, &syntaxErr), "expected OptionSyntaxError for %q, got %v", raw, err)
		require.Equal(t, raw, syntaxErr.Option)
	}
}

func TestQuote_RoundTrips(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"plain", "/opt/my dir", "it's", `a"b`, "x;y", "MAX(a,b)=a", `back\slash`, ""} {
		words, err := Tokenize("-X " + quote(s))
		require.NoError(t, err)
		require.Equal(t, []string{"-X", s}, words)
	}
}

func TestDerive_QuotesValuesWithShellCharacters(t *testing.T) {
	t.Parallel()

	cmd, err := Assemble(stage.Preprocessor, "cc", Sources{
		Derived: Derive(Options{Defines: []string{"MAX(a,b)=a", "A&B"}})[stage.Preprocessor],
	})
	require.NoError(t, err)
	require.Equal(t, []string{"cc", "-DMAX(a,b)=a", "-DA&B"}, cmd.Args)
}

func TestAssemble_PrecedenceOrder(t *testing.T) {
	t.Parallel()

	cmd, err := Assemble(stage.Compiler, "p4c-bm2-ss", Sources{
		PassThrough: []string{"--arch v1model", "-O1"},
		Derived:     []Fragment{Raw("-g"), Literal("-I"), Literal("/opt/my dir")},
		Defaults:    []string{"-o 'out dir/x.json'"},
	})
	require.NoError(t, err)

	expected := []string{
		"p4c-bm2-ss",
		"--arch", "v1model", "-O1",
		"-g", "-I", "/opt/my dir",
		"-o", "out dir/x.json",
	}
	require.Equal(t, expected, cmd.Args)
	require.Equal(t, "p4c-bm2-ss", cmd.Executable())
	require.Equal(t, stage.Compiler, cmd.Stage)
}

func TestAssemble_NeverDeduplicates(t *testing.T) {
	t.Parallel()

	src := Sources{
		PassThrough: []string{"-g", "-g"},
		Derived:     []Fragment{Raw("-g")},
		Defaults:    []string{"-g"},
	}
	first, err := Assemble(stage.Linker, "ld", src)
	require.NoError(t, err)
	second, err := Assemble(stage.Linker, "ld", src)
	require.NoError(t, err)

	require.Equal(t, []string{"ld", "-g", "-g", "-g", "-g"}, first.Args)
	require.Equal(t, first, second)
}

func TestAssemble_PropagatesSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Assemble(stage.Assembler, "as", Sources{Defaults: []string{`"oops`}})
	var syntaxErr *OptionSyntaxError
	require.True(t, errors.As(err, &syntaxErr))
}

func TestDerive(t *testing.T) {
	t.Parallel()

	d := Derive(Options{
		Defines:            []string{"FOO=1", "BAR"},
		IncludePaths:       []string{"inc", "/opt/my dir"},
		DebugInfo:          true,
		Verbose:            true,
		Language:           "p4-16",
		DefaultIncludePath: "/usr/share/p4c/p4include",
		P4RuntimeFile:      "out.p4info",
		P4RuntimeFormat:    "text",
		LogLevels:          []string{"parser:3", "midend:1"},
		Passes:             []string{"Frontend", "MidEnd"},
		DumpDir:            "dump",
		JSONFile:           "ir.json",
		PrettyPrint:        "pp.p4",
	})

	expected := [stage.Count][]Fragment{
		stage.Preprocessor: {
			Raw("-DFOO=1"), Raw("-DBAR"),
			Raw("-I /usr/share/p4c/p4include"),
			Literal("-I"), Literal("inc"), Literal("-I"), Literal("/opt/my dir"),
		},
		stage.Compiler: {
			Raw("-Tparser:3"), Raw("-Tmidend:1"),
			Raw("--top4 Frontend,MidEnd"),
			Raw("-vvv"),
			Raw("--dump dump"), Raw("--toJSON ir.json"), Raw("--pp pp.p4"),
			Raw("-g"),
			Raw("-DFOO=1"), Raw("-DBAR"),
			Raw("-I /usr/share/p4c/p4include"),
			Literal("-I"), Literal("inc"), Literal("-I"), Literal("/opt/my dir"),
			Raw("--p4v=16"),
			Raw("--p4runtime-file out.p4info"), Raw("--p4runtime-format text"),
		},
		stage.Assembler: {Raw("-vvv"), Raw("-g")},
		stage.Linker:    {Raw("-g")},
	}

	if diff := cmp.Diff(expected, d); diff != "" {
		t.Errorf("Derive mismatch (-want +got):\n%s", diff)
	}
}

func TestDerive_Minimal(t *testing.T) {
	t.Parallel()

	d := Derive(Options{Language: "p4-14"})
	require.Empty(t, d[stage.Preprocessor])
	require.Equal(t, []Fragment{Raw("--p4v=14")}, d[stage.Compiler])
	require.Empty(t, d[stage.Assembler])
	require.Empty(t, d[stage.Linker])
}

func testToolchain() *config.Toolchain {
	tc := &config.Toolchain{
		Pattern:     "bmv2-*-p4org",
		Executables: [stage.Count]string{"cc", "p4c-bm2-ss", "true", "true"},
	}
	tc.Options[stage.Preprocessor] = []string{"-E -x c /tmp/x.p4"}
	tc.Options[stage.Compiler] = []string{"-o out/x.json"}
	return tc
}

func TestBuild(t *testing.T) {
	t.Parallel()

	opts := Options{Language: "p4-16", Defines: []string{"X"}}
	opts.PassThrough[stage.Compiler] = []string{"--emit-externs"}
	opts.PassThrough[stage.Linker] = []string{"-static"}

	spec, err := Build(context.Background(), "bmv2-ss-p4org", testToolchain(), opts, stage.ModeFlags{PreprocessOnly: true}, false)
	require.NoError(t, err)

	require.Equal(t, "bmv2-ss-p4org", spec.Backend)
	require.Equal(t, "bmv2-*-p4org", spec.Pattern)
	require.Equal(t, stage.PreprocessOnly, spec.Enablement)
	require.Equal(t, "cc -DX -E -x c /tmp/x.p4", spec.Commands[stage.Preprocessor].String())
	require.Equal(t, "p4c-bm2-ss --emit-externs -DX --p4v=16 -o out/x.json", spec.Commands[stage.Compiler].String())
	require.Equal(t, "true", spec.Commands[stage.Assembler].String())
	require.Equal(t, "true -static", spec.Commands[stage.Linker].String())
}

func TestBuild_ReportsFailingStage(t *testing.T) {
	t.Parallel()

	opts := Options{}
	opts.PassThrough[stage.Assembler] = []string{`'broken`}

	_, err := Build(context.Background(), "bmv2-ss-p4org", testToolchain(), opts, stage.ModeFlags{}, false)
	require.ErrorContains(t, err, "assembler:")
	var syntaxErr *OptionSyntaxError
	require.True(t, errors.As(err, &syntaxErr))
}
