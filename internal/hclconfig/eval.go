package hclconfig

import (
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/p4cdriver/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// newEvalContext exposes the invocation variables and the env() function to
// configuration expressions.
func newEvalContext(vars config.Vars, getenv func(string) string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"output_dir":      cty.StringVal(vars.OutputDir),
			"source_file":     cty.StringVal(vars.SourceFile),
			"source_basename": cty.StringVal(basename(vars.SourceFile)),
		},
		Functions: map[string]function.Function{
			"env": envFunc(getenv),
		},
	}
}

// basename strips the directory and the final extension: /tmp/x.p4 -> x.
func basename(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func envFunc(getenv func(string) string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.StringVal(getenv(args[0].AsString())), nil
		},
	})
}
