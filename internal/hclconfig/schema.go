package hclconfig

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Backends  []*backendBlock  `hcl:"backend,block"`
	Languages []*languageBlock `hcl:"language,block"`
}

type backendBlock struct {
	Pattern      string        `hcl:"pattern,label"`
	Preprocessor string        `hcl:"preprocessor"`
	Compiler     string        `hcl:"compiler"`
	Assembler    string        `hcl:"assembler"`
	Linker       string        `hcl:"linker"`
	Options      *optionsBlock `hcl:"options,block"`
	DefRange     hcl.Range     `hcl:",def_range"`
}

type optionsBlock struct {
	Preprocessor []string `hcl:"preprocessor,optional"`
	Compiler     []string `hcl:"compiler,optional"`
	Assembler    []string `hcl:"assembler,optional"`
	Linker       []string `hcl:"linker,optional"`
}

type languageBlock struct {
	Name        string    `hcl:"name,label"`
	IncludePath string    `hcl:"include_path,optional"`
	DefRange    hcl.Range `hcl:",def_range"`
}
