package stage

import "fmt"

// Name identifies one toolchain phase.
type Name int

const (
	Preprocessor Name = iota
	Compiler
	Assembler
	Linker
)

// Count is the number of pipeline stages.
const Count = 4

// All lists every stage in execution order.
var All = [Count]Name{Preprocessor, Compiler, Assembler, Linker}

var names = [Count]string{"preprocessor", "compiler", "assembler", "linker"}

func (n Name) String() string {
	if n < 0 || int(n) >= Count {
		return fmt.Sprintf("stage(%d)", int(n))
	}
	return names[n]
}

// Parse maps a configuration key such as "compiler" back to its Name.
func Parse(s string) (Name, bool) {
	for i, name := range names {
		if name == s {
			return Name(i), true
		}
	}
	return 0, false
}
