package cli

import (
	"flag"
	"strings"
)

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// attachedValueFlags may be written with their value glued on, as in -DFOO or
// -I/usr/include.
var attachedValueFlags = []string{"-D", "-I", "-T"}

// splitAttached rewrites -DFOO into -D FOO so the flag package can parse it.
// Values of other flags (-Xp4c -DFOO) and everything after a bare "--" are
// left alone.
func splitAttached(fs *flag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if i > 0 && takesValue(fs, args[i-1]) {
			out = append(out, arg)
			continue
		}
		split := false
		for _, prefix := range attachedValueFlags {
			if len(arg) > len(prefix) && strings.HasPrefix(arg, prefix) && arg[len(prefix)] != '=' {
				out = append(out, prefix, arg[len(prefix):])
				split = true
				break
			}
		}
		if !split {
			out = append(out, arg)
		}
	}
	return out
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(fs *flag.FlagSet, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}
	f := fs.Lookup(strings.TrimLeft(arg, "-"))
	if f == nil {
		return false
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return false
	}
	return true
}
