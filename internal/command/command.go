package command

import (
	"strings"

	"github.com/specialistvlad/p4cdriver/internal/stage"
)

// Command is the fully assembled invocation of one stage.
type Command struct {
	Stage stage.Name
	Args  []string
}

// Executable is the 0th token of the command.
func (c Command) Executable() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// String joins the tokens with single spaces, as printed by dry runs.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// Fragment is one derived option. Raw fragments are split into words like any
// other option string; literal fragments are appended exactly as given.
type Fragment struct {
	Value   string
	Literal bool
}

// Raw builds a fragment that is tokenized during assembly.
func Raw(s string) Fragment { return Fragment{Value: s} }

// Literal builds a fragment that is appended as a single token.
func Literal(s string) Fragment { return Fragment{Value: s, Literal: true} }

// Sources are the option inputs for one stage, in precedence order.
type Sources struct {
	PassThrough []string
	Derived     []Fragment
	Defaults    []string
}

// Assemble builds the command for one stage. It does not check that the
// executable exists.
func Assemble(n stage.Name, executable string, src Sources) (Command, error) {
	args := []string{executable}

	for _, raw := range src.PassThrough {
		words, err := Tokenize(raw)
		if err != nil {
			return Command{}, err
		}
		args = append(args, words...)
	}

	for _, f := range src.Derived {
		if f.Literal {
			args = append(args, f.Value)
			continue
		}
		words, err := Tokenize(f.Value)
		if err != nil {
			return Command{}, err
		}
		args = append(args, words...)
	}

	for _, raw := range src.Defaults {
		words, err := Tokenize(raw)
		if err != nil {
			return Command{}, err
		}
		args = append(args, words...)
	}

	return Command{Stage: n, Args: args}, nil
}
