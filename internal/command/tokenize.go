package command

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// OptionSyntaxError reports a raw option string that cannot be split into words.
type OptionSyntaxError struct {
	Option string
	Reason string
}

func (e *OptionSyntaxError) Error() string {
	return fmt.Sprintf("cannot parse option %q: %s", e.Option, e.Reason)
}

// Tokenize splits raw into words with POSIX shell rules: single quotes, double
// quotes and backslash escapes are honored, and everything else, including
// parentheses and shell operators such as ';' or '&', is an ordinary word
// character. Variables are not expanded. Only an unterminated quote or a
// trailing escape is an error.
func Tokenize(raw string) ([]string, error) {
	words, err := shellquote.Split(raw)
	if err != nil {
		return nil, &OptionSyntaxError{Option: raw, Reason: err.Error()}
	}
	return words, nil
}

// quote renders s as a single shell word.
func quote(s string) string {
	return shellquote.Join(s)
}
