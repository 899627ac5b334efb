package backend

import (
	"fmt"
	"strings"
)

// MalformedError reports a backend identifier that is not a
// target-arch-vendor triplet.
type MalformedError struct {
	Identifier string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("invalid target-arch-vendor triplet %q", e.Identifier)
}

// UnknownError reports an identifier that matches no registered pattern.
type UnknownError struct {
	Identifier  string
	Suggestions []string
}

func (e *UnknownError) Error() string {
	msg := fmt.Sprintf("unknown backend: %s", e.Identifier)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}
