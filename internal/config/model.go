package config

import (
	"fmt"

	"github.com/specialistvlad/p4cdriver/internal/stage"
)

// Toolchain is the stage-command mapping bound to one backend pattern.
type Toolchain struct {
	Pattern     string
	Executables [stage.Count]string
	// Options holds the raw default option strings per stage, in
	// declaration order. They are tokenized when commands are assembled.
	Options [stage.Count][]string
}

// Executable returns the executable configured for a stage.
func (t *Toolchain) Executable(n stage.Name) string {
	return t.Executables[n]
}

// Language describes a source-language dialect selectable with -x.
type Language struct {
	Name        string
	IncludePath string
}

// Registry is the immutable-after-load set of known toolchains.
type Registry struct {
	toolchains []*Toolchain
	byPattern  map[string]*Toolchain
	languages  map[string]*Language
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byPattern: make(map[string]*Toolchain),
		languages: make(map[string]*Language),
	}
}

// AddToolchain registers a toolchain. Patterns must be unique and every stage
// must name an executable.
func (r *Registry) AddToolchain(t *Toolchain) error {
	if t.Pattern == "" {
		return fmt.Errorf("backend pattern must not be empty")
	}
	if _, exists := r.byPattern[t.Pattern]; exists {
		return fmt.Errorf("backend %q is defined more than once", t.Pattern)
	}
	for _, n := range stage.All {
		if t.Executables[n] == "" {
			return fmt.Errorf("backend %q: no %s executable configured", t.Pattern, n)
		}
	}
	r.toolchains = append(r.toolchains, t)
	r.byPattern[t.Pattern] = t
	return nil
}

// AddLanguage registers a language dialect.
func (r *Registry) AddLanguage(l *Language) error {
	if _, exists := r.languages[l.Name]; exists {
		return fmt.Errorf("language %q is defined more than once", l.Name)
	}
	r.languages[l.Name] = l
	return nil
}

// Patterns returns every backend pattern in registration order.
func (r *Registry) Patterns() []string {
	patterns := make([]string, len(r.toolchains))
	for i, t := range r.toolchains {
		patterns[i] = t.Pattern
	}
	return patterns
}

// Toolchain returns the toolchain registered under an exact pattern.
func (r *Registry) Toolchain(pattern string) (*Toolchain, bool) {
	t, ok := r.byPattern[pattern]
	return t, ok
}

// Language returns a registered language dialect.
func (r *Registry) Language(name string) (*Language, bool) {
	l, ok := r.languages[name]
	return l, ok
}

// Len returns the number of registered toolchains.
func (r *Registry) Len() int {
	return len(r.toolchains)
}
