package backend

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/specialistvlad/p4cdriver/internal/ctxlog"
)

// wildcardClass is what a '*' in a pattern expands to.
const wildcardClass = `[a-zA-Z0-9*]*`

// maxSuggestionDistance bounds how far a pattern may be from the identifier
// to be offered as a suggestion.
const maxSuggestionDistance = 3

// Compile turns a backend pattern into an anchored regular expression. Every
// character other than '*' matches literally.
func Compile(pattern string) *regexp.Regexp {
	literals := strings.Split(pattern, "*")
	for i, lit := range literals {
		literals[i] = regexp.QuoteMeta(lit)
	}
	return regexp.MustCompile("^" + strings.Join(literals, wildcardClass) + "$")
}

// Resolve returns the first pattern, in the given order, that matches the
// whole identifier. When several patterns match, the earlier one wins.
func Resolve(ctx context.Context, identifier string, patterns []string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if _, err := ParseIdentifier(identifier); err != nil {
		return "", err
	}

	for _, pattern := range patterns {
		if Compile(pattern).MatchString(identifier) {
			logger.Debug("Backend resolved.", "backend", identifier, "pattern", pattern)
			return pattern, nil
		}
	}

	logger.Debug("No backend pattern matched.", "backend", identifier, "patterns", len(patterns))
	return "", &UnknownError{Identifier: identifier, Suggestions: suggest(identifier, patterns)}
}

// suggest returns the patterns closest to identifier by edit distance.
func suggest(identifier string, patterns []string) []string {
	type candidate struct {
		pattern  string
		distance int
	}
	var candidates []candidate
	for _, p := range patterns {
		d := levenshtein.Distance(identifier, p, nil)
		if d <= maxSuggestionDistance {
			candidates = append(candidates, candidate{p, d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.pattern)
	}
	return out
}
