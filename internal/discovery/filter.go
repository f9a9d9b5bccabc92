package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters specification files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters spec files by name pattern using wildcard matching.
// Supports patterns like "*OrderSpec.groovy" or "*Payment*"; a pattern
// without wildcards matches as a substring of the filename.
func (f *Filter) FilterByName(specs []string, pattern string) []string {
	if pattern == "" {
		return specs
	}

	var filtered []string
	for _, spec := range specs {
		if matchesName(filepath.Base(spec), pattern) {
			filtered = append(filtered, spec)
		}
	}
	return filtered
}

func matchesName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.Contains(pattern, "*") && !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}

	// Patterns like "*Payment*Spec*" fall back to ordered substring
	// matching of the non-wildcard pieces.
	parts := strings.Split(pattern, "*")
	rest := name
	matchedAny := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		matchedAny = true
	}
	return matchedAny
}
