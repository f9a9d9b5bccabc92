// Package coerce converts raw textual tokens from where blocks and build
// tool output into typed values.
package coerce

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	intPattern   = regexp.MustCompile(`^-?\d+$`)
	floatPattern = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// Value coerces a single token: integers, floats, booleans, null and quoted
// strings get typed values, anything else comes back as the raw token.
func Value(token string) any {
	token = strings.TrimSpace(token)

	if intPattern.MatchString(token) {
		if n, err := strconv.Atoi(token); err == nil {
			return n
		}
	}
	if floatPattern.MatchString(token) {
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return f
		}
	}

	switch token {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}

	if len(token) >= 2 {
		if (strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`)) ||
			(strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'")) {
			return token[1 : len(token)-1]
		}
	}

	return token
}
