package coerce

import "testing"

func TestValue(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected any
	}{
		{name: "integer", token: "42", expected: 42},
		{name: "negative integer", token: "-7", expected: -7},
		{name: "float", token: "3.14", expected: 3.14},
		{name: "negative float", token: "-0.5", expected: -0.5},
		{name: "true", token: "true", expected: true},
		{name: "false", token: "false", expected: false},
		{name: "null", token: "null", expected: nil},
		{name: "double quoted string", token: `"hello"`, expected: "hello"},
		{name: "single quoted string", token: "'world'", expected: "world"},
		{name: "bare token stays raw", token: "Math.PI", expected: "Math.PI"},
		{name: "leading whitespace trimmed", token: "  12 ", expected: 12},
		{name: "digits inside word stay raw", token: "a1", expected: "a1"},
		{name: "lone quote stays raw", token: `"`, expected: `"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Value(tt.token)
			if result != tt.expected {
				t.Errorf("Value(%q) = %v (%T), expected %v (%T)", tt.token, result, result, tt.expected, tt.expected)
			}
		})
	}
}
