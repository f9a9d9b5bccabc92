package coerce

// SplitTopLevel splits s on commas that are not nested inside quotes,
// parentheses or brackets. Used for parameter lists and array literals where
// a plain strings.Split would break quoted or constructor values apart.
func SplitTopLevel(s string) []string {
	var parts []string
	var depth int
	var quote byte
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
