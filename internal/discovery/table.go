package discovery

import (
	"fmt"
	"regexp"
	"strings"

	"stp/internal/coerce"
	"stp/internal/domain"
)

// Row separators in descending priority order. Selection picks the one
// occurring most frequently in the line; ties fall back to this order.
var tableSeparators = []string{"||", ";;", "|", ";"}

var (
	pipePattern = regexp.MustCompile(`^\s*(\w+)\s*<<\s*(.+)$`)
	// Two-field record constructor, e.g. new Person(name: "Fred", age: 38).
	recordPattern = regexp.MustCompile(`new\s+(\w+)\s*\(\s*(\w+)\s*:\s*([^,]+?)\s*,\s*(\w+)\s*:\s*([^)]+?)\s*\)`)
)

// TableParser recovers data-driven iterations from where blocks, in either
// tabular or pipe-fed notation.
type TableParser struct{}

// NewTableParser creates a new TableParser.
func NewTableParser() *TableParser {
	return &TableParser{}
}

// FindDataBlock locates the where block of the method starting at
// methodStart. It tracks brace balance to stay within the method body; the
// block starts after a line that is exactly "where:" and ends at the first
// line that is exactly "}" (or end of file). Returns false when the method
// has no where block.
func (t *TableParser) FindDataBlock(lines []string, methodStart int) (domain.LineRange, bool) {
	var body bodyState
	start := -1

	for i := methodStart; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if start < 0 {
			if trimmed == "where:" {
				start = i + 1
				continue
			}
			body = body.step(lines[i])
			if body.closed() {
				return domain.LineRange{}, false
			}
			continue
		}
		if trimmed == "}" {
			return domain.LineRange{Start: start, End: i - 1}, true
		}
	}

	if start >= 0 {
		return domain.LineRange{Start: start, End: len(lines) - 1}, true
	}
	return domain.LineRange{}, false
}

// ParseIterations reads one where block into its iterations. Pipe-fed
// variables and table rows may both appear; indices are assigned
// sequentially in file order across both forms.
func (t *TableParser) ParseIterations(lines []string, block domain.LineRange, methodName string) []domain.DataIteration {
	var iterations []domain.DataIteration
	var header []string
	index := 0

	for i := block.Start; i <= block.End && i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		if m := pipePattern.FindStringSubmatch(line); m != nil {
			variable, expr := m[1], strings.TrimSpace(m[2])
			// Array literals may continue on following lines until "]".
			for strings.HasPrefix(expr, "[") && !strings.Contains(expr, "]") && i < block.End {
				i++
				expr += " " + strings.TrimSpace(lines[i])
			}
			for _, element := range t.pipeElements(expr) {
				values := []domain.DataValue{{Name: variable, Value: element}}
				iterations = append(iterations, domain.DataIteration{
					Index:       index,
					Values:      values,
					DisplayName: displayName(methodName, values),
					Range:       lineRange(i, lines[i]),
					MethodName:  methodName,
				})
				index++
			}
			continue
		}

		cells := splitRow(trimmed)
		if len(cells) == 0 {
			continue
		}
		if header == nil {
			header = cells
			continue
		}

		var values []domain.DataValue
		for col := 0; col < len(header) && col < len(cells); col++ {
			// "_" header cells are alignment placeholders: they consume a
			// positional slot but contribute no value.
			if header[col] == "_" {
				continue
			}
			values = append(values, domain.DataValue{Name: header[col], Value: coerce.Value(cells[col])})
		}
		if len(values) == 0 {
			continue
		}
		iterations = append(iterations, domain.DataIteration{
			Index:       index,
			Values:      values,
			DisplayName: displayName(methodName, values),
			Range:       lineRange(i, line),
			MethodName:  methodName,
		})
		index++
	}

	return iterations
}

// pipeElements reads the elements of a pipe-fed expression. Array literals
// are split on top-level commas; the two-field record constructor form gets
// a readable composite value, anything else is scalar-coerced.
func (t *TableParser) pipeElements(expr string) []any {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "[") {
		if end := strings.LastIndex(expr, "]"); end > 0 {
			expr = expr[1:end]
		} else {
			expr = expr[1:]
		}
	}

	var elements []any
	for _, raw := range coerce.SplitTopLevel(expr) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if m := recordPattern.FindStringSubmatch(raw); m != nil {
			elements = append(elements, fmt.Sprintf("%s(%s: %v, %s: %v)",
				m[1], m[2], coerce.Value(m[3]), m[4], coerce.Value(m[5])))
			continue
		}
		elements = append(elements, coerce.Value(raw))
	}
	return elements
}

// splitRow splits a table row on its dominant separator, trims the cells
// and drops empty ones.
func splitRow(line string) []string {
	sep := tableSeparators[0]
	best := 0
	for _, candidate := range tableSeparators {
		if n := strings.Count(line, candidate); n > best {
			sep, best = candidate, n
		}
	}
	if best == 0 {
		return nil
	}

	var cells []string
	for _, cell := range strings.Split(line, sep) {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

// displayName substitutes #variable placeholders in the method name with
// stringified values; unmatched placeholders stay verbatim. Names without
// placeholders get a synthesized "name [k: v, ...]" form in column order.
func displayName(methodName string, values []domain.DataValue) string {
	if strings.Contains(methodName, "#") {
		name := methodName
		for _, v := range values {
			name = strings.ReplaceAll(name, "#"+v.Name, valueString(v.Value))
		}
		return name
	}

	pairs := make([]string, len(values))
	for i, v := range values {
		pairs[i] = fmt.Sprintf("%s: %s", v.Name, valueString(v.Value))
	}
	return fmt.Sprintf("%s [%s]", methodName, strings.Join(pairs, ", "))
}

func valueString(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}
