package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"stp/internal/coerce"
	"stp/internal/domain"
)

// ParseConsoleOutput scans raw build tool console text for iteration lines
// of one method: "<suite> > <method> [<params>, #<index>] STATUS". Console
// lines carry no timing, so Duration is always 0.
func (p *GradleParser) ParseConsoleOutput(text, methodName string) []domain.TestIterationResult {
	pattern := regexp.MustCompile(
		`>\s*` + regexp.QuoteMeta(methodName) + `\s*\[(.*),\s*#(\d+)\]\s*(PASSED|FAILED|SKIPPED)`)

	var results []domain.TestIterationResult
	for _, line := range strings.Split(text, "\n") {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		index, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		results = append(results, domain.TestIterationResult{
			Index:       index,
			DisplayName: fmt.Sprintf("%s [%s, #%d]", methodName, m[1], index),
			Parameters:  parseParameters(m[1]),
			Success:     m[3] == "PASSED",
			Output:      strings.TrimSpace(line),
		})
	}
	return results
}

// parseParameters splits "k1: v1, k2: v2" on top-level commas and coerces
// each value. A literal null token becomes the string "null" here, unlike
// the where-block coercion; reported output does not distinguish a null
// value from the text "null".
func parseParameters(s string) []domain.DataValue {
	var params []domain.DataValue
	for _, pair := range coerce.SplitTopLevel(s) {
		key, raw, found := strings.Cut(pair, ":")
		if !found {
			continue
		}
		value := coerce.Value(raw)
		if value == nil {
			value = "null"
		}
		params = append(params, domain.DataValue{
			Name:  strings.TrimSpace(key),
			Value: value,
		})
	}
	return params
}
