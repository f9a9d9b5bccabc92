package parser

import (
	"encoding/xml"
	"os"
	"regexp"
	"strconv"
	"strings"

	"stp/internal/domain"
)

// JUnit XML report shapes, per the de facto schema Gradle writes.
type junitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	TestCases []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      string        `xml:"time,attr"`
	Failure   *junitProblem `xml:"failure"`
	Error     *junitProblem `xml:"error"`
}

type junitProblem struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}

// Iteration testcase names look like "base [k: v, #0]"; whole-method
// summary entries don't and are skipped.
var iterationName = regexp.MustCompile(`^(.*)\s\[(.*),\s*#(\d+)\]$`)

// ParseXMLReport extracts per-iteration results from a JUnit XML report
// file. A missing, unreadable or malformed report is not an error: the
// structured source simply has no data, and an empty slice says so.
func (p *GradleParser) ParseXMLReport(path, className string) []domain.TestIterationResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var suite junitTestSuite
	if err := xml.Unmarshal(data, &suite); err != nil {
		return nil
	}

	var results []domain.TestIterationResult
	for _, tc := range suite.TestCases {
		m := iterationName.FindStringSubmatch(tc.Name)
		if m == nil {
			continue
		}
		index, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}

		duration, _ := strconv.ParseFloat(tc.Time, 64)
		result := domain.TestIterationResult{
			Index:       index,
			DisplayName: tc.Name,
			Parameters:  parseParameters(m[2]),
			Success:     tc.Failure == nil && tc.Error == nil,
			Duration:    duration,
			Output:      qualifiedName(tc, className),
		}
		if tc.Failure != nil {
			result.ErrorInfo = problemText(tc.Failure)
		} else if tc.Error != nil {
			result.ErrorInfo = problemText(tc.Error)
		}
		results = append(results, result)
	}
	return results
}

func problemText(problem *junitProblem) string {
	if problem == nil {
		return ""
	}
	if text := strings.TrimSpace(problem.Content); text != "" {
		return text
	}
	return problem.Message
}

func qualifiedName(tc junitTestCase, className string) string {
	if tc.Classname != "" {
		return tc.Classname + "." + tc.Name
	}
	return className + "." + tc.Name
}
