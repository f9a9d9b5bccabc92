// Package parser recovers per-iteration test results from Gradle output:
// free-form console text and JUnit XML reports, reconciled in favor of the
// structured report when both exist.
package parser

import (
	"path/filepath"

	"stp/internal/domain"
)

// Parser extracts per-iteration results from build tool output.
type Parser interface {
	ParseConsoleOutput(text, methodName string) []domain.TestIterationResult
}

// GradleParser parses Gradle console output and JUnit XML test reports.
type GradleParser struct{}

// NewGradleParser creates a new GradleParser.
func NewGradleParser() *GradleParser {
	return &GradleParser{}
}

// ReportPath composes the conventional Gradle report location for a class.
func ReportPath(workspace, className string) string {
	return filepath.Join(workspace, "build", "test-results", "test", "TEST-"+className+".xml")
}

// ParseTestResults reconciles the two result sources for one test method.
// The XML report carries authoritative durations and failure text, so any
// iterations it yields are returned verbatim; the console text is a lossy
// fallback consulted only when the report yields nothing.
func (p *GradleParser) ParseTestResults(consoleText, testName, className, reportBase string) []domain.TestIterationResult {
	if results := p.ParseXMLReport(ReportPath(reportBase, className), className); len(results) > 0 {
		return results
	}
	return p.ParseConsoleOutput(consoleText, testName)
}
