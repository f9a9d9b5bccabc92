package parser

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleReport = `<?xml version="1.0" encoding="UTF-8"?>
<testsuite name="com.example.FooSpec" tests="3" failures="1" errors="0" time="0.312">
  <testcase name="bar [x: 1, #0]" classname="com.example.FooSpec" time="0.105"/>
  <testcase name="bar [x: 2, #1]" classname="com.example.FooSpec" time="0.087">
    <failure message="condition not satisfied" type="org.spockframework.runtime.ConditionNotSatisfiedError">Condition not satisfied:

x == 3
| |
2 false</failure>
  </testcase>
  <testcase name="bar" classname="com.example.FooSpec" time="0.192"/>
</testsuite>
`

func writeReport(t *testing.T, className, content string) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "stp-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	reportDir := filepath.Join(tmpDir, "build", "test-results", "test")
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		t.Fatalf("failed to create report dir: %v", err)
	}
	path := filepath.Join(reportDir, "TEST-"+className+".xml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}
	return tmpDir
}

func TestGradleParser_ParseXMLReport(t *testing.T) {
	parser := NewGradleParser()

	t.Run("extracts iterations with durations", func(t *testing.T) {
		workspace := writeReport(t, "com.example.FooSpec", sampleReport)
		path := ReportPath(workspace, "com.example.FooSpec")

		results := parser.ParseXMLReport(path, "com.example.FooSpec")
		if len(results) != 2 {
			t.Fatalf("expected 2 iteration results, got %d", len(results))
		}

		first := results[0]
		if !first.Success {
			t.Error("expected first iteration to pass")
		}
		if first.Duration != 0.105 {
			t.Errorf("expected duration 0.105, got %v", first.Duration)
		}
		if v, _ := first.Parameter("x"); v != 1 {
			t.Errorf("expected x=1, got %v", v)
		}

		second := results[1]
		if second.Success {
			t.Error("expected second iteration to fail")
		}
		if second.ErrorInfo == "" {
			t.Error("expected failure text to be captured")
		}
	})

	t.Run("whole-method summary entries are ignored", func(t *testing.T) {
		workspace := writeReport(t, "com.example.FooSpec", sampleReport)
		path := ReportPath(workspace, "com.example.FooSpec")

		for _, r := range parser.ParseXMLReport(path, "com.example.FooSpec") {
			if r.DisplayName == "bar" {
				t.Error("summary testcase should not become an iteration")
			}
		}
	})

	t.Run("missing report yields empty result", func(t *testing.T) {
		results := parser.ParseXMLReport("/nowhere/TEST-Foo.xml", "Foo")
		if len(results) != 0 {
			t.Errorf("expected no results, got %d", len(results))
		}
	})

	t.Run("malformed report yields empty result", func(t *testing.T) {
		workspace := writeReport(t, "BadSpec", "<testsuite><testcase")
		path := ReportPath(workspace, "BadSpec")
		if results := parser.ParseXMLReport(path, "BadSpec"); len(results) != 0 {
			t.Errorf("expected no results, got %d", len(results))
		}
	})

	t.Run("error element also marks failure", func(t *testing.T) {
		report := `<testsuite name="ErrSpec">
  <testcase name="boom [n: 1, #0]" classname="ErrSpec" time="0.01">
    <error message="unexpected exception" type="java.lang.RuntimeException"/>
  </testcase>
</testsuite>`
		workspace := writeReport(t, "ErrSpec", report)
		results := parser.ParseXMLReport(ReportPath(workspace, "ErrSpec"), "ErrSpec")
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
		if results[0].Success {
			t.Error("expected failure")
		}
		if results[0].ErrorInfo != "unexpected exception" {
			t.Errorf("unexpected error info: %s", results[0].ErrorInfo)
		}
	})
}

func TestReportPath(t *testing.T) {
	path := ReportPath("/repo", "com.example.FooSpec")
	expected := filepath.Join("/repo", "build", "test-results", "test", "TEST-com.example.FooSpec.xml")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
