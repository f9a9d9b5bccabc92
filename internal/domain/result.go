package domain

import "time"

// TestIterationResult is one per-iteration outcome recovered from build tool
// output (console text or a structured XML report). Produced fresh per run,
// never mutated; correlation back to a DataIteration happens by display
// name / index matching in the caller.
type TestIterationResult struct {
	Index       int         `json:"index"`
	DisplayName string      `json:"display_name"`
	Parameters  []DataValue `json:"parameters"`
	Success     bool        `json:"success"`
	Duration    float64     `json:"duration"` // seconds, 0 when the source has no timing
	Output      string      `json:"output"`   // raw console line or qualified testcase name
	ErrorInfo   string      `json:"error_info,omitempty"`
}

// Parameter returns the coerced parameter value for a name, if present.
func (r TestIterationResult) Parameter(name string) (any, bool) {
	for _, p := range r.Parameters {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// ClassRun is the raw outcome of executing one specification class through
// the build tool.
type ClassRun struct {
	ClassName string        // Fully or simply qualified class name
	Path      string        // Source file the class was discovered in
	Success   bool          // Whether the build tool invocation passed
	Output    string        // Combined stdout/stderr from the build tool
	Error     error         // Error if execution itself failed
	Duration  time.Duration // Wall time of the invocation
}
