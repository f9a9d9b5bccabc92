package domain

// FailedIteration is one failed test iteration as stored after a run, for
// the faills viewer.
type FailedIteration struct {
	ClassName   string `json:"class_name"`
	MethodName  string `json:"method_name"`
	DisplayName string `json:"display_name"`
	Index       int    `json:"index"`
	Message     string `json:"message"`
	Output      string `json:"output"`
	Resolved    bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}

// RunMeta contains metadata about a test run.
type RunMeta struct {
	TotalClasses     int     `json:"total_classes"`
	PassedClasses    int     `json:"passed_classes"`
	FailedClasses    int     `json:"failed_classes"`
	FailedIterations int     `json:"failed_iterations"`
	Duration         string  `json:"duration"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Workers          int     `json:"workers"`
	Timestamp        string  `json:"timestamp"`
}

// RunOutput is the complete stored output of one run.
type RunOutput struct {
	Meta    RunMeta           `json:"meta"`
	Details []FailedIteration `json:"details"`
}
