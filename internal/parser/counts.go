package parser

import (
	"fmt"
	"regexp"

	"stp/internal/domain"
)

var (
	statusMarker  = regexp.MustCompile(`(?m)\s(PASSED|FAILED|SKIPPED)\s*$`)
	gradleSummary = regexp.MustCompile(`(\d+) tests? completed, (\d+) failed`)
)

// ParseTestCounts extracts passed and failed test counts from one class
// run's console output, for progress reporting. When the output has no
// recognizable markers it falls back to one "test" per class.
func (p *GradleParser) ParseTestCounts(run domain.ClassRun) (passed, failed int) {
	if m := gradleSummary.FindStringSubmatch(run.Output); m != nil {
		var total int
		fmt.Sscanf(m[1], "%d", &total)
		fmt.Sscanf(m[2], "%d", &failed)
		if total >= failed {
			passed = total - failed
		}
		return passed, failed
	}

	for _, m := range statusMarker.FindAllStringSubmatch(run.Output, -1) {
		switch m[1] {
		case "PASSED":
			passed++
		case "FAILED":
			failed++
		}
	}
	if passed > 0 || failed > 0 {
		return passed, failed
	}

	// Fallback: one "test" per class
	if run.Success {
		return 1, 0
	}
	return 0, 1
}
