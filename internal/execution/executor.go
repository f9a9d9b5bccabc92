package execution

import (
	"time"

	"stp/internal/domain"
)

// Executor executes specification classes and returns their raw runs
type Executor interface {
	Execute(targets []Target) ([]domain.ClassRun, time.Duration, error)
}

// Target is one runnable specification class.
type Target struct {
	ClassName string // Qualified class name passed to the build tool
	Path      string // Source file the class was discovered in
}
