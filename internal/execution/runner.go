package execution

import (
	"context"
	"os"
	"os/exec"
	"time"

	"stp/internal/config"
	"stp/internal/domain"
)

// Runner executes a single specification class through Gradle
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run invokes the build tool for one class and captures its combined
// output. A non-zero exit is a failed run, not an error: the output still
// gets parsed for per-iteration results.
func (r *Runner) Run(target Target, workerID int) domain.ClassRun {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, r.config.GetGradleCmd(), "test", "--tests", target.ClassName)

	cmd.Env = os.Environ()
	cmd.Dir = r.config.ProjectPath

	start := time.Now()
	output, err := cmd.CombinedOutput()

	return domain.ClassRun{
		ClassName: target.ClassName,
		Path:      target.Path,
		Success:   err == nil,
		Output:    string(output),
		Error:     err,
		Duration:  time.Since(start),
	}
}
