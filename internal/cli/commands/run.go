package commands

import (
	"fmt"
	"os"
	"strings"

	"stp/internal/config"
	"stp/internal/discovery"
	"stp/internal/domain"
	"stp/internal/execution"
	"stp/internal/parser"
	"stp/internal/storage"
	"stp/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	specs     *discovery.SpockParser
	executor  *execution.WorkerPool
	parser    *parser.GradleParser
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    *ui.ErrorViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	specs *discovery.SpockParser,
	executor *execution.WorkerPool,
	gradleParser *parser.GradleParser,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer *ui.ErrorViewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		specs:     specs,
		executor:  executor,
		parser:    gradleParser,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// discoveredClass ties a parsed class to its file and qualified name.
type discoveredClass struct {
	class     domain.TestClass
	path      string
	qualified string
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if rc.config.Flags.Verbose {
		rc.specs.SetTrace(discovery.SinkFunc(func(event string) {
			color.HiBlack("  %s", event)
		}))
	}

	specFiles, err := rc.scanner.Scan(rc.config.GetTestPath())
	if err != nil {
		return err
	}
	specFiles = rc.filter.FilterByName(specFiles, rc.config.Flags.NameFilter)

	classes := rc.discoverClasses(specFiles)
	if len(classes) == 0 {
		color.Yellow("No runnable specs found")
		return nil
	}

	targets := make([]execution.Target, len(classes))
	for i, dc := range classes {
		targets[i] = execution.Target{ClassName: dc.qualified, Path: dc.path}
	}

	progressBar := ui.NewProgressBar(len(targets))
	rc.executor.SetProgress(progressBar)

	runs, duration, err := rc.executor.ExecuteWithOptions(targets, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	failures := rc.collectFailures(runs, classes)

	if err := rc.storage.Save(runs, failures, duration, rc.config.Processors); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	output, err := rc.storage.Load()
	if err != nil {
		return err
	}
	rc.formatter.PrintMetaStats(output)

	if rc.config.Flags.OpenFaills && len(failures) > 0 {
		return rc.viewer.View(output)
	}
	return nil
}

// discoverClasses parses every spec file and keeps its runnable classes.
// Abstract classes stay out: the build tool cannot run them directly.
func (rc *RunCommand) discoverClasses(specFiles []string) []discoveredClass {
	var classes []discoveredClass
	for _, path := range specFiles {
		content, err := os.ReadFile(path)
		if err != nil {
			color.Red("cannot read %s: %v", path, err)
			continue
		}

		text := string(content)
		pkg := discovery.PackageName(text)
		for _, cls := range rc.specs.ParseSource(text) {
			if cls.Abstract {
				continue
			}
			qualified := cls.Name
			if pkg != "" {
				qualified = pkg + "." + cls.Name
			}
			classes = append(classes, discoveredClass{class: cls, path: path, qualified: qualified})
		}
	}
	return classes
}

// collectFailures reconciles per-iteration results for every failed class
// run. Failed runs whose output yields no recognizable iteration still get
// one class-level entry so the viewer never hides a failure.
func (rc *RunCommand) collectFailures(runs []domain.ClassRun, classes []discoveredClass) []domain.FailedIteration {
	byName := make(map[string]discoveredClass, len(classes))
	for _, dc := range classes {
		byName[dc.qualified] = dc
	}

	reportBase := rc.config.GetReportBase()
	var failures []domain.FailedIteration
	for _, run := range runs {
		if run.Success {
			continue
		}

		dc, ok := byName[run.ClassName]
		found := false
		if ok {
			for _, method := range dc.class.Methods {
				results := rc.parser.ParseTestResults(run.Output, method.Name, run.ClassName, reportBase)
				for _, r := range results {
					if r.Success {
						continue
					}
					found = true
					failures = append(failures, domain.FailedIteration{
						ClassName:   run.ClassName,
						MethodName:  method.Name,
						DisplayName: r.DisplayName,
						Index:       r.Index,
						Message:     r.ErrorInfo,
						Output:      r.Output,
					})
				}
			}
		}

		if !found {
			failures = append(failures, domain.FailedIteration{
				ClassName:   run.ClassName,
				DisplayName: run.ClassName,
				Message:     "spec class failed; no per-iteration results were recognizable",
				Output:      outputTail(run.Output, 15),
			})
		}
	}
	return failures
}

// outputTail keeps the last n lines of build tool output.
func outputTail(output string, n int) string {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
