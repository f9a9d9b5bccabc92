package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"stp/internal/config"
	"stp/internal/discovery"
	"stp/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.SpockParser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *discovery.SpockParser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
	}
}

// PrintSpecList prints discovered spec files; with showDetail it parses each
// file and prints the class/method/iteration tree.
func (f *Formatter) PrintSpecList(specFiles []string, showDetail bool) error {
	if !showDetail {
		for _, path := range specFiles {
			rel := path
			if r, err := filepath.Rel(f.config.ProjectPath, path); err == nil {
				rel = r
			}
			fmt.Println(rel)
		}
		color.Cyan("\n%d spec file(s)", len(specFiles))
		return nil
	}

	totalClasses := 0
	totalMethods := 0
	for _, path := range specFiles {
		content, err := os.ReadFile(path)
		if err != nil {
			color.Red("cannot read %s: %v", path, err)
			continue
		}

		classes := f.parser.ParseSource(string(content))
		if len(classes) == 0 {
			continue
		}

		rel := path
		if r, err := filepath.Rel(f.config.ProjectPath, path); err == nil {
			rel = r
		}
		color.Cyan("%s", rel)

		for _, cls := range classes {
			totalClasses++
			label := cls.Name
			if cls.Abstract {
				label += color.YellowString(" (abstract)")
			}
			fmt.Printf("  %s\n", label)
			for _, method := range cls.Methods {
				totalMethods++
				fmt.Printf("    %s\n", method.Name)
				for _, it := range method.Iterations {
					fmt.Printf("      %s\n", color.HiBlackString(it.DisplayName))
				}
			}
		}
	}

	color.Cyan("\n%d class(es), %d feature method(s)", totalClasses, totalMethods)
	return nil
}

// PrintIterationResults prints reconciled per-iteration results.
func (f *Formatter) PrintIterationResults(results []domain.TestIterationResult) {
	for _, r := range results {
		if r.Success {
			color.Green("  ✓ %s (%.3fs)", r.DisplayName, r.Duration)
		} else {
			color.Red("  ✗ %s (%.3fs)", r.DisplayName, r.Duration)
			if r.ErrorInfo != "" {
				fmt.Printf("      %s\n", r.ErrorInfo)
			}
		}
	}
}

// PrintMetaStats displays the stats table for a finished run.
func (f *Formatter) PrintMetaStats(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Spec Execution Statistics                 ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Spec Classes")
	color.White("%-27d │\n", meta.TotalClasses)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Spec Classes")
	color.Green("%-27d │\n", meta.PassedClasses)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Spec Classes")
	color.Red("%-27d │\n", meta.FailedClasses)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Iterations")
	color.Red("%-27d │\n", meta.FailedIterations)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", meta.Duration)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	if meta.FailedClasses == 0 {
		color.Green("\n✓ All specs passed")
	} else {
		color.Red("\n✗ %d spec class(es) failed — run 'stp faills' to inspect", meta.FailedClasses)
	}
}
