package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stp/internal/config"
	"stp/internal/parser"
	"stp/internal/ui"
)

// ResultsCommand reconciles results for one method from existing build
// output, without executing anything.
type ResultsCommand struct {
	config    *config.Config
	parser    *parser.GradleParser
	formatter *ui.Formatter
}

// NewResultsCommand creates a new ResultsCommand
func NewResultsCommand(cfg *config.Config, gradleParser *parser.GradleParser, formatter *ui.Formatter) *ResultsCommand {
	return &ResultsCommand{
		config:    cfg,
		parser:    gradleParser,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *ResultsCommand) Execute(cmd *cobra.Command, args []string) error {
	className := rc.config.Flags.Class
	methodName := rc.config.Flags.Method
	if className == "" || methodName == "" {
		return fmt.Errorf("both --class and --method are required")
	}

	var consoleText string
	if logPath := rc.config.Flags.ConsoleLog; logPath != "" {
		data, err := os.ReadFile(logPath)
		if err != nil {
			return fmt.Errorf("read console log: %w", err)
		}
		consoleText = string(data)
	}

	results := rc.parser.ParseTestResults(consoleText, methodName, className, rc.config.GetReportBase())
	if len(results) == 0 {
		color.Yellow("No iteration results found for %s.%s", className, methodName)
		return nil
	}

	color.Cyan("%s.%s — %d iteration(s)", className, methodName, len(results))
	rc.formatter.PrintIterationResults(results)
	return nil
}
