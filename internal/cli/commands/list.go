package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stp/internal/config"
	"stp/internal/discovery"
	"stp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	specs     *discovery.SpockParser
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	specs *discovery.SpockParser,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		specs:     specs,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	if lc.config.Flags.Verbose {
		lc.specs.SetTrace(discovery.SinkFunc(func(event string) {
			color.HiBlack("  %s", event)
		}))
	}

	specFiles, err := lc.scanner.Scan(lc.config.GetTestPath())
	if err != nil {
		return err
	}

	specFiles = lc.filter.FilterByName(specFiles, lc.config.Flags.NameFilter)

	if len(specFiles) == 0 {
		color.Yellow("No specs found")
		return nil
	}

	return lc.formatter.PrintSpecList(specFiles, lc.config.Flags.Iterations)
}
