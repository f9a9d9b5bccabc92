package commands

import (
	"stp/internal/cli"
	"stp/internal/config"
	"stp/internal/discovery"
	"stp/internal/execution"
	"stp/internal/parser"
	"stp/internal/storage"
	"stp/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Results *ResultsCommand
	Faills  *FaillsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	spockParser := discovery.NewSpockParser()
	runner := execution.NewRunner(cfg)
	scheduler := execution.NewRoundRobinScheduler()
	gradleParser := parser.NewGradleParser()
	executor := execution.NewWorkerPool(cfg, runner, scheduler, gradleParser)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, spockParser)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:     NewRunCommand(cfg, scanner, filter, spockParser, executor, gradleParser, jsonStorage, formatter, errorViewer),
		List:    NewListCommand(cfg, scanner, filter, spockParser, formatter),
		Results: NewResultsCommand(cfg, gradleParser, formatter),
		Faills:  NewFaillsCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		if flags.Processors > 0 {
			cfg.Processors = flags.Processors
		}
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run Spock specifications through Gradle",
		Long:    "Discover Spock specifications and execute them through the Gradle test task using parallel workers",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().IntVarP(&flags.Processors, "processors", "p", config.DefaultProcessors, "Number of parallel workers")
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where spec discovery should start")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter specs by filename pattern (supports wildcards, e.g. '*OrderSpec.groovy' or '*Payment*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failing spec class")
	runCmd.Flags().BoolVar(&flags.OpenFaills, "open-faills", false, "Open the faills viewer when the run finishes with failures")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print discovery trace events")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered specifications",
		Long:    "Scan and list Spock specifications without executing them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter specs by filename pattern")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where spec discovery should start")
	listCmd.Flags().BoolVarP(&flags.Iterations, "iterations", "i", false, "Parse each file and list classes, methods and data iterations")
	listCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print discovery trace events")
	rootCmd.AddCommand(listCmd)

	// Results command
	resultsCmd := &cobra.Command{
		Use:     "results",
		Short:   "Parse results for one test method without running anything",
		Long:    "Reconcile per-iteration results for a method from the Gradle XML report, falling back to a captured console log",
		RunE:    c.Results.Execute,
		PreRunE: applyFlags,
	}
	resultsCmd.Flags().StringVarP(&flags.Class, "class", "c", "", "Qualified specification class name (required)")
	resultsCmd.Flags().StringVarP(&flags.Method, "method", "m", "", "Feature method name (required)")
	resultsCmd.Flags().StringVar(&flags.ConsoleLog, "console-log", "", "Path to a captured Gradle console log")
	resultsCmd.Flags().StringVar(&flags.ReportBase, "report-base", "", "Directory containing build/test-results (defaults to the project path)")
	rootCmd.AddCommand(resultsCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View failed iterations interactively",
		Long:  "Display failed iterations from the last run in an interactive viewer",
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)
}
