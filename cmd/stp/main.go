package main

import (
	"fmt"
	"os"

	"stp/internal/cli"
	"stp/internal/cli/commands"
	"stp/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "stp",
		Short:   "Spock test processor",
		Long:    `Discovers Spock specifications in Groovy sources, runs them through Gradle, and reconciles per-iteration results from XML reports and console output.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
