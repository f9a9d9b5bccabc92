package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string
	GradleCmd   string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Processors int

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Processors int
	TestPath   string
	NameFilter string
	Iterations bool
	FailFast   bool
	OpenFaills bool
	Verbose    bool
	ConsoleLog string
	ReportBase string
	Method     string
	Class      string
}

// New creates a new Config with defaults, then applies .env and environment
// overrides (STP_PROJECT_PATH, STP_TEST_PATH, STP_GRADLE_CMD).
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		GradleCmd:      DefaultGradleCmd,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Processors:     DefaultProcessors,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)

	cfg.applyEnv()
	return cfg
}

// applyEnv loads a .env file if present and applies STP_* overrides. A
// missing .env is fine; explicit environment variables win over it.
func (c *Config) applyEnv() {
	_ = godotenv.Load(filepath.Join(c.ProjectPath, ".env"))

	if v := os.Getenv("STP_PROJECT_PATH"); v != "" {
		c.ProjectPath = v
	}
	if v := os.Getenv("STP_TEST_PATH"); v != "" {
		c.TestPath = v
	}
	if v := os.Getenv("STP_GRADLE_CMD"); v != "" {
		c.GradleCmd = v
	}
}

// GetTestPath returns the spec discovery root, using the flag if provided
func (c *Config) GetTestPath() string {
	path := c.TestPath
	if c.Flags.TestPath != "" {
		path = c.Flags.TestPath
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectPath, path)
}

// GetOutputPath returns the full path to the output JSON file (under the
// project so run and faills use the same file regardless of cwd).
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetGradleCmd returns the build tool command, resolved against the project
// when it is a relative wrapper script.
func (c *Config) GetGradleCmd() string {
	if filepath.IsAbs(c.GradleCmd) || filepath.Base(c.GradleCmd) == c.GradleCmd {
		// Absolute path or bare command on PATH.
		return c.GradleCmd
	}
	return filepath.Join(c.ProjectPath, filepath.Base(c.GradleCmd))
}

// GetReportBase returns the directory against which Gradle report paths are
// composed, using the flag if provided.
func (c *Config) GetReportBase() string {
	if c.Flags.ReportBase != "" {
		return c.Flags.ReportBase
	}
	return c.ProjectPath
}
