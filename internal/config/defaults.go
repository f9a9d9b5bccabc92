package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is where spec discovery starts, relative to the project
	DefaultTestPath = "src/test"
	// DefaultGradleCmd is the default build tool invocation
	DefaultGradleCmd = "./gradlew"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".stp"
	// DefaultProcessors is the default number of parallel workers
	DefaultProcessors = 2
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for specs
var DefaultPathsToIgnore = []string{
	"build",
	"bin",
	"out",
	"node_modules",
	"vendor",
}
