package cli

import "stp/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Processors: f.Processors,
		TestPath:   f.TestPath,
		NameFilter: f.NameFilter,
		Iterations: f.Iterations,
		FailFast:   f.FailFast,
		OpenFaills: f.OpenFaills,
		Verbose:    f.Verbose,
		ConsoleLog: f.ConsoleLog,
		ReportBase: f.ReportBase,
		Method:     f.Method,
		Class:      f.Class,
	}
}
