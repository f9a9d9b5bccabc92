package domain

// Range is a line/column span in a source file. Lines and columns are 0-based.
type Range struct {
	StartLine   int `json:"start_line"`
	StartColumn int `json:"start_column"`
	EndLine     int `json:"end_line"`
	EndColumn   int `json:"end_column"`
}

// LineRange is a span of whole lines, inclusive on both ends.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// TestClass represents one Spock specification class discovered in a source file.
// A class is recorded once per declaration line; abstract classes are kept in
// the model and marked so consumers can treat them as non-runnable.
type TestClass struct {
	Name            string       `json:"name"`
	DeclarationLine int          `json:"declaration_line"`
	Range           Range        `json:"range"`
	Abstract        bool         `json:"abstract"`
	Methods         []TestMethod `json:"methods"`
}

// TestMethod represents a feature method inside a TestClass. Name is either
// the quoted human-readable description or a bare identifier. Lifecycle hooks
// (setup, cleanup, setupSpec, cleanupSpec) are never recorded as methods.
type TestMethod struct {
	Name            string          `json:"name"`
	DeclarationLine int             `json:"declaration_line"`
	Range           Range           `json:"range"`
	DataDriven      bool            `json:"data_driven"`
	Iterations      []DataIteration `json:"iterations,omitempty"`
	WhereBlock      *LineRange      `json:"where_block,omitempty"`
}

// DataValue is one named, coerced value from a where block. Iterations carry
// values as an ordered slice so column order survives (a map would not).
type DataValue struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// DataIteration is one concrete parameter set derived from a data table or
// pipe. Index is the 0-based discovery order, which is not guaranteed to
// equal the execution order reported by the build tool later.
type DataIteration struct {
	Index       int         `json:"index"`
	Values      []DataValue `json:"values"`
	DisplayName string      `json:"display_name"`
	Range       Range       `json:"range"`
	MethodName  string      `json:"method_name"`
}

// Value returns the coerced value for a variable name, if present.
func (d DataIteration) Value(name string) (any, bool) {
	for _, v := range d.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}
