package discovery

import (
	"fmt"
	"regexp"
	"strings"

	"stp/internal/domain"
)

// Lifecycle hook names reserved by the specification language. These are
// never recorded as feature methods.
var lifecycleNames = map[string]bool{
	"setup":       true,
	"cleanup":     true,
	"setupSpec":   true,
	"cleanupSpec": true,
}

const (
	// How far past a bare-identifier heading we look for a block label
	// before rejecting it as an ordinary helper method.
	blockLabelLookahead = 50
	// How many non-comment lines past a heading may hold the opening brace.
	openBraceLookahead = 4
)

var (
	classPattern = regexp.MustCompile(`^\s*(abstract\s+)?class\s+(\w+)\s+extends\s+(?:[\w$]+\.)*Specification\b`)
	// Any class declaration; inside a spec class this marks a nested class
	// whose body is skipped structurally.
	nestedClassPattern = regexp.MustCompile(`^\s*(?:(?:public|private|protected|static|final|abstract)\s+)*class\s+\w+`)
	methodPattern      = regexp.MustCompile(`^\s*(?:def|void)\s+(?:"([^"]*)"|'([^']*)'|([A-Za-z_$][\w$]*))\s*(?:\([^)]*\))?\s*(\{)?\s*$`)
	blockLabelPattern  = regexp.MustCompile(`^\s*(given|when|then|expect|where)\s*:`)
	packagePattern     = regexp.MustCompile(`^\s*package\s+([\w.]+)`)
)

// PackageName returns the package declared in the source text, or "" when
// the file has no package line. Used to qualify class names for the build
// tool and its report files.
func PackageName(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if m := packagePattern.FindStringSubmatch(line); m != nil {
			return m[1]
		}
		if classPattern.MatchString(line) {
			break
		}
	}
	return ""
}

// bodyState tracks brace balance for one enclosing body, advanced one line
// at a time. A zero bodyState means the opening brace has not been seen yet.
type bodyState struct {
	opened  bool
	balance int
}

// step returns the state after scanning one line.
func (s bodyState) step(line string) bodyState {
	opens := strings.Count(line, "{")
	if opens > 0 {
		s.opened = true
	}
	s.balance += opens - strings.Count(line, "}")
	return s
}

// closed reports whether the body's opening brace has been seen and the
// balance has returned to zero or below.
func (s bodyState) closed() bool {
	return s.opened && s.balance <= 0
}

// SpockParser recovers specification classes and feature methods from raw
// source text without a full language grammar. Parsing is heuristic and
// tolerant: unrecognizable structure yields fewer results, never an error.
type SpockParser struct {
	tables *TableParser
	trace  Sink
}

// NewSpockParser creates a new SpockParser.
func NewSpockParser() *SpockParser {
	return &SpockParser{tables: NewTableParser()}
}

// SetTrace installs an optional diagnostic sink.
func (p *SpockParser) SetTrace(sink Sink) {
	p.trace = sink
}

func (p *SpockParser) record(format string, args ...any) {
	if p.trace != nil {
		p.trace.Record(fmt.Sprintf(format, args...))
	}
}

// ParseSource parses one source file's text into its specification classes,
// in top-to-bottom order. Empty or malformed input yields an empty or
// partial result; ParseSource never fails.
func (p *SpockParser) ParseSource(content string) []domain.TestClass {
	lines := strings.Split(content, "\n")

	var classes []domain.TestClass
	var current *domain.TestClass
	var class bodyState
	var nested bodyState
	nestedDepth := 0

	for i, line := range lines {
		if current == nil {
			m := classPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			current = &domain.TestClass{
				Name:            m[2],
				DeclarationLine: i,
				Abstract:        m[1] != "",
				Range:           lineRange(i, line),
			}
			class = bodyState{}.step(line)
			p.record("class %s at line %d", m[2], i)
			if class.closed() {
				current.Range.EndColumn = len(line)
				classes = append(classes, *current)
				current = nil
			}
			continue
		}

		class = class.step(line)

		if nestedDepth > 0 {
			nested = nested.step(line)
			if nested.closed() {
				nestedDepth = 0
			}
		} else if nestedClassPattern.MatchString(line) {
			nestedDepth++
			nested = bodyState{}.step(line)
			p.record("skipping nested class at line %d", i)
		} else if name, ok := p.methodAt(lines, i); ok {
			method := domain.TestMethod{
				Name:            name,
				DeclarationLine: i,
				Range:           lineRange(i, line),
			}
			if block, found := p.tables.FindDataBlock(lines, i); found {
				iterations := p.tables.ParseIterations(lines, block, name)
				if len(iterations) > 0 {
					method.DataDriven = true
					method.Iterations = iterations
					method.WhereBlock = &domain.LineRange{Start: block.Start, End: block.End}
				}
			}
			current.Methods = append(current.Methods, method)
			p.record("method %q at line %d", name, i)
		}

		if class.closed() {
			current.Range.EndLine = i
			current.Range.EndColumn = len(line)
			classes = append(classes, *current)
			current = nil
			nestedDepth = 0
		}
	}

	// Unbalanced file: keep what was recovered up to EOF.
	if current != nil {
		current.Range.EndLine = len(lines) - 1
		classes = append(classes, *current)
	}

	return classes
}

// methodAt checks whether line i is an acceptable feature method heading and
// returns the method name.
func (p *SpockParser) methodAt(lines []string, i int) (string, bool) {
	m := methodPattern.FindStringSubmatch(lines[i])
	if m == nil {
		return "", false
	}

	name, quoted := m[1], true
	if name == "" {
		name = m[2]
	}
	if name == "" {
		name = m[3]
		quoted = false
	}
	if name == "" || lifecycleNames[name] {
		return "", false
	}

	// Bare identifiers must be confirmed as feature methods by a block
	// label further down; quoted descriptions are accepted as-is.
	if !quoted && !hasBlockLabel(lines[i+1:], blockLabelLookahead) {
		p.record("rejecting %q: no block label within %d lines", name, blockLabelLookahead)
		return "", false
	}

	if m[4] == "" && !hasOpeningBrace(lines[i+1:], openBraceLookahead) {
		p.record("rejecting %q: no opening brace", name)
		return "", false
	}

	return name, true
}

// hasBlockLabel reports whether a given/when/then/expect/where label occurs
// within bound lines of the slice, stopping early at a line that is exactly
// a closing brace.
func hasBlockLabel(lines []string, bound int) bool {
	for i := 0; i < bound && i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "}" {
			return false
		}
		if blockLabelPattern.MatchString(lines[i]) {
			return true
		}
	}
	return false
}

// hasOpeningBrace reports whether an opening brace occurs within the next
// bound non-comment lines of the slice.
func hasOpeningBrace(lines []string, bound int) bool {
	seen := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "*") {
			continue
		}
		if strings.Contains(line, "{") {
			return true
		}
		seen++
		if seen >= bound {
			return false
		}
	}
	return false
}

// lineRange spans one whole line, from its first non-blank column.
func lineRange(line int, text string) domain.Range {
	start := len(text) - len(strings.TrimLeft(text, " \t"))
	return domain.Range{
		StartLine:   line,
		StartColumn: start,
		EndLine:     line,
		EndColumn:   len(text),
	}
}
