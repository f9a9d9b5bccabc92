package discovery

import (
	"strings"
	"testing"

	"stp/internal/domain"
)

func linesOf(src string) []string {
	return strings.Split(src, "\n")
}

func TestTableParser_FindDataBlock(t *testing.T) {
	parser := NewTableParser()

	t.Run("locates the where block", func(t *testing.T) {
		lines := linesOf(`    def "adds"() {
        expect:
        a + b == c

        where:
        a | b | c
        1 | 2 | 3
    }`)
		block, found := parser.FindDataBlock(lines, 0)
		if !found {
			t.Fatal("expected a data block")
		}
		if block.Start != 5 || block.End != 6 {
			t.Errorf("unexpected block span: %+v", block)
		}
	})

	t.Run("method without where block", func(t *testing.T) {
		lines := linesOf(`    def "adds"() {
        expect:
        1 + 1 == 2
    }`)
		if _, found := parser.FindDataBlock(lines, 0); found {
			t.Error("expected no data block")
		}
	})

	t.Run("where block runs to end of file when unterminated", func(t *testing.T) {
		lines := linesOf(`    def "adds"() {
        where:
        a | b
        1 | 2`)
		block, found := parser.FindDataBlock(lines, 0)
		if !found {
			t.Fatal("expected a data block")
		}
		if block.End != len(lines)-1 {
			t.Errorf("expected block to reach EOF, got %+v", block)
		}
	})
}

func TestTableParser_ParseIterations_Table(t *testing.T) {
	parser := NewTableParser()

	t.Run("single row round trip", func(t *testing.T) {
		lines := linesOf(`a | b
1 | 2`)
		iterations := parser.ParseIterations(lines, domain.LineRange{Start: 0, End: 1}, "adds")
		if len(iterations) != 1 {
			t.Fatalf("expected 1 iteration, got %d", len(iterations))
		}

		it := iterations[0]
		if it.Index != 0 {
			t.Errorf("expected index 0, got %d", it.Index)
		}
		if v, ok := it.Value("a"); !ok || v != 1 {
			t.Errorf("expected a=1, got %v", v)
		}
		if v, ok := it.Value("b"); !ok || v != 2 {
			t.Errorf("expected b=2, got %v", v)
		}
		if it.DisplayName != "adds [a: 1, b: 2]" {
			t.Errorf("unexpected display name: %s", it.DisplayName)
		}
	})

	t.Run("double pipe separator", func(t *testing.T) {
		lines := linesOf(`input || expected
"ab"  || 2`)
		iterations := parser.ParseIterations(lines, domain.LineRange{Start: 0, End: 1}, "length")
		if len(iterations) != 1 {
			t.Fatalf("expected 1 iteration, got %d", len(iterations))
		}
		if v, _ := iterations[0].Value("input"); v != "ab" {
			t.Errorf("expected input=ab, got %v", v)
		}
		if v, _ := iterations[0].Value("expected"); v != 2 {
			t.Errorf("expected expected=2, got %v", v)
		}
	})

	t.Run("semicolon rows ignore an incidental pipe", func(t *testing.T) {
		lines := linesOf(`text ; count ; flag
"a|b" ; 2 ; true`)
		iterations := parser.ParseIterations(lines, domain.LineRange{Start: 0, End: 1}, "splits")
		if len(iterations) != 1 {
			t.Fatalf("expected 1 iteration, got %d", len(iterations))
		}
		if v, _ := iterations[0].Value("text"); v != "a|b" {
			t.Errorf("expected text=a|b, got %v", v)
		}
		if v, _ := iterations[0].Value("count"); v != 2 {
			t.Errorf("expected count=2, got %v", v)
		}
		if v, _ := iterations[0].Value("flag"); v != true {
			t.Errorf("expected flag=true, got %v", v)
		}
	})

	t.Run("placeholder column is skipped", func(t *testing.T) {
		lines := linesOf(`a | _ | c
1 | 9 | 3`)
		iterations := parser.ParseIterations(lines, domain.LineRange{Start: 0, End: 1}, "adds")
		if len(iterations) != 1 {
			t.Fatalf("expected 1 iteration, got %d", len(iterations))
		}
		if len(iterations[0].Values) != 2 {
			t.Fatalf("expected 2 values, got %+v", iterations[0].Values)
		}
		// The placeholder still consumes its slot, so c aligns with 3.
		if v, _ := iterations[0].Value("c"); v != 3 {
			t.Errorf("expected c=3, got %v", v)
		}
	})

	t.Run("coercion of mixed value types", func(t *testing.T) {
		lines := linesOf(`i | f | s | b | n
-4 | 2.5 | 'hi' | false | null`)
		iterations := parser.ParseIterations(lines, domain.LineRange{Start: 0, End: 1}, "types")
		if len(iterations) != 1 {
			t.Fatalf("expected 1 iteration, got %d", len(iterations))
		}
		it := iterations[0]
		checks := []struct {
			name     string
			expected any
		}{
			{"i", -4}, {"f", 2.5}, {"s", "hi"}, {"b", false}, {"n", nil},
		}
		for _, c := range checks {
			if v, ok := it.Value(c.name); !ok || v != c.expected {
				t.Errorf("expected %s=%v, got %v", c.name, c.expected, v)
			}
		}
	})

	t.Run("comments and blank lines are skipped", func(t *testing.T) {
		lines := linesOf(`// data

a | b
// a row comment
1 | 2`)
		iterations := parser.ParseIterations(lines, domain.LineRange{Start: 0, End: 4}, "adds")
		if len(iterations) != 1 {
			t.Fatalf("expected 1 iteration, got %d", len(iterations))
		}
	})
}

func TestTableParser_ParseIterations_Pipe(t *testing.T) {
	parser := NewTableParser()

	t.Run("single line array", func(t *testing.T) {
		lines := linesOf(`x << [1, 2, 3]`)
		iterations := parser.ParseIterations(lines, domain.LineRange{Start: 0, End: 0}, "squares #x")
		if len(iterations) != 3 {
			t.Fatalf("expected 3 iterations, got %d", len(iterations))
		}
		if v, _ := iterations[1].Value("x"); v != 2 {
			t.Errorf("expected x=2, got %v", v)
		}
		if iterations[2].DisplayName != "squares 3" {
			t.Errorf("unexpected display name: %s", iterations[2].DisplayName)
		}
	})

	t.Run("multiline array of record constructors", func(t *testing.T) {
		lines := linesOf(`person << [
    new Person(name: "Fred", age: 38),
    new Person(name: "Wilma", age: 36)
]`)
		iterations := parser.ParseIterations(lines, domain.LineRange{Start: 0, End: 3}, "ages")
		if len(iterations) != 2 {
			t.Fatalf("expected 2 iterations, got %d", len(iterations))
		}
		if v, _ := iterations[0].Value("person"); v != "Person(name: Fred, age: 38)" {
			t.Errorf("unexpected record value: %v", v)
		}
		if v, _ := iterations[1].Value("person"); v != "Person(name: Wilma, age: 36)" {
			t.Errorf("unexpected record value: %v", v)
		}
	})

	t.Run("pipe followed by table keeps sequential indices", func(t *testing.T) {
		lines := linesOf(`x << [10, 20]
a | b
1 | 2`)
		iterations := parser.ParseIterations(lines, domain.LineRange{Start: 0, End: 2}, "mixed")
		if len(iterations) != 3 {
			t.Fatalf("expected 3 iterations, got %d", len(iterations))
		}
		for i, it := range iterations {
			if it.Index != i {
				t.Errorf("expected index %d, got %d", i, it.Index)
			}
		}
	})

	t.Run("unmatched placeholder stays verbatim", func(t *testing.T) {
		lines := linesOf(`x << [1]`)
		iterations := parser.ParseIterations(lines, domain.LineRange{Start: 0, End: 0}, "uses #x and #missing")
		if len(iterations) != 1 {
			t.Fatalf("expected 1 iteration, got %d", len(iterations))
		}
		if iterations[0].DisplayName != "uses 1 and #missing" {
			t.Errorf("unexpected display name: %s", iterations[0].DisplayName)
		}
	})
}
