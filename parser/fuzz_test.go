package parser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/espresso-lang/espresso/ast"
)

var fuzzSeeds = []string{
	// Valid programs
	"1 + 2 * 3",
	"x",
	"true",
	"nil",
	`"hello"`,
	`'it\'s'`,
	"0xff",
	"[]",
	"{}",
	"[1, 2, 3]",
	"{a, b: 2, \"c\": 3}",
	"a.b.c",
	"a.b(1)",
	"a.(b)",
	"a[0] = 1",
	"x = y",
	"-x",
	"not x",
	"!x",
	"::f",
	"a and b or c",
	"a < b == c",
	"(a; ; b)",
	"(;)",
	"var a = 1, b",
	"let f(a, b = 1) {a + b}",
	"let +(a, b) a",
	"let(x) x",
	"if (a) b else if (c) d else e",
	"while (x) x = x - 1",
	"return 1",
	"fail 1",
	"new Point(1, 2)",
	"this.x",
	"f(g(h(x)))",
	"a;\nb;\nc",

	// Invalid input
	"",
	"(",
	")",
	"[",
	"{",
	"(1,2",
	"1 +",
	"1 = 2",
	"a = b = c",
	"if",
	"if (",
	"if (x)",
	"else",
	"let",
	"let f",
	"let f(",
	"var",
	"var 1",
	"new",
	"return",
	"a..b",
	".a",
	"::",
	"{a: }",
	"{1}",
	"\"unterminated",
	"/* open",
	"0x",
	"1a",
	"99999999999999999999",
	"@",
	"\x00",
	"\xff",
}

// FuzzParse checks that the parser never panics, and that any tree it
// produces prints as source which parses back into the same tree.
func FuzzParse(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 5000 {
			return
		}
		script, err := Parse(input, WithMaxDepth(200))
		if err != nil {
			if script != nil {
				t.Errorf("Parse returned a tree and an error for %q", truncate(input, 100))
			}
			if _, ok := err.(*SyntaxError); !ok {
				t.Errorf("Parse returned %T for %q", err, truncate(input, 100))
			}
			return
		}
		if script == nil {
			t.Fatalf("Parse returned nil tree without error for %q", truncate(input, 100))
		}

		source := script.String()
		if utf8.ValidString(input) && !utf8.ValidString(source) {
			t.Errorf("String() produced invalid UTF-8 for %q", truncate(input, 100))
		}
		reparsed, err := Parse(source)
		if err != nil {
			t.Fatalf("printed source %q of %q does not parse: %v", truncate(source, 200), truncate(input, 100), err)
		}
		if !ast.Equal(script, reparsed) {
			t.Errorf("round trip changed the tree of %q:\n%s\n%s",
				truncate(input, 100), ast.Dump(script), ast.Dump(reparsed))
		}
	})
}

// FuzzParseDeepNesting checks that deep nesting either parses or fails with
// a depth error, without exhausting the stack.
func FuzzParseDeepNesting(f *testing.F) {
	f.Add(10)
	f.Add(100)
	f.Add(500)

	f.Fuzz(func(t *testing.T, depth int) {
		if depth < 1 || depth > 1000 {
			return
		}
		inputs := []struct {
			source string
			nested bool
		}{
			{strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth), true},
			{strings.Repeat("[", depth) + "x" + strings.Repeat("]", depth), true},
			{strings.Repeat("{a: ", depth) + "x" + strings.Repeat("}", depth), true},
			{strings.Repeat("-", depth) + "x", true},
			{strings.Repeat("f(", depth) + strings.Repeat(")", depth), true},
			{strings.Repeat("a[", depth) + "x" + strings.Repeat("]", depth), true},
			{"x" + strings.Repeat(".y", depth), false},
		}
		for _, input := range inputs {
			_, err := Parse(input.source, WithMaxDepth(100))
			if err == nil {
				if input.nested && depth > 100 {
					t.Errorf("depth %d: %s parsed beyond the depth limit", depth, truncate(input.source, 20))
				}
				continue
			}
			serr, ok := err.(*SyntaxError)
			if !ok {
				t.Fatalf("unexpected error type %T", err)
			}
			if serr.Incomplete() {
				t.Errorf("depth %d: balanced input reported as incomplete: %v", depth, err)
			}
		}
	})
}

// truncate truncates a string for display
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
