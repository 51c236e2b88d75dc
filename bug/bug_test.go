package bug_test

import (
	"testing"

	"mcalc.io/mcalc/extensions"
	"mcalc.io/mcalc/repl"
)

func init() {
	if err := extensions.Init(nil); err != nil {
		panic(err)
	}
}

// Regressions found while using the calculator.
func TestRegressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		errors   int
	}{
		// 0.1 + 0.2 used to show all the float noise.
		{"digits rounding", "0.1 + 0.2", "0.3\n", 0},
		// an empty bracket literal is an empty vector, not an error.
		{"empty literal", "[]", "[]\n", 0},
		{"empty line after value", "5\n\n+ 1", "5\n6\n", 0},
		// unary minus on a whole vector needs parentheses at the start of a line.
		{"negate vector", "(-[1; 2])", "[-1; -2]\n", 0},
		{"leading minus uses ans", "5\n-[1; 2]", "5\n", 1},
		// a failed call must not leave the function frame active.
		{"frame restored", "f(x) = x + nope\nf(1)\nx = 3\nx", "f(x) = (x + nope)\n3\n3\n", 1},
		{"wrong arity keeps env", "f(a, b) = a\nf(1)\nans", "f(a, b) = a\n0\n", 1},
		{"large numbers", "10 ^ 22", "1e+22\n", 0},
	}
	for _, tt := range tests {
		got, errs := repl.EvalString(tt.input)
		if got != tt.expected || len(errs) != tt.errors {
			t.Errorf("%s: EvalString(%q) got %v\n---\n%s\n---want---\n%s\n---", tt.name, tt.input, errs, got, tt.expected)
		}
	}
}
