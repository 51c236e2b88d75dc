package parser_test

import (
	"errors"
	"testing"

	"mcalc.io/mcalc/ast"
	"mcalc.io/mcalc/lexer"
	"mcalc.io/mcalc/parser"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "()"},
		{"5", "(5)"},
		{"1 + 2 * 3", "((1 + (2 * 3)))"},
		{"(1 + 2) * 3", "((((1 + 2)) * 3))"},
		{"1 - 2 - 3", "(((1 - 2) - 3))"},
		{"8 / 4 // 2 * 3", "((((8 / 4) // 2) * 3))"},
		{"2 ^ 3 ^ 2", "(((2 ^ 3) ^ 2))"},
		{"2 * 3 ^ 2 + 1", "(((2 * (3 ^ 2)) + 1))"},
		{"x = 5", "((x = 5))"},
		{"5 => y", "((5 => y))"},
		{"x = 1 + 2", "((x = (1 + 2)))"},
		// Assignments chain left to right, in encounter order.
		{"a = b = 3", "(((a = b) = 3))"},
		{"3 => a => b", "(((3 => a) => b))"},
		{"+5", "((ans + 5))"},
		{"* 2", "((ans * 2))"},
		{"=> z", "((ans => z))"},
		{"- 5", "((ans - 5))"},
		{"(-5)", "(((- 5)))"},
		{"(- - x)", "(((- (- x))))"},
		{"2 * -3", "((2 * (- 3)))"},
		{"2 ^ -x", "((2 ^ (- x)))"},
		{"x = -3", "((x = (- 3)))"},
		{"& x", "((& x))"},
		{"sin(x)", "((sin (x)))"},
		{"sin x + 1", "(((sin x) + 1))"},
		{"sin cos 0", "((sin (cos 0)))"},
		{"f(1, 2) * 2", "(((f (1 , 2)) * 2))"},
		{"f(x) = x ^ 2", "(((f (x)) = (x ^ 2)))"},
		{"-f(x)", "((ans - (f (x))))"},
		{"(-f(x))", "(((- (f (x)))))"},
		{"[1,2;3,4] * [1;1]", "(([1 , 2 ; 3 , 4] * [1 ; 1]))"},
		{"[1 + 2, -3]", "([(1 + 2) , (- 3)])"},
		{"[]", "([])"},
		{"[(1 + 2) * 2]", "([(((1 + 2)) * 2)])"},
		{"((1))", "(((1)))"},
		{"()", "(())"},
	}
	for _, tt := range tests {
		expr, err := parser.ParseString(tt.input)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", tt.input, err)
			continue
		}
		if got := expr.String(); got != tt.expected {
			t.Errorf("Parse(%q) got %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected error
	}{
		{"(1 + 2", parser.ErrUnbalancedParenthesis},
		{"((1 + 2)", parser.ErrUnbalancedParenthesis},
		{"1 + 2)", parser.ErrUnbalancedParenthesis},
		{"[1, 2", parser.ErrUnbalancedBracket},
		{"[1, (2]", parser.ErrUnbalancedBracket},
		{"1]", parser.ErrUnbalancedBracket},
		{"[1)", parser.ErrUnbalancedParenthesis},
	}
	for _, tt := range tests {
		_, err := parser.ParseString(tt.input)
		if !errors.Is(err, tt.expected) {
			t.Errorf("Parse(%q) got error %v, want %v", tt.input, err, tt.expected)
		}
	}
}

func TestResolveKeepsBracketContents(t *testing.T) {
	r, err := parser.Resolve(ast.Leaves(lexer.Tokenize("f (x, [1, (2 + 3); 4])")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Nodes) != 2 {
		t.Fatalf("expected f and one group, got %d nodes: %s", len(r.Nodes), r)
	}
	args, ok := r.Nodes[1].(*ast.Group)
	if !ok {
		t.Fatalf("second node isn't a group: %T", r.Nodes[1])
	}
	if len(args.Children) != 3 {
		t.Fatalf("expected x , [...], got %s", args)
	}
	bracket, ok := args.Children[2].(*ast.Group)
	if !ok || !bracket.IsBracket() {
		t.Fatalf("expected a bracket group, got %s", args.Children[2])
	}
	// [ 1 , (2 + 3) ; 4 - operators inside are not folded at this stage.
	if got := bracket.String(); got != "[1 , (2 + 3) ; 4]" {
		t.Errorf("bracket group got %s", got)
	}
	if bracket.Arity() != 6 {
		t.Errorf("bracket group should keep its marker: arity %d", bracket.Arity())
	}
}

func TestStagesAreIdempotentOnFlatInput(t *testing.T) {
	r, err := parser.Resolve(ast.Leaves(lexer.Tokenize("1 + 2")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := parser.Normalize(r)
	if n.String() != "(1 + 2)" {
		t.Errorf("Normalize changed a flat expression: %s", n)
	}
	e := parser.Fold(n)
	if e.Root.Arity() != 1 {
		t.Errorf("expected a single folded child, got %s", e)
	}
}
