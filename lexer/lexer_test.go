package lexer

import (
	"testing"

	"mcalc.io/mcalc/token"
)

func TestNextToken(t *testing.T) {
	input := `x = 5.5
f(a, b) = a*b
[1,2;3,4] * [1 ; 1]
3 *- 2 => y
{} // é2 _
`
	tests := []struct {
		expectedKind    token.Kind
		expectedLiteral string
	}{
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.NUMBER, "5.5"},
		{token.IDENT, "f"},
		{token.LPAREN, "("},
		{token.IDENT, "a"},
		{token.COMMA, ","},
		{token.IDENT, "b"},
		{token.RPAREN, ")"},
		{token.ASSIGN, "="},
		{token.IDENT, "a"},
		{token.ASTERISK, "*"},
		{token.IDENT, "b"},
		{token.LBRACKET, "["},
		{token.NUMBER, "1"},
		{token.COMMA, ","},
		{token.NUMBER, "2"},
		{token.SEMICOLON, ";"},
		{token.NUMBER, "3"},
		{token.COMMA, ","},
		{token.NUMBER, "4"},
		{token.RBRACKET, "]"},
		{token.ASTERISK, "*"},
		{token.LBRACKET, "["},
		{token.NUMBER, "1"},
		{token.SEMICOLON, ";"},
		{token.NUMBER, "1"},
		{token.RBRACKET, "]"},
		{token.NUMBER, "3"},
		{token.SYMBOL, "*-"},
		{token.NUMBER, "2"},
		{token.RASSIGN, "=>"},
		{token.IDENT, "y"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.DSLASH, "//"},
		{token.IDENT, "é2"},
		{token.SYMBOL, "_"},
		{token.EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Kind() != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%v and %q, got=%v",
				i, tt.expectedKind, tt.expectedLiteral, tok.DebugString())
		}

		if tok.Literal() != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal())
		}
	}
	// Stays at EOF.
	if l.NextToken() != token.EOFT {
		t.Errorf("expected EOF again")
	}
}

func TestMarkersSplitRuns(t *testing.T) {
	toks := Tokenize("((-))[+]")
	expected := []string{"(", "(", "-", ")", ")", "[", "+", "]"}
	if len(toks) != len(expected) {
		t.Fatalf("got %d tokens, expected %d: %v", len(toks), len(expected), toks)
	}
	for i, e := range expected {
		if toks[i].Literal() != e {
			t.Errorf("token %d: got %q, expected %q", i, toks[i].Literal(), e)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if toks := Tokenize("  \t "); len(toks) != 0 {
		t.Errorf("expected no tokens, got %v", toks)
	}
	l := New(" 1")
	l.NextToken()
	if !l.HadWhitespace() {
		t.Errorf("expected whitespace before 1")
	}
	if l.Pos() != 2 {
		t.Errorf("expected position 2, got %d", l.Pos())
	}
}
