package token

import (
	"testing"
)

func TestInterning(t *testing.T) {
	Init()
	myToken1 := &Token{kind: IDENT, literal: "myToken1"}
	myToken2 := &Token{kind: IDENT, literal: "myToken2"}
	myToken1Again := &Token{kind: IDENT, literal: "myToken1"}
	if myToken1 == myToken1Again {
		t.Errorf("myToken1 and myToken1Again should not be the same pointer value")
	}
	norm1 := InternToken(myToken1)
	norm2 := InternToken(myToken2)
	norm1Again := InternToken(myToken1Again)
	if norm1 != norm1Again {
		t.Errorf("norm1 and norm1Again should be the same interned pointer")
	}
	if norm1 == norm2 {
		t.Errorf("norm1 and norm2 should not be the same interned pointer")
	}
	expected := `IDENT:"myToken1"`
	if myToken1.DebugString() != expected {
		t.Errorf("Unexpected DebugString: %s vs %s", myToken1.DebugString(), expected)
	}
}

func TestLookupWord(t *testing.T) {
	Init()
	tests := []struct {
		input    string
		expected Kind
	}{
		{"5", NUMBER},
		{"3.25", NUMBER},
		{".5", NUMBER},
		{"1e3", NUMBER},
		{"x", IDENT},
		{"ans", IDENT},
		{"2x", IDENT},
		{"1.2.3", IDENT},
	}
	for _, tt := range tests {
		tok := LookupWord(tt.input)
		if tok.Kind() != tt.expected {
			t.Errorf("LookupWord(%q) returned %v, expected %v", tt.input, tok.Kind(), tt.expected)
		}
		if tok.Literal() != tt.input {
			t.Errorf("LookupWord(%q) literal %q", tt.input, tok.Literal())
		}
		if LookupWord(tt.input) != tok {
			t.Errorf("LookupWord(%q) returned a different pointer the second time", tt.input)
		}
	}
	if Ans != LookupWord("ans") {
		t.Errorf("Ans should be the interned ans identifier")
	}
}

func TestLookupSymbol(t *testing.T) {
	Init()
	tests := []struct {
		input    string
		expected Kind
		binary   bool
		unary    bool
	}{
		{"^", POW, true, false},
		{"*", ASTERISK, true, false},
		{"/", SLASH, true, false},
		{"//", DSLASH, true, false},
		{"+", PLUS, true, false},
		{"-", MINUS, true, true},
		{"=", ASSIGN, true, false},
		{"=>", RASSIGN, true, false},
		{"&", AMP, false, true},
		{"!", BANG, false, true},
		{",", COMMA, false, false},
		{";", SEMICOLON, false, false},
		{"*-", SYMBOL, false, false},
		{"<=", SYMBOL, false, false},
	}
	for _, tt := range tests {
		tok := LookupSymbol(tt.input)
		if tok.Kind() != tt.expected {
			t.Errorf("LookupSymbol(%q) returned %v, expected %v", tt.input, tok.Kind(), tt.expected)
		}
		if tok.IsBinary() != tt.binary {
			t.Errorf("%q IsBinary() = %v", tt.input, tok.IsBinary())
		}
		if tok.IsUnary() != tt.unary {
			t.Errorf("%q IsUnary() = %v", tt.input, tok.IsUnary())
		}
		if !tok.IsOperator() {
			t.Errorf("%q should be an operator token", tt.input)
		}
	}
}

func TestMarkers(t *testing.T) {
	Init()
	for _, ch := range []byte("()[]{}") {
		tok := Marker(ch)
		if tok == nil {
			t.Fatalf("Marker(%c) not found", ch)
		}
		if tok.Literal() != string(ch) {
			t.Errorf("Marker(%c) literal %q", ch, tok.Literal())
		}
		if ByKind(tok.Kind()) != tok {
			t.Errorf("ByKind(%v) != Marker(%c)", tok.Kind(), ch)
		}
	}
	if Marker('x') != nil {
		t.Errorf("Marker(x) should be nil")
	}
}

func TestTiers(t *testing.T) {
	if len(Tiers) != 4 {
		t.Fatalf("expected 4 precedence tiers, got %d", len(Tiers))
	}
	if !Tiers[0].Has(POW) || Tiers[0].Has(ASTERISK) {
		t.Errorf("first tier should be only ^")
	}
	if !Tiers[1].Has(DSLASH) || !Tiers[1].Has(SLASH) {
		t.Errorf("second tier should have / and //")
	}
	if !Tiers[3].Has(ASSIGN) || !Tiers[3].Has(RASSIGN) {
		t.Errorf("last tier should be both assignments")
	}
	if !Info().Operators.Has("=>") || !Info().Markers.Has("[") {
		t.Errorf("Info() missing entries: %v %v", Info().Operators, Info().Markers)
	}
}

func TestKindString(t *testing.T) {
	if RASSIGN.String() != "RASSIGN" {
		t.Errorf("RASSIGN.String() = %q", RASSIGN.String())
	}
	if Kind(200).String() != "Kind(200)" {
		t.Errorf("out of range kind String() = %q", Kind(200).String())
	}
}
