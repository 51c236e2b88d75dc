package token

import "fortio.org/sets"

// Tier is one precedence level of binary operators, highest binding first.
type Tier sets.Set[Kind]

var (
	// Tiers in folding order: power, multiplicative, additive, assignment.
	Tiers = []Tier{
		Tier(sets.New(POW)),
		Tier(sets.New(ASTERISK, SLASH, DSLASH)),
		Tier(sets.New(PLUS, MINUS)),
		Tier(sets.New(RASSIGN, ASSIGN)),
	}
	binary     = sets.New(POW, ASTERISK, SLASH, DSLASH, PLUS, MINUS, ASSIGN, RASSIGN)
	unary      = sets.New(MINUS, AMP, BANG)
	assignment = sets.New(ASSIGN, RASSIGN)
	arithmetic = sets.New(POW, ASTERISK, SLASH, DSLASH, PLUS, MINUS)
)

// Has reports whether the token kind belongs to this tier.
func (t Tier) Has(k Kind) bool {
	return sets.Set[Kind](t).Has(k)
}

func (t *Token) IsBinary() bool {
	return binary.Has(t.kind)
}

func (t *Token) IsUnary() bool {
	return unary.Has(t.kind)
}

func (t *Token) IsAssignment() bool {
	return assignment.Has(t.kind)
}

func (t *Token) IsArithmetic() bool {
	return arithmetic.Has(t.kind)
}

// Info enables introspection of the known operator literals (for help and completion).
type CalcInfo struct {
	Operators sets.Set[string]
	Markers   sets.Set[string]
}

var info = CalcInfo{}

func initInfo() {
	info.Operators = sets.New[string]()
	for lit := range symbols {
		info.Operators.Add(lit)
	}
	info.Markers = sets.New[string]()
	for ch := range markers {
		info.Markers.Add(string(ch))
	}
}

func Info() CalcInfo {
	return info
}
