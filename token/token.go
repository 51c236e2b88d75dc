// Package token classifies the raw runs produced by the lexer into a closed set
// of kinds, once, so later stages never re-match operator strings.
package token

import (
	"strconv"

	"fortio.org/log"
)

type Kind uint8

const (
	ILLEGAL Kind = iota
	EOF

	// Operands.
	NUMBER // 3, 4.5, .5
	IDENT  // x, sin, ans, 2x (word runs that don't parse as numbers)

	// Operators.
	POW      // ^
	ASTERISK // *
	SLASH    // /
	DSLASH   // // (reserved)
	PLUS     // +
	MINUS    // -
	ASSIGN   // =
	RASSIGN  // =>
	AMP      // & (reserved unary)
	BANG     // ! (reserved unary)

	// Separators inside literals and argument lists.
	COMMA
	SEMICOLON

	// Grouping markers, always single character tokens.
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE

	// Any other symbol run, e.g. "*-" or "<=".
	SYMBOL
	LAST
)

var kindNames = [...]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	NUMBER:    "NUMBER",
	IDENT:     "IDENT",
	POW:       "POW",
	ASTERISK:  "ASTERISK",
	SLASH:     "SLASH",
	DSLASH:    "DSLASH",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	ASSIGN:    "ASSIGN",
	RASSIGN:   "RASSIGN",
	AMP:       "AMP",
	BANG:      "BANG",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACKET:  "LBRACKET",
	RBRACKET:  "RBRACKET",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	SYMBOL:    "SYMBOL",
	LAST:      "LAST",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is immutable once created: fields are only reachable through accessors.
type Token struct {
	kind    Kind
	literal string
}

func (t *Token) Kind() Kind {
	return t.kind
}

func (t *Token) Literal() string {
	return t.literal
}

func (t *Token) DebugString() string {
	return t.kind.String() + ":" + strconv.Quote(t.literal)
}

// IsOperand is true for the tokens that can stand alone as a value or a callee.
func (t *Token) IsOperand() bool {
	return t.kind == NUMBER || t.kind == IDENT
}

// IsOperator is the complement of IsOperand: every symbol and marker token.
func (t *Token) IsOperator() bool {
	return !t.IsOperand()
}

var (
	// Symbol runs with a dedicated kind. Everything else is SYMBOL.
	symbols = map[string]Kind{
		"^":  POW,
		"*":  ASTERISK,
		"/":  SLASH,
		"//": DSLASH,
		"+":  PLUS,
		"-":  MINUS,
		"=":  ASSIGN,
		"=>": RASSIGN,
		"&":  AMP,
		"!":  BANG,
		",":  COMMA,
		";":  SEMICOLON,
	}
	markers = map[byte]Kind{
		'(': LPAREN,
		')': RPAREN,
		'[': LBRACKET,
		']': RBRACKET,
		'{': LBRACE,
		'}': RBRACE,
	}
	interned = make(map[Token]*Token)
	byKind   = make(map[Kind]*Token)
	// Ans is the synthetic identifier inserted in front of continuation lines.
	Ans *Token
	// EOFT is returned by the lexer once the input is exhausted.
	EOFT *Token
)

func init() {
	Init()
}

// Init (re)creates the intern table and the constant tokens.
func Init() {
	interned = make(map[Token]*Token)
	byKind = make(map[Kind]*Token)
	for lit, k := range symbols {
		byKind[k] = Intern(k, lit)
	}
	for ch, k := range markers {
		byKind[k] = Intern(k, string(ch))
	}
	EOFT = Intern(EOF, "")
	Ans = Intern(IDENT, "ans")
	initInfo()
}

// Intern returns the unique shared token for that kind and literal.
func Intern(k Kind, literal string) *Token {
	t := Token{kind: k, literal: literal}
	if it, ok := interned[t]; ok {
		return it
	}
	it := &t
	interned[t] = it
	return it
}

// InternToken normalizes t to the shared instance.
func InternToken(t *Token) *Token {
	return Intern(t.kind, t.literal)
}

// ByKind returns the constant token for operator and marker kinds, nil otherwise.
func ByKind(k Kind) *Token {
	return byKind[k]
}

// Marker returns the grouping marker token for ch, or nil if ch isn't one of ()[]{}.
func Marker(ch byte) *Token {
	k, ok := markers[ch]
	if !ok {
		return nil
	}
	return byKind[k]
}

// LookupSymbol classifies a maximal symbol run.
func LookupSymbol(run string) *Token {
	if k, ok := symbols[run]; ok {
		return byKind[k]
	}
	log.Debugf("LookupSymbol(%q) not a known operator", run)
	return Intern(SYMBOL, run)
}

// LookupWord classifies a maximal word run as a number or an identifier.
func LookupWord(run string) *Token {
	if _, err := strconv.ParseFloat(run, 64); err == nil {
		return Intern(NUMBER, run)
	}
	return Intern(IDENT, run)
}
