// Package lexer splits an input line into word runs, symbol runs and
// single character grouping markers.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"mcalc.io/mcalc/token"
)

type Lexer struct {
	input         string
	pos           int
	hadWhitespace bool
}

func New(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) HadWhitespace() bool {
	return l.hadWhitespace
}

// Tokenize returns all the tokens of input, without the final EOF.
func Tokenize(input string) []*token.Token {
	l := New(input)
	var res []*token.Token
	for {
		t := l.NextToken()
		if t.Kind() == token.EOF {
			return res
		}
		res = append(res, t)
	}
}

func (l *Lexer) NextToken() *token.Token {
	l.skipWhitespace()
	ch, size := l.peekRune()
	switch {
	case size == 0:
		return token.EOFT
	case ch < utf8.RuneSelf && token.Marker(byte(ch)) != nil:
		l.pos += size
		return token.Marker(byte(ch))
	case IsWordChar(ch):
		return token.LookupWord(l.readRun(IsWordChar))
	default:
		return token.LookupSymbol(l.readRun(isSymbolChar))
	}
}

// IsWordChar is true for the characters of identifiers and numbers.
func IsWordChar(ch rune) bool {
	return ch == '.' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isMarker(ch rune) bool {
	return ch < utf8.RuneSelf && token.Marker(byte(ch)) != nil
}

func isSymbolChar(ch rune) bool {
	return !unicode.IsSpace(ch) && !IsWordChar(ch) && !isMarker(ch)
}

func (l *Lexer) skipWhitespace() {
	l.hadWhitespace = false
	for {
		ch, size := l.peekRune()
		if size == 0 || !unicode.IsSpace(ch) {
			return
		}
		l.hadWhitespace = true
		l.pos += size
	}
}

func (l *Lexer) peekRune() (rune, int) {
	if l.pos >= len(l.input) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

// readRun consumes the maximal run of characters accepted by in, starting at the current position.
func (l *Lexer) readRun(in func(rune) bool) string {
	start := l.pos
	for {
		ch, size := l.peekRune()
		if size == 0 || !in(ch) {
			break
		}
		l.pos += size
	}
	return l.input[start:l.pos]
}
