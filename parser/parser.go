// Package parser turns a flat token sequence into an expression tree without
// a grammar: brackets are resolved first, then the sibling lists are
// normalized (implicit ans, implicit calls, unary operators) and finally
// binary operators are folded tier by tier.
package parser

import (
	"errors"

	"fortio.org/log"
	"mcalc.io/mcalc/ast"
	"mcalc.io/mcalc/lexer"
	"mcalc.io/mcalc/token"
)

var (
	ErrUnbalancedParenthesis = errors.New("unbalanced parenthesis")
	ErrUnbalancedBracket     = errors.New("unbalanced bracket")
)

// Parse runs the whole pipeline: Resolve, Normalize and Fold.
func Parse(tokens []*token.Token) (ast.Expression, error) {
	resolved, err := Resolve(ast.Leaves(tokens))
	if err != nil {
		return ast.Expression{}, err
	}
	log.Debugf("Resolved: %s", resolved)
	normalized := Normalize(resolved)
	log.Debugf("Normalized: %s", normalized)
	expr := Fold(normalized)
	if log.LogVerbose() {
		log.LogVf("Folded:\n%s", ast.DebugString(expr.Root))
	}
	return expr, nil
}

// ParseString tokenizes then parses a line.
func ParseString(line string) (ast.Expression, error) {
	return Parse(lexer.Tokenize(line))
}
