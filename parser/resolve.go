package parser

import (
	"fmt"

	"mcalc.io/mcalc/ast"
	"mcalc.io/mcalc/token"
)

type resolver struct {
	seq ast.TokenSequence
	pos int
}

// Resolve nests every ( ) span into a Group and every [ ] span into a Group
// whose first child is the [ marker. The closing markers are dropped.
// Brackets nest at any depth: "[[1]]" resolves to a bracket group inside a
// bracket group and only fails later, at evaluation, as invalid vector contents.
func Resolve(seq ast.TokenSequence) (ast.Resolved, error) {
	r := &resolver{seq: seq}
	nodes, err := r.resolve(token.EOF, -1)
	if err != nil {
		return ast.Resolved{}, err
	}
	return ast.Resolved{Nodes: nodes}, nil
}

// resolve consumes leaves up to and including the closer, EOF for the top level.
func (r *resolver) resolve(closer token.Kind, openPos int) ([]ast.Node, error) {
	var nodes []ast.Node
	for r.pos < len(r.seq) {
		leaf := r.seq[r.pos]
		r.pos++
		switch k := leaf.Kind(); k { //nolint:exhaustive // all other tokens are kept as is.
		case token.LPAREN:
			children, err := r.resolve(token.RPAREN, r.pos-1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, ast.NewGroup(children...))
		case token.LBRACKET:
			children, err := r.resolve(token.RBRACKET, r.pos-1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, ast.NewGroup(append([]ast.Node{leaf}, children...)...))
		case token.RPAREN, token.RBRACKET:
			if k == closer {
				return nodes, nil
			}
			return nil, fmt.Errorf("%w: unexpected %q at token %d", errorFor(k), leaf.Literal(), r.pos)
		default:
			nodes = append(nodes, leaf)
		}
	}
	if closer == token.EOF {
		return nodes, nil
	}
	open := r.seq[openPos]
	return nil, fmt.Errorf("%w: %q at token %d is never closed", errorFor(closer), open.Literal(), openPos+1)
}

func errorFor(k token.Kind) error {
	if k == token.RBRACKET {
		return ErrUnbalancedBracket
	}
	return ErrUnbalancedParenthesis
}
