package parser

import (
	"mcalc.io/mcalc/ast"
	"mcalc.io/mcalc/token"
)

// Fold reduces every sibling list, innermost first, by folding
// (left op right) triples one precedence tier at a time, left to right
// within a tier. Both assignment operators share the lowest tier so
// "3 => a => b" is ((3 => a) => b).
func Fold(r ast.Resolved) ast.Expression {
	return ast.Expression{Root: ast.NewGroup(ast.Modify(r.Nodes, foldTiers)...)}
}

func foldTiers(children []ast.Node) []ast.Node {
	for _, tier := range token.Tiers {
		children = foldTier(children, tier)
	}
	return children
}

func foldTier(children []ast.Node, tier token.Tier) []ast.Node {
	i := 1
	for i < len(children)-1 {
		op, ok := ast.AsLeaf(children[i])
		if !ok || !tier.Has(op.Kind()) || !isOperand(children[i-1]) || !isOperand(children[i+1]) {
			i++
			continue
		}
		// The new group takes the place of the left operand: the next
		// operator of the tier, if any, is now at i again.
		children = ast.Replace(children, i-1, i+2, ast.NewGroup(children[i-1], children[i], children[i+1]))
	}
	return children
}
