package parser

import (
	"fortio.org/log"
	"mcalc.io/mcalc/ast"
	"mcalc.io/mcalc/token"
)

// Normalize applies, in order, the implicit ans, implicit call and unary
// operator rewrites.
func Normalize(r ast.Resolved) ast.Resolved {
	nodes := fillAns(r.Nodes)
	nodes = ast.Modify(nodes, detectCalls)
	nodes = ast.Modify(nodes, wrapUnary)
	return ast.Resolved{Nodes: nodes}
}

// fillAns makes "+ 5" mean "ans + 5". Top level only.
func fillAns(nodes []ast.Node) []ast.Node {
	if len(nodes) == 0 {
		return nodes
	}
	l, ok := ast.AsLeaf(nodes[0])
	if !ok || !l.IsBinary() {
		return nodes
	}
	log.LogVf("Continuing from ans with %q", l.Literal())
	return append([]ast.Node{ast.NewLeaf(token.Ans)}, nodes...)
}

func isOperand(n ast.Node) bool {
	return !ast.IsOperator(n)
}

func detectCalls(children []ast.Node) []ast.Node {
	for i := 0; i+1 < len(children); i++ {
		children = pairCall(children, i)
	}
	return children
}

// pairCall groups children[i] with its right neighbour when both are operands,
// after first pairing that neighbour with its own right neighbour, so that
// "sin cos x" is sin(cos(x)).
func pairCall(children []ast.Node, i int) []ast.Node {
	if i+1 >= len(children) || !isOperand(children[i]) || !isOperand(children[i+1]) {
		return children
	}
	children = pairCall(children, i+1)
	return ast.Replace(children, i, i+2, ast.NewGroup(children[i], children[i+1]))
}

// wrapUnary pairs each unary operator found at the start of the list or
// right after another operator with the operand on its right. Right to left
// so "- - x" becomes (- (- x)).
func wrapUnary(children []ast.Node) []ast.Node {
	for i := len(children) - 2; i >= 0; i-- {
		l, ok := ast.AsLeaf(children[i])
		if !ok || !l.IsUnary() {
			continue
		}
		if i > 0 && isOperand(children[i-1]) {
			continue // binary use.
		}
		if !isOperand(children[i+1]) {
			continue
		}
		children = ast.Replace(children, i, i+2, ast.NewGroup(children[i], children[i+1]))
	}
	return children
}
