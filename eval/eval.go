package eval

import (
	"strconv"

	"fortio.org/log"
	"mcalc.io/mcalc/ast"
	"mcalc.io/mcalc/object"
	"mcalc.io/mcalc/token"
)

func (s *State) evalInternal(node ast.Node) (object.Value, error) {
	switch node := node.(type) {
	case *ast.Leaf:
		return s.evalLeaf(node)
	case *ast.Group:
		if node.IsBracket() {
			return s.evalLiteral(node)
		}
		switch node.Arity() {
		case 0:
			return object.Scalar{}, nil // empty expression.
		case 1:
			return s.Eval(node.Children[0])
		case 2:
			if l, ok := ast.AsLeaf(node.Children[0]); ok && l.IsUnary() {
				return s.evalPrefix(l, node.Children[1])
			}
			return s.evalCall(node.Children[0], node.Children[1])
		case 3:
			op, ok := ast.AsLeaf(node.Children[1])
			if !ok || op.IsOperand() {
				break
			}
			if op.IsAssignment() {
				return s.evalAssignment(op, node.Children[0], node.Children[2])
			}
			return s.evalInfix(op, node.Children[0], node.Children[2])
		}
	}
	return nil, s.Errorf(object.UnknownExpressionShape, "could not evaluate expression %s", node)
}

func (s *State) evalLeaf(l *ast.Leaf) (object.Value, error) {
	if l.Kind() == token.NUMBER {
		f, err := strconv.ParseFloat(l.Literal(), 64)
		if err == nil {
			return object.Scalar{Value: f}, nil
		}
		log.Warnf("Number %q failed to parse: %v", l.Literal(), err)
	}
	if v, ok := s.env.Get(l.Literal()); ok {
		return v, nil
	}
	return nil, s.Errorf(object.UnknownIdentifier, "unknown identifier: %s", l.Literal())
}

func (s *State) evalPrefix(op *ast.Leaf, right ast.Node) (object.Value, error) {
	if op.Kind() != token.MINUS {
		return nil, s.Errorf(object.UnknownOperator, "unary operator %q is reserved", op.Literal())
	}
	v, err := s.Eval(right)
	if err != nil {
		return nil, err
	}
	return object.Negate(v)
}

func (s *State) evalInfix(op *ast.Leaf, left, right ast.Node) (object.Value, error) {
	l, err := s.Eval(left)
	if err != nil {
		return nil, err
	}
	r, err := s.Eval(right)
	if err != nil {
		return nil, err
	}
	return object.Operate(op.Token, l, r)
}

// evalAssignment stores into the current frame. "name = value" and
// "value => name" assign a variable; a call shaped name side, like
// "f(x) = x ^ 2", defines a function instead and its body isn't evaluated.
func (s *State) evalAssignment(op *ast.Leaf, left, right ast.Node) (object.Value, error) {
	target, value := left, right
	if op.Kind() == token.RASSIGN {
		target, value = right, left
	}
	if g, ok := target.(*ast.Group); ok && isCallShape(g) {
		return s.defineFunction(g, value)
	}
	v, err := s.Eval(value)
	if err != nil {
		return nil, err
	}
	name, ok := ast.Identifier(unwrap(target))
	if !ok {
		return nil, s.Errorf(object.InvalidOperation, "cannot assign to %s", target)
	}
	if v.Type() == object.FUNC {
		return nil, s.Errorf(object.InvalidOperation, "cannot assign function %s to variable %s",
			v.(object.Function).Name, name)
	}
	log.LogVf("Assigning %s = %s", name, v.Inspect())
	return s.env.Set(name, v), nil
}

// unwrap removes passthrough groups, so "(x) = 3" still names x.
func unwrap(n ast.Node) ast.Node {
	for {
		g, ok := n.(*ast.Group)
		if !ok || g.Arity() != 1 || g.IsBracket() {
			return n
		}
		n = g.Children[0]
	}
}

// isCallShape is true for "name args" groups: an identifier followed by its arguments.
func isCallShape(g *ast.Group) bool {
	if g.Arity() != 2 {
		return false
	}
	_, ok := ast.Identifier(g.Children[0])
	return ok
}
