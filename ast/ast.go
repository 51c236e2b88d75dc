// Package ast holds the single recursive tree shape used by every stage of
// the expression builder, plus thin wrapper types naming each stage.
package ast

import (
	"strings"

	"mcalc.io/mcalc/token"
)

type Node interface {
	// String is the compact parenthesized form, e.g. "(1 + (2 * 3))".
	String() string
	PrettyPrint(ps *PrintState) *PrintState
}

type Leaf struct {
	*token.Token
}

type Group struct {
	Children []Node
}

func NewLeaf(t *token.Token) *Leaf {
	return &Leaf{Token: t}
}

func NewGroup(children ...Node) *Group {
	return &Group{Children: children}
}

// TokenSequence is the flat lexer output, one leaf per token.
type TokenSequence []*Leaf

func Leaves(tokens []*token.Token) TokenSequence {
	res := make(TokenSequence, len(tokens))
	for i, t := range tokens {
		res[i] = NewLeaf(t)
	}
	return res
}

// Resolved is a sibling list in which every ( ) and [ ] span is a Group.
// The normalizer keeps producing Resolved values.
type Resolved struct {
	Nodes []Node
}

// Expression is the folded tree, ready for evaluation. Root is always a Group.
type Expression struct {
	Root *Group
}

func (e Expression) String() string {
	return e.Root.String()
}

// AsLeaf returns the leaf if n is one.
func AsLeaf(n Node) (*Leaf, bool) {
	l, ok := n.(*Leaf)
	return l, ok
}

// IsKind is true when n is a leaf of kind k.
func IsKind(n Node, k token.Kind) bool {
	l, ok := n.(*Leaf)
	return ok && l.Kind() == k
}

// IsOperator is true for operator leaves. Groups are always operands.
func IsOperator(n Node) bool {
	l, ok := n.(*Leaf)
	return ok && l.IsOperator()
}

// Identifier returns the name when n is a plain identifier leaf.
func Identifier(n Node) (string, bool) {
	l, ok := n.(*Leaf)
	if !ok || l.Kind() != token.IDENT {
		return "", false
	}
	return l.Literal(), true
}

// IsBracket is true for literal-bracket groups (first child is the [ marker).
func (g *Group) IsBracket() bool {
	return len(g.Children) > 0 && IsKind(g.Children[0], token.LBRACKET)
}

// Arity is the number of children.
func (g *Group) Arity() int {
	return len(g.Children)
}

// SplitOn splits the children on top-level separator leaves of kind k.
// A group with no children yields no segment.
func (g *Group) SplitOn(k token.Kind) [][]Node {
	if len(g.Children) == 0 {
		return nil
	}
	var res [][]Node
	start := 0
	for i, c := range g.Children {
		if IsKind(c, k) {
			res = append(res, g.Children[start:i])
			start = i + 1
		}
	}
	return append(res, g.Children[start:])
}

func (l *Leaf) String() string {
	return l.Literal()
}

func (g *Group) String() string {
	ps := &PrintState{Out: &strings.Builder{}, Compact: true}
	g.PrettyPrint(ps)
	return ps.Out.String()
}

func (s TokenSequence) String() string {
	out := strings.Builder{}
	for i, l := range s {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(l.Literal())
	}
	return out.String()
}

func (r Resolved) String() string {
	return NewGroup(r.Nodes...).String()
}

// DebugString returns the indented multi-line form of a node.
func DebugString(n Node) string {
	ps := &PrintState{Out: &strings.Builder{}}
	n.PrettyPrint(ps)
	return ps.Out.String()
}
