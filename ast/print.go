package ast

import (
	"strings"
)

type PrintState struct {
	Out         *strings.Builder
	IndentLevel int
	Compact     bool // single line, used by String()
}

func (ps *PrintState) Print(str ...string) *PrintState {
	for _, s := range str {
		ps.Out.WriteString(s)
	}
	return ps
}

func (ps *PrintState) newline() {
	if ps.Compact {
		return
	}
	ps.Out.WriteString("\n")
	ps.Out.WriteString(strings.Repeat("\t", ps.IndentLevel))
}

func (l *Leaf) PrettyPrint(ps *PrintState) *PrintState {
	return ps.Print(l.Literal())
}

func (g *Group) PrettyPrint(ps *PrintState) *PrintState {
	open, closing, children := "(", ")", g.Children
	if g.IsBracket() {
		open, closing, children = "[", "]", g.Children[1:]
	}
	ps.Print(open)
	simple := true
	for _, c := range children {
		if _, ok := c.(*Group); ok {
			simple = false
			break
		}
	}
	// Groups of only leaves stay on one line even in non compact mode.
	if simple || ps.Compact {
		for i, c := range children {
			if i > 0 {
				ps.Print(" ")
			}
			c.PrettyPrint(ps)
		}
		return ps.Print(closing)
	}
	ps.IndentLevel++
	for _, c := range children {
		ps.newline()
		c.PrettyPrint(ps)
	}
	ps.IndentLevel--
	ps.newline()
	return ps.Print(closing)
}
