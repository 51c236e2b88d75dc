package ast

import "fortio.org/log"

// Modify rewrites the tree depth-first: every child group's children are
// replaced by f of their post-order rewrite before f sees the group itself.
// f receives and returns the sibling list of one group.
func Modify(children []Node, f func([]Node) []Node) []Node {
	for _, c := range children {
		g, ok := c.(*Group)
		if !ok {
			continue
		}
		g.Children = Modify(g.Children, f)
	}
	res := f(children)
	log.Debugf("Modify: %d -> %d siblings", len(children), len(res))
	return res
}

// Replace returns children with [from, to) replaced by the single node n.
func Replace(children []Node, from, to int, n Node) []Node {
	res := make([]Node, 0, len(children)-(to-from)+1)
	res = append(res, children[:from]...)
	res = append(res, n)
	return append(res, children[to:]...)
}
