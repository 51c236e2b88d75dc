package eval

import (
	"mcalc.io/mcalc/ast"
	"mcalc.io/mcalc/object"
	"mcalc.io/mcalc/token"
)

// evalLiteral builds a vector or matrix from a bracket group: "," moves to
// the next column, ";" starts a new row. Every element must be a scalar.
// One column is a Vector, so [1; 2] is a Vector but [1, 2] is a one row Matrix.
func (s *State) evalLiteral(g *ast.Group) (object.Value, error) {
	var columns [][]float64
	col := 0
	for _, child := range g.Children[1:] {
		switch {
		case ast.IsKind(child, token.COMMA):
			continue
		case ast.IsKind(child, token.SEMICOLON):
			col = 0
			continue
		}
		v, err := s.Eval(child)
		if err != nil {
			return nil, err
		}
		sc, ok := v.(object.Scalar)
		if !ok {
			return nil, s.Errorf(object.InvalidVectorContents, "cannot put a %s in a vector: %s", v.Type(), child)
		}
		if col == len(columns) {
			columns = append(columns, nil)
		}
		columns[col] = append(columns[col], sc.Value)
		col++
	}
	for _, c := range columns {
		if len(c) != len(columns[0]) {
			return nil, s.Errorf(object.MatrixUnequalRowLengths, "matrix rows have unequal lengths in %s", g)
		}
	}
	switch len(columns) {
	case 0:
		return object.Vector{Elements: []float64{}}, nil
	case 1:
		return object.Vector{Elements: columns[0]}, nil
	default:
		return object.Matrix{Columns: columns}, nil
	}
}
