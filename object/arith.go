package object

import (
	"math"

	"fortio.org/log"
	"mcalc.io/mcalc/token"
)

// Operate applies a binary arithmetic operator. Shapes must agree:
//
//	^            scalar ^ scalar
//	+ -          same shape and size, elementwise
//	*            scalar scaling of anything, matrix x vector, matrix x matrix
//	/            scalar / scalar, vector or matrix / scalar
//
// Everything else, including any function operand, is an InvalidOperation.
// The reserved "//" and non arithmetic tokens are an UnknownOperator.
func Operate(op *token.Token, left, right Value) (Value, error) {
	log.Debugf("Operate %s %s %s", left.Type(), op.Literal(), right.Type())
	if !op.IsArithmetic() {
		return nil, Errorf(UnknownOperator, "operator %q does not exist", op.Literal())
	}
	if left.Type() == FUNC || right.Type() == FUNC {
		return nil, mismatch(op, left, right)
	}
	switch op.Kind() { //nolint:exhaustive // checked by IsArithmetic above.
	case token.POW:
		l, lok := left.(Scalar)
		r, rok := right.(Scalar)
		if !lok || !rok {
			return nil, mismatch(op, left, right)
		}
		return Scalar{math.Pow(l.Value, r.Value)}, nil
	case token.PLUS:
		return elementwise(op, left, right, func(a, b float64) float64 { return a + b })
	case token.MINUS:
		return elementwise(op, left, right, func(a, b float64) float64 { return a - b })
	case token.ASTERISK:
		return multiply(op, left, right)
	case token.SLASH:
		return divide(op, left, right)
	default:
		return nil, Errorf(UnknownOperator, "operator %q is reserved", op.Literal())
	}
}

// Negate is unary minus: multiplication by -1.
func Negate(v Value) (Value, error) {
	return Operate(token.ByKind(token.ASTERISK), Scalar{-1}, v)
}

func mismatch(op *token.Token, left, right Value) error {
	return Errorf(InvalidOperation, "cannot compute %s %s %s", left.Type(), op.Literal(), right.Type())
}

func sizeMismatch(op *token.Token, left, right Value, lsize, rsize int) error {
	return Errorf(InvalidOperation, "cannot compute %s %s %s of different sizes (%d and %d)",
		left.Type(), op.Literal(), right.Type(), lsize, rsize)
}

func zip(left, right []float64, f func(a, b float64) float64) []float64 {
	res := MakeFloatSlice(len(left))
	for i, l := range left {
		res = append(res, f(l, right[i]))
	}
	return res
}

func apply(list []float64, f func(a float64) float64) []float64 {
	res := MakeFloatSlice(len(list))
	for _, v := range list {
		res = append(res, f(v))
	}
	return res
}

func mapValue(v Value, f func(a float64) float64) Value {
	switch v := v.(type) {
	case Scalar:
		return Scalar{f(v.Value)}
	case Vector:
		return Vector{apply(v.Elements, f)}
	case Matrix:
		cols := make([][]float64, len(v.Columns))
		for c, col := range v.Columns {
			cols[c] = apply(col, f)
		}
		return Matrix{cols}
	default:
		return v
	}
}

func elementwise(op *token.Token, left, right Value, f func(a, b float64) float64) (Value, error) {
	switch l := left.(type) {
	case Scalar:
		if r, ok := right.(Scalar); ok {
			return Scalar{f(l.Value, r.Value)}, nil
		}
	case Vector:
		if r, ok := right.(Vector); ok {
			if len(l.Elements) != len(r.Elements) {
				return nil, sizeMismatch(op, left, right, len(l.Elements), len(r.Elements))
			}
			return Vector{zip(l.Elements, r.Elements, f)}, nil
		}
	case Matrix:
		if r, ok := right.(Matrix); ok {
			if l.Cols() != r.Cols() || l.Rows() != r.Rows() {
				return nil, sizeMismatch(op, left, right, l.Rows()*l.Cols(), r.Rows()*r.Cols())
			}
			cols := make([][]float64, l.Cols())
			for c := range l.Columns {
				cols[c] = zip(l.Columns[c], r.Columns[c], f)
			}
			return Matrix{cols}, nil
		}
	}
	return nil, mismatch(op, left, right)
}

func multiply(op *token.Token, left, right Value) (Value, error) {
	if l, ok := left.(Scalar); ok {
		return mapValue(right, func(a float64) float64 { return l.Value * a }), nil
	}
	if r, ok := right.(Scalar); ok {
		return mapValue(left, func(a float64) float64 { return a * r.Value }), nil
	}
	m, ok := left.(Matrix)
	if !ok {
		return nil, mismatch(op, left, right)
	}
	switch r := right.(type) {
	case Vector:
		if m.Cols() != len(r.Elements) {
			return nil, sizeMismatch(op, left, right, m.Cols(), len(r.Elements))
		}
		return Vector{matVec(MakeMatrix(m.Rows(), 1)[0], m, r.Elements)}, nil
	case Matrix:
		if m.Cols() != r.Rows() {
			return nil, sizeMismatch(op, left, right, m.Cols(), r.Rows())
		}
		cols := MakeMatrix(m.Rows(), r.Cols())
		for c, col := range r.Columns {
			matVec(cols[c], m, col)
		}
		return Matrix{cols}, nil
	default:
		return nil, mismatch(op, left, right)
	}
}

// matVec accumulates into res, of length m.Rows(), the linear combination
// of m's columns weighted by v.
func matVec(res []float64, m Matrix, v []float64) []float64 {
	for c, col := range m.Columns {
		for r, x := range col {
			res[r] += x * v[c]
		}
	}
	return res
}

func divide(op *token.Token, left, right Value) (Value, error) {
	r, ok := right.(Scalar)
	if !ok {
		return nil, mismatch(op, left, right)
	}
	return mapValue(left, func(a float64) float64 { return a / r.Value }), nil
}

// Transpose swaps rows and columns. A vector becomes a one row matrix and
// a one row matrix becomes a vector.
func Transpose(v Value) (Value, error) {
	switch v := v.(type) {
	case Scalar:
		return v, nil
	case Vector:
		cols := MakeMatrix(1, len(v.Elements))
		for i, x := range v.Elements {
			cols[i][0] = x
		}
		return Matrix{cols}, nil
	case Matrix:
		if v.Rows() == 1 {
			return Vector{v.Row(0)}, nil
		}
		cols := MakeMatrix(v.Cols(), v.Rows())
		for c, col := range v.Columns {
			for r, x := range col {
				cols[r][c] = x
			}
		}
		return Matrix{cols}, nil
	default:
		return nil, Errorf(InvalidOperation, "cannot transpose a %s", v.Type())
	}
}
