package object

import (
	"strconv"
	"strings"

	"mcalc.io/mcalc/ast"
)

type Type uint8

type Value interface {
	Type() Type
	// Inspect is the full precision form, using the bracket literal syntax
	// so that reading it back yields the same shape.
	Inspect() string
}

const (
	UNKNOWN Type = iota
	SCALAR
	VECTOR
	MATRIX
	FUNC
	ANY // only used in Extension.ArgTypes.
	LAST
)

var typeNames = [...]string{
	UNKNOWN: "unknown",
	SCALAR:  "scalar",
	VECTOR:  "vector",
	MATRIX:  "matrix",
	FUNC:    "function",
	ANY:     "any",
	LAST:    "last",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

type Scalar struct {
	Value float64
}

func (s Scalar) Type() Type { return SCALAR }

func (s Scalar) Inspect() string {
	return formatFloat(s.Value)
}

// Vector is a column vector.
type Vector struct {
	Elements []float64
}

func (v Vector) Type() Type { return VECTOR }

func (v Vector) Inspect() string {
	out := strings.Builder{}
	writeFloats(&out, v.Elements, "[", "; ", "]")
	return out.String()
}

// Matrix is stored column-major: Columns[c][r] is row r of column c.
// All columns have the same length.
type Matrix struct {
	Columns [][]float64
}

func (m Matrix) Type() Type { return MATRIX }

func (m Matrix) Cols() int {
	return len(m.Columns)
}

func (m Matrix) Rows() int {
	if len(m.Columns) == 0 {
		return 0
	}
	return len(m.Columns[0])
}

// Row returns a copy of row r.
func (m Matrix) Row(r int) []float64 {
	res := make([]float64, len(m.Columns))
	for c, col := range m.Columns {
		res[c] = col[r]
	}
	return res
}

func (m Matrix) Inspect() string {
	out := strings.Builder{}
	out.WriteString("[")
	for r := range m.Rows() {
		if r > 0 {
			out.WriteString("; ")
		}
		writeFloats(&out, m.Row(r), "", ", ", "")
	}
	out.WriteString("]")
	return out.String()
}

// Function is a user defined function. It is the result of a definition
// like "f(x, y) = x * y" and lives in the Environment's function table.
type Function struct {
	Name      string
	Params    []string
	Signature ast.Node // parameter list as written.
	Body      ast.Node
}

func (f Function) Type() Type { return FUNC }

func (f Function) Inspect() string {
	out := strings.Builder{}
	out.WriteString(f.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(f.Params, ", "))
	out.WriteString(") = ")
	out.WriteString(f.Body.String())
	return out.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writeFloats(out *strings.Builder, list []float64, before, sep, after string) {
	out.WriteString(before)
	for i, f := range list {
		if i > 0 {
			out.WriteString(sep)
		}
		out.WriteString(formatFloat(f))
	}
	out.WriteString(after)
}

// Equals compares shapes and elements exactly.
func Equals(left, right Value) bool {
	if left.Type() != right.Type() {
		return false
	}
	switch l := left.(type) {
	case Scalar:
		return l.Value == right.(Scalar).Value
	case Vector:
		return floatsEqual(l.Elements, right.(Vector).Elements)
	case Matrix:
		r := right.(Matrix)
		if l.Cols() != r.Cols() {
			return false
		}
		for c, col := range l.Columns {
			if !floatsEqual(col, r.Columns[c]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func floatsEqual(left, right []float64) bool {
	if len(left) != len(right) {
		return false
	}
	for i, l := range left {
		if l != right[i] {
			return false
		}
	}
	return true
}
