package object

import (
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/rivo/uniseg"
	"github.com/shopspring/decimal"
)

// Magnitude from which numbers are shown in exponent form.
const exponentAbove = 1e21

// FormatNumber rounds f to digits decimals, trailing zeros trimmed.
// Negative digits means full precision.
func FormatNumber(f float64, digits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if digits < 0 {
		return formatFloat(f)
	}
	if math.Abs(f) >= exponentAbove {
		return strconv.FormatFloat(f, 'g', digits+1, 64)
	}
	return decimal.NewFromFloat(f).Round(safecast.MustConv[int32](digits)).String()
}

// Format is the display form of v, with numbers rounded per digits.
// Matrices are shown one row per line with right aligned columns.
func Format(v Value, digits int) string {
	switch v := v.(type) {
	case Scalar:
		return FormatNumber(v.Value, digits)
	case Vector:
		parts := make([]string, len(v.Elements))
		for i, x := range v.Elements {
			parts[i] = FormatNumber(x, digits)
		}
		return "[" + strings.Join(parts, "; ") + "]"
	case Matrix:
		return formatMatrix(v, digits)
	default:
		return v.Inspect()
	}
}

func formatMatrix(m Matrix, digits int) string {
	cells := make([][]string, m.Rows())
	widths := make([]int, m.Cols())
	for r := range cells {
		cells[r] = make([]string, m.Cols())
		for c, col := range m.Columns {
			s := FormatNumber(col[r], digits)
			cells[r][c] = s
			widths[c] = max(widths[c], uniseg.StringWidth(s))
		}
	}
	out := strings.Builder{}
	out.WriteString("[")
	for r, row := range cells {
		if r > 0 {
			out.WriteString("\n ")
		}
		for c, s := range row {
			if c > 0 {
				out.WriteString("  ")
			}
			out.WriteString(strings.Repeat(" ", widths[c]-uniseg.StringWidth(s)))
			out.WriteString(s)
		}
	}
	out.WriteString("]")
	return out.String()
}
