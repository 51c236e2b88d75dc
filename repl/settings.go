package repl

import (
	"fmt"
	"os"
	"slices"

	"fortio.org/log"
	"fortio.org/safecast"
	"github.com/goccy/go-yaml"
	"mcalc.io/mcalc/eval"
	"mcalc.io/mcalc/object"
)

// Settings is the optional yaml startup file, e.g:
//
//	trig_mode: radians
//	digits: 4
//	variables:
//	  g: 9.81
//	  v: [1, 2, 3]          # vector
//	  m: [[1, 2], [3, 4]]   # matrix, one list per row
type Settings struct {
	TrigMode  string         `yaml:"trig_mode"`
	Digits    *int           `yaml:"digits"`
	Variables map[string]any `yaml:"variables"`
}

func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	st, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("Loaded settings from %s", path)
	return st, nil
}

func ParseSettings(data []byte) (*Settings, error) {
	st := &Settings{}
	if err := yaml.Unmarshal(data, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Apply sets the trig mode, digits and variables of the state.
func (st *Settings) Apply(s *eval.State) error {
	settings := s.Settings()
	switch st.TrigMode {
	case "":
	case "deg", "degrees":
		settings.Trig = object.Degrees
	case "rad", "radians":
		settings.Trig = object.Radians
	default:
		return fmt.Errorf("invalid trig_mode %q, should be degrees or radians", st.TrigMode)
	}
	if st.Digits != nil {
		if !DigitsOk(*st.Digits) {
			return fmt.Errorf("invalid digits %d, should be between -1 and %d", *st.Digits, MaxDigits)
		}
		settings.Digits = *st.Digits
	}
	names := make([]string, 0, len(st.Variables))
	for n := range st.Variables {
		names = append(names, n)
	}
	slices.Sort(names)
	for _, n := range names {
		v, err := toValue(st.Variables[n])
		if err != nil {
			return fmt.Errorf("variable %s: %w", n, err)
		}
		log.LogVf("Setting %s = %s", n, v.Inspect())
		s.Env().Set(n, v)
	}
	return nil
}

func toFloat(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int:
		return safecast.Convert[float64](v)
	case int64:
		return safecast.Convert[float64](v)
	case uint64:
		return safecast.Convert[float64](v)
	default:
		return 0, fmt.Errorf("%v (%T) is not a number", v, v)
	}
}

// toValue converts a number, a list of numbers (vector) or a list of rows (matrix).
func toValue(v any) (object.Value, error) {
	list, ok := v.([]any)
	if !ok {
		f, err := toFloat(v)
		return object.Scalar{Value: f}, err
	}
	if len(list) == 0 {
		return object.Vector{Elements: []float64{}}, nil
	}
	if _, isMatrix := list[0].([]any); !isMatrix {
		elements := object.MakeFloatSlice(len(list))
		for _, e := range list {
			f, err := toFloat(e)
			if err != nil {
				return nil, err
			}
			elements = append(elements, f)
		}
		return object.Vector{Elements: elements}, nil
	}
	var columns [][]float64
	for r, row := range list {
		cells, ok := row.([]any)
		if !ok {
			return nil, fmt.Errorf("row %d is not a list", r+1)
		}
		if r == 0 {
			columns = make([][]float64, len(cells))
		}
		if len(cells) != len(columns) {
			return nil, object.Errorf(object.MatrixUnequalRowLengths, "row %d has %d elements instead of %d",
				r+1, len(cells), len(columns))
		}
		for c, cell := range cells {
			f, err := toFloat(cell)
			if err != nil {
				return nil, err
			}
			columns[c] = append(columns[c], f)
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
