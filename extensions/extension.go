// Package extensions registers the builtin functions (sin, sqrt, transpose...)
// into the object extension table used by the evaluator.
package extensions

import (
	"math"

	"fortio.org/log"
	"mcalc.io/mcalc/object"
)

var (
	initDone  = false
	errInInit error
)

// Configure optional features.
type Config struct {
	// Also define tau and phi on top of pi and e.
	ExtraConstants bool
}

// Init initializes the extensions, can be called multiple time safely but should really be called only once
// before using the repl/eval. If the passed [Config] pointer is nil, default values are used.
func Init(c *Config) error {
	if initDone {
		return errInInit
	}
	if c == nil {
		c = &Config{}
	}
	errInInit = initInternal(c)
	initDone = true
	return errInInit
}

type OneFloatInOutFunc func(float64) float64

func initInternal(c *Config) error {
	oneFloat := object.Extension{
		MinArgs:   1,
		MaxArgs:   1,
		ArgTypes:  []object.Type{object.SCALAR},
		Cacheable: true,
	}
	for _, function := range []struct {
		fn   OneFloatInOutFunc
		name string
	}{
		{math.Sqrt, "sqrt"},
		{math.Abs, "abs"},
		{math.Log, "ln"},
		{math.Log10, "log10"},
		{math.Exp, "exp"},
		{math.Floor, "floor"},
		{math.Ceil, "ceil"},
		{math.Round, "round"},
		{math.Trunc, "trunc"},
	} {
		oneFloat.Callback = func(_ *object.Environment, _ string, args []object.Value) (object.Value, error) {
			// Arg len check already done through MinArgs=MaxArgs=1 and
			// type through ArgTypes: []object.Type{object.SCALAR}.
			return object.Scalar{Value: function.fn(args[0].(object.Scalar).Value)}, nil
		}
		oneFloat.Name = function.name
		oneFloat.Help = function.name + " of a number"
		if err := object.CreateFunction(oneFloat); err != nil {
			return err
		}
	}
	// Angles in and out are in the current trig mode.
	for _, function := range []struct {
		fn      OneFloatInOutFunc
		name    string
		inverse bool
	}{
		{math.Sin, "sin", false},
		{math.Cos, "cos", false},
		{math.Tan, "tan", false},
		{math.Asin, "asin", true},
		{math.Acos, "acos", true},
		{math.Atan, "atan", true},
	} {
		oneFloat.Callback = func(env *object.Environment, _ string, args []object.Value) (object.Value, error) {
			mode := env.Settings().Trig
			x := args[0].(object.Scalar).Value
			if function.inverse {
				return object.Scalar{Value: mode.FromRadians(function.fn(x))}, nil
			}
			return object.Scalar{Value: function.fn(mode.ToRadians(x))}, nil
		}
		oneFloat.Name = function.name
		oneFloat.Help = function.name + ", angle in degrees or radians per the trig mode"
		if err := object.CreateFunction(oneFloat); err != nil {
			return err
		}
	}
	for _, ext := range []object.Extension{
		{
			Name:      "pow",
			MinArgs:   2,
			MaxArgs:   2,
			ArgTypes:  []object.Type{object.SCALAR, object.SCALAR},
			Help:      "pow(x, y) is x ^ y",
			Callback:  pow,
			Cacheable: true,
		},
		{
			Name:      "log",
			MinArgs:   1,
			MaxArgs:   2,
			ArgTypes:  []object.Type{object.SCALAR, object.SCALAR},
			Help:      "log(x) is log10, log(x, base) the logarithm in that base",
			Callback:  logFunc,
			Cacheable: true,
		},
		{
			Name:     "transpose",
			MinArgs:  1,
			MaxArgs:  1,
			ArgTypes: []object.Type{object.ANY},
			Help:     "swaps rows and columns, a vector becomes a one row matrix",
			Callback: transpose,
		},
		{
			Name:     "len",
			MinArgs:  1,
			MaxArgs:  1,
			ArgTypes: []object.Type{object.ANY},
			Help:     "number of elements",
			Callback: length,
		},
	} {
		if err := object.CreateFunction(ext); err != nil {
			return err
		}
	}
	if c.ExtraConstants {
		object.AddIdentifier("tau", object.Scalar{Value: 2 * math.Pi})
		object.AddIdentifier("phi", object.Scalar{Value: math.Phi})
	}
	log.Debugf("Registered %d builtins", len(object.ExtraFunctions()))
	return nil
}

func pow(_ *object.Environment, _ string, args []object.Value) (object.Value, error) {
	// Arg len check already done through MinArgs and MaxArgs
	// and so is type check through ArgTypes.
	base := args[0].(object.Scalar).Value
	exp := args[1].(object.Scalar).Value
	return object.Scalar{Value: math.Pow(base, exp)}, nil
}

func logFunc(_ *object.Environment, _ string, args []object.Value) (object.Value, error) {
	x := args[0].(object.Scalar).Value
	if len(args) == 1 {
		return object.Scalar{Value: math.Log10(x)}, nil
	}
	base := args[1].(object.Scalar).Value
	return object.Scalar{Value: math.Log(x) / math.Log(base)}, nil
}

func transpose(_ *object.Environment, _ string, args []object.Value) (object.Value, error) {
	return object.Transpose(args[0])
}

func length(_ *object.Environment, _ string, args []object.Value) (object.Value, error) {
	switch v := args[0].(type) {
	case object.Vector:
		return object.Scalar{Value: float64(len(v.Elements))}, nil
	case object.Matrix:
		return object.Scalar{Value: float64(v.Rows() * v.Cols())}, nil
	default:
		return object.Scalar{Value: 1}, nil
	}
}
