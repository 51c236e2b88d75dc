package eval

import (
	"math"

	"mcalc.io/mcalc/object"
)

const MaxArgs = 4

// CacheKey identifies a builtin call on scalars. The trig mode is part of
// the key since it changes the result of the trigonometric functions.
type CacheKey struct {
	Fn   string
	Mode object.TrigMode
	N    int
	Args [MaxArgs]float64
}

type Cache map[CacheKey]object.Value

func NewCache() Cache {
	return make(Cache)
}

func key(fn string, mode object.TrigMode, args []object.Value) (CacheKey, bool) {
	if len(args) > MaxArgs {
		return CacheKey{}, false
	}
	k := CacheKey{Fn: fn, Mode: mode, N: len(args)}
	for i, v := range args {
		// Only scalar arguments are hashable.
		sc, ok := v.(object.Scalar)
		if !ok || math.IsNaN(sc.Value) { // NaN keys would never match.
			return CacheKey{}, false
		}
		k.Args[i] = sc.Value
	}
	return k, true
}

func (c Cache) Get(fn string, mode object.TrigMode, args []object.Value) (object.Value, bool) {
	k, ok := key(fn, mode, args)
	if !ok {
		return nil, false
	}
	result, ok := c[k]
	return result, ok
}

func (c Cache) Set(fn string, mode object.TrigMode, args []object.Value, result object.Value) {
	k, ok := key(fn, mode, args)
	if !ok {
		return
	}
	c[k] = result
}
