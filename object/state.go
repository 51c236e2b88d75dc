package object

import (
	"math"
	"slices"

	"mcalc.io/mcalc/trie"
)

type TrigMode uint8

const (
	Degrees TrigMode = iota
	Radians
)

func (m TrigMode) String() string {
	if m == Radians {
		return "radians"
	}
	return "degrees"
}

// ToRadians converts an angle expressed in this mode.
func (m TrigMode) ToRadians(x float64) float64 {
	if m == Radians {
		return x
	}
	return x * math.Pi / 180
}

// FromRadians converts an angle to this mode.
func (m TrigMode) FromRadians(x float64) float64 {
	if m == Radians {
		return x
	}
	return x * 180 / math.Pi
}

const DefaultDigits = 9

// Settings are shared by every frame of a root environment.
type Settings struct {
	Trig TrigMode
	// Digits after the decimal point when displaying, negative for full precision.
	Digits int
}

// Environment is one scope: the root (global) one or a function call frame.
// Lookups walk out through the enclosing frames, writes stay in the frame.
type Environment struct {
	vars     map[string]Value
	funcs    map[string]Function
	outer    *Environment
	name     string // function name for call frames, empty at the root.
	settings *Settings
	ids      *trie.Trie
	numSet   int64
}

func defaultIdentifiers() map[string]Value {
	return map[string]Value{
		"pi":  Scalar{math.Pi},
		"PI":  Scalar{math.Pi},
		"e":   Scalar{math.E},
		"E":   Scalar{math.E},
		"ans": Scalar{0},
	}
}

func NewRootEnvironment() *Environment {
	s := defaultIdentifiers()
	for k, v := range initialIdentifiersCopy() {
		s[k] = v
	}
	return &Environment{
		vars:     s,
		funcs:    make(map[string]Function),
		settings: &Settings{Trig: Degrees, Digits: DefaultDigits},
	}
}

// NewFunctionEnvironment is the call frame for fn, enclosed in outer.
func NewFunctionEnvironment(fn string, outer *Environment) *Environment {
	return &Environment{
		vars:     make(map[string]Value),
		funcs:    make(map[string]Function),
		outer:    outer,
		name:     fn,
		settings: outer.settings,
	}
}

func (e *Environment) Name() string {
	return e.name
}

func (e *Environment) Parent() *Environment {
	return e.outer
}

func (e *Environment) IsRoot() bool {
	return e.outer == nil
}

func (e *Environment) Settings() *Settings {
	return e.settings
}

// RegisterTrie records current and future top level names into t, for
// completion.
func (e *Environment) RegisterTrie(t *trie.Trie) {
	e.ids = t
	for _, n := range e.Names() {
		t.Insert(n)
	}
	for _, n := range e.FunctionNames() {
		t.Insert(n + "(")
	}
}

func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	if ok || e.outer == nil {
		return v, ok
	}
	return e.outer.Get(name) // recurse.
}

func (e *Environment) Set(name string, v Value) Value {
	e.numSet++
	if e.ids != nil {
		e.ids.Insert(name)
	}
	e.vars[name] = v
	return v
}

// Function looks up a user defined function, through the enclosing frames.
func (e *Environment) Function(name string) (Function, bool) {
	f, ok := e.funcs[name]
	if ok || e.outer == nil {
		return f, ok
	}
	return e.outer.Function(name)
}

// Define adds or replaces a user defined function in this frame.
func (e *Environment) Define(f Function) Function {
	e.numSet++
	if e.ids != nil {
		e.ids.Insert(f.Name + "(")
	}
	e.funcs[f.Name] = f
	return f
}

// NumSet is the number of Set and Define on this frame so far.
func (e *Environment) NumSet() int64 {
	return e.numSet
}

// Names of the variables of this frame, sorted.
func (e *Environment) Names() []string {
	res := make([]string, 0, len(e.vars))
	for k := range e.vars {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// FunctionNames of the user functions of this frame, sorted.
func (e *Environment) FunctionNames() []string {
	res := make([]string, 0, len(e.funcs))
	for k := range e.funcs {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
