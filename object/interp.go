package object

import (
	"errors"
	"slices"
	"strings"
)

// ExtFunction is the Go implementation of a builtin. Argument count and
// types are already checked against the Extension when it's called.
type ExtFunction func(env *Environment, name string, args []Value) (Value, error)

// Extension is a builtin function, callable like a user defined one.
type Extension struct {
	Name     string
	MinArgs  int
	MaxArgs  int    // -1 for varargs.
	ArgTypes []Type // ANY accepts scalar, vector and matrix.
	Help     string
	Callback ExtFunction
	Variadic bool // computed by CreateFunction.
	// Cacheable results only depend on the arguments and the trig mode.
	Cacheable bool
}

var (
	extraFunctions   map[string]Extension
	extraIdentifiers map[string]Value
	initDone         bool
)

// Init resets the table of extended functions to empty.
// Optional, will be called on demand the first time through CreateFunction.
func Init() {
	extraFunctions = make(map[string]Extension)
	extraIdentifiers = make(map[string]Value)
	initDone = true
}

// CreateFunction adds a new function to the table of extended functions.
func CreateFunction(cmd Extension) error {
	if !initDone {
		Init()
	}
	if cmd.Name == "" {
		return errors.New("empty command name")
	}
	if cmd.Callback == nil {
		return errors.New(cmd.Name + ": nil callback")
	}
	if cmd.MaxArgs != -1 && cmd.MinArgs > cmd.MaxArgs {
		return errors.New(cmd.Name + ": min args > max args")
	}
	if len(cmd.ArgTypes) < cmd.MinArgs {
		return errors.New(cmd.Name + ": arg types < min args")
	}
	if _, ok := extraFunctions[cmd.Name]; ok {
		return errors.New(cmd.Name + ": already defined")
	}
	cmd.Variadic = (cmd.MaxArgs == -1) || (cmd.MaxArgs > cmd.MinArgs)
	extraFunctions[cmd.Name] = cmd
	return nil
}

// Returns the table of extended functions to seed the state of an eval.
func ExtraFunctions() map[string]Extension {
	if !initDone {
		Init()
	}
	return extraFunctions // map of structs, entries can't be changed through it.
}

// ExtraFunctionNames returns the sorted builtin names.
func ExtraFunctionNames() []string {
	res := make([]string, 0, len(extraFunctions))
	for k := range extraFunctions {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Add values to top level environment, e.g "tau" -> 6.28...
func AddIdentifier(name string, value Value) {
	if !initDone {
		Init()
	}
	extraIdentifiers[name] = value
}

// This makes a copy of the extraIdentifiers map to serve as initial Environment without mutating the original.
func initialIdentifiersCopy() map[string]Value {
	if !initDone {
		Init()
	}
	copied := make(map[string]Value, len(extraIdentifiers))
	for k, v := range extraIdentifiers {
		copied[k] = v
	}
	return copied
}

// Usage is the call signature, e.g. "log(x, base...)".
func (e Extension) Usage() string {
	out := strings.Builder{}
	out.WriteString(e.Name)
	out.WriteString("(")
	for i, t := range e.ArgTypes {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(t.String())
		if i >= e.MinArgs {
			out.WriteString("?")
		}
	}
	if e.MaxArgs == -1 {
		out.WriteString("...")
	}
	out.WriteString(")")
	return out.String()
}

// CheckArgs validates count and types of the arguments of a builtin call.
func (e Extension) CheckArgs(args []Value) error {
	n := len(args)
	if n < e.MinArgs || (e.MaxArgs != -1 && n > e.MaxArgs) {
		return Errorf(WrongArgumentCount, "%s called with %d arguments, wants %s", e.Name, n, e.Usage())
	}
	for i, a := range args {
		want := ANY
		if i < len(e.ArgTypes) {
			want = e.ArgTypes[i]
		} else if len(e.ArgTypes) > 0 {
			want = e.ArgTypes[len(e.ArgTypes)-1] // varargs repeat the last type.
		}
		if a.Type() == FUNC || (want != ANY && a.Type() != want) {
			return Errorf(BadFunctionArguments, "%s argument %d is a %s, wants %s", e.Name, i+1, a.Type(), e.Usage())
		}
	}
	return nil
}
