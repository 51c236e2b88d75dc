package eval

import (
	"fmt"

	"fortio.org/log"
	"mcalc.io/mcalc/ast"
	"mcalc.io/mcalc/lexer"
	"mcalc.io/mcalc/object"
	"mcalc.io/mcalc/parser"
	"mcalc.io/mcalc/token"
	"mcalc.io/mcalc/trie"
)

// Exported part of the eval package.

// Approximate maximum depth of recursion to avoid:
// runtime: goroutine stack exceeds 1000000000-byte limit
// fatal error: stack overflow. User functions can't stop recursing
// (there are no conditionals) so any self reference ends up here.
const DefaultMaxDepth = 100_000

type State struct {
	env        *object.Environment
	rootEnv    *object.Environment // same as ancestor of env but used for reset in panic recovery.
	cache      Cache
	ids        *trie.Trie
	Extensions map[string]object.Extension
	// Max depth / recursion level - default DefaultMaxDepth,
	// note that a user function call consumes at least 3 levels.
	MaxDepth   int
	depth      int // current depth / recursion level
}

func NewState() *State {
	st := &State{
		env:        object.NewRootEnvironment(),
		cache:      NewCache(),
		Extensions: object.ExtraFunctions(),
		MaxDepth:   DefaultMaxDepth,
	}
	st.rootEnv = st.env
	return st
}

// Reset post panic recovery.
func (s *State) Reset() {
	s.env = s.rootEnv
	s.depth = 0
}

// Clear replaces the root environment with a fresh one holding only the
// defaults. Settings are kept.
func (s *State) Clear() {
	settings := *s.rootEnv.Settings()
	s.env = object.NewRootEnvironment()
	*s.env.Settings() = settings
	s.rootEnv = s.env
	s.depth = 0
	if s.ids != nil {
		s.env.RegisterTrie(s.ids)
	}
}

// RegisterTrie sets up the Trie to record all top level ids and functions.
// Forwards to the underlying object store environment.
func (s *State) RegisterTrie(t *trie.Trie) {
	s.ids = t
	s.rootEnv.RegisterTrie(t)
}

// Env is the root (global) environment.
func (s *State) Env() *object.Environment {
	return s.rootEnv
}

// Settings are the trig mode and digit cap, mutated by the command layer.
func (s *State) Settings() *object.Settings {
	return s.rootEnv.Settings()
}

// Eval evaluates one node of a folded expression. Exceeding MaxDepth panics;
// Reset must then be called before reusing the State.
func (s *State) Eval(node ast.Node) (object.Value, error) {
	if s.depth > s.MaxDepth {
		log.LogVf("max depth %d reached", s.MaxDepth) // will be logged by the panic handler.
		// State must be reset using s.Reset() to reuse the evaluator post panic (not just for depth but for s.env)
		panic(fmt.Sprintf("max depth %d reached", s.MaxDepth))
	}
	s.depth++
	result, err := s.evalInternal(node)
	s.depth--
	if err != nil {
		return nil, s.withStack(err)
	}
	return result, nil
}

// EvalExpression evaluates a whole line. A successful non function result
// becomes the new value of ans.
func (s *State) EvalExpression(expr ast.Expression) (object.Value, error) {
	res, err := s.Eval(expr.Root)
	if err != nil {
		return nil, err
	}
	if res.Type() != object.FUNC {
		s.env.Set(token.Ans.Literal(), res)
	}
	return res, nil
}

// EvalString tokenizes, parses and evaluates one line in the state's environment.
//
//nolint:revive // eval.EvalString is fine.
func EvalString(s *State, line string) (object.Value, error) {
	expr, err := parser.Parse(lexer.Tokenize(line))
	if err != nil {
		return nil, err
	}
	log.Debugf("EvalString %q parsed as %s", line, expr)
	return s.EvalExpression(expr)
}
