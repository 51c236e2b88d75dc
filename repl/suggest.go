package repl

import (
	"github.com/sahilm/fuzzy"
	"mcalc.io/mcalc/eval"
	"mcalc.io/mcalc/object"
	"mcalc.io/mcalc/token"
)

const maxSuggestions = 3

// Suggest returns the best known names (variables, functions, builtins)
// fuzzy matching name.
func Suggest(s *eval.State, name string) []string {
	env := s.Env()
	candidates := env.Names()
	candidates = append(candidates, env.FunctionNames()...)
	candidates = append(candidates, object.ExtraFunctionNames()...)
	matches := fuzzy.Find(name, candidates)
	res := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if m.Str == name {
			continue
		}
		res = append(res, m.Str)
		if len(res) == maxSuggestions {
			break
		}
	}
	return res
}

// unknownIdentifiers are the identifiers of the line that are neither
// variables nor functions.
func unknownIdentifiers(s *eval.State, tokens []*token.Token) []string {
	var res []string
	env := s.Env()
	for _, t := range tokens {
		if t.Kind() != token.IDENT {
			continue
		}
		name := t.Literal()
		if _, ok := env.Get(name); ok {
			continue
		}
		if _, ok := env.Function(name); ok {
			continue
		}
		if _, ok := s.Extensions[name]; ok {
			continue
		}
		res = append(res, name)
	}
	return res
}
