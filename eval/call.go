package eval

import (
	"fortio.org/log"
	"mcalc.io/mcalc/ast"
	"mcalc.io/mcalc/object"
	"mcalc.io/mcalc/token"
)

// arguments splits a call's argument node on its top level commas.
// A parenthesized list is split, anything else is a single argument.
func arguments(args ast.Node) [][]ast.Node {
	g, ok := args.(*ast.Group)
	if !ok || g.IsBracket() {
		return [][]ast.Node{{args}}
	}
	return g.SplitOn(token.COMMA)
}

func (s *State) defineFunction(call *ast.Group, body ast.Node) (object.Value, error) {
	name, _ := ast.Identifier(call.Children[0])
	signature := call.Children[1]
	var params []string
	seen := make(map[string]bool)
	for _, segment := range arguments(signature) {
		if len(segment) != 1 {
			return nil, s.Errorf(object.InvalidOperation, "invalid parameter list %s for %s", signature, name)
		}
		p, ok := ast.Identifier(unwrap(segment[0]))
		if !ok {
			return nil, s.Errorf(object.InvalidOperation, "parameter %s of %s is not an identifier", segment[0], name)
		}
		if seen[p] {
			return nil, s.Errorf(object.InvalidOperation, "duplicate parameter %s for %s", p, name)
		}
		seen[p] = true
		params = append(params, p)
	}
	fn := object.Function{Name: name, Params: params, Signature: signature, Body: body}
	log.LogVf("Defining %s", fn.Inspect())
	return s.env.Define(fn), nil
}

// evalCall applies a user function or a builtin. The arguments are
// evaluated in the new call frame, so their assignments stay local to the
// call like the ones done by the function body.
func (s *State) evalCall(callee, args ast.Node) (object.Value, error) {
	l, ok := ast.AsLeaf(callee)
	if !ok {
		return nil, s.Errorf(object.UnknownExpressionShape, "can't call %s", callee)
	}
	name, ok := ast.Identifier(l)
	if !ok {
		return nil, s.Errorf(object.UnknownIdentifier, "%s is not a function", l.Literal())
	}
	segments := arguments(args)
	fn, isUser := s.env.Function(name)
	ext, isExt := s.Extensions[name]
	switch {
	case isUser:
		if len(segments) != len(fn.Params) {
			return nil, s.Errorf(object.WrongArgumentCount,
				"%s requires %d arguments, called with %d", fn.Inspect(), len(fn.Params), len(segments))
		}
	case isExt:
		// count and types are checked by the extension once evaluated.
	default:
		return nil, s.Errorf(object.UnknownIdentifier, "unknown function: %s", name)
	}
	outer := s.env
	s.env = object.NewFunctionEnvironment(name, outer)
	defer func() { s.env = outer }()
	values, err := s.evalArguments(name, segments)
	if err != nil {
		return nil, err
	}
	if isUser {
		for i, p := range fn.Params {
			s.env.Set(p, values[i])
		}
		return s.Eval(fn.Body)
	}
	return s.applyExtension(ext, values)
}

func (s *State) evalArguments(name string, segments [][]ast.Node) ([]object.Value, error) {
	values := make([]object.Value, 0, len(segments))
	for i, segment := range segments {
		if len(segment) == 0 {
			return nil, s.Errorf(object.BadFunctionArguments, "argument %d of %s is empty", i+1, name)
		}
		v, err := s.Eval(ast.NewGroup(segment...))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (s *State) applyExtension(ext object.Extension, args []object.Value) (object.Value, error) {
	if err := ext.CheckArgs(args); err != nil {
		return nil, s.withStack(err)
	}
	mode := s.env.Settings().Trig
	if ext.Cacheable {
		if res, ok := s.cache.Get(ext.Name, mode, args); ok {
			log.Debugf("Cache hit for %s%v", ext.Name, args)
			return res, nil
		}
	}
	res, err := ext.Callback(s.env, ext.Name, args)
	if err != nil {
		return nil, s.withStack(err)
	}
	if ext.Cacheable {
		s.cache.Set(ext.Name, mode, args, res)
	}
	return res, nil
}
