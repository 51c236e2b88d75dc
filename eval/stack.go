package eval

import (
	"errors"

	"fortio.org/log"
	"mcalc.io/mcalc/object"
)

// Returns a stack array of the current stack.
func (s *State) Stack() []string {
	stack := make([]string, 0, 4)
	for e := s.env; e != nil; e = e.Parent() {
		if n := e.Name(); n != "" {
			stack = append(stack, n)
		}
	}
	log.Debugf("Stack() len %d, depth %d returning %v", len(stack), s.depth, stack)
	return stack
}

// Creates a new error of the given kind with the current stack.
func (s *State) Errorf(kind object.ErrorKind, format string, args ...any) object.Error {
	return object.Errorf(kind, format, args...).WithStack(s.Stack())
}

// withStack adds the current stack to evaluation errors created without one.
func (s *State) withStack(err error) error {
	var e object.Error
	if s.env.IsRoot() || !errors.As(err, &e) || len(e.Stack) > 0 {
		return err
	}
	return e.WithStack(s.Stack())
}
