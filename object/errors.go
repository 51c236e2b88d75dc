package object

import (
	"fmt"
	"strings"
)

type ErrorKind uint8

const (
	UnknownIdentifier ErrorKind = iota + 1
	UnknownOperator
	InvalidOperation
	InvalidVectorContents
	MatrixUnequalRowLengths
	WrongArgumentCount
	BadFunctionArguments
	UnknownExpressionShape
)

var errorKindNames = [...]string{
	0:                       "error",
	UnknownIdentifier:       "unknown identifier",
	UnknownOperator:         "unknown operator",
	InvalidOperation:        "invalid operation",
	InvalidVectorContents:   "invalid vector contents",
	MatrixUnequalRowLengths: "matrix rows of unequal length",
	WrongArgumentCount:      "wrong argument count",
	BadFunctionArguments:    "bad function arguments",
	UnknownExpressionShape:  "unknown expression shape",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is the evaluation failure. Stack lists the user function frames,
// innermost first, active when it happened.
type Error struct {
	Kind  ErrorKind
	Value string
	Stack []string
}

// Sentinels for errors.Is, which only compares the Kind.
var (
	ErrUnknownIdentifier       = Error{Kind: UnknownIdentifier}
	ErrUnknownOperator         = Error{Kind: UnknownOperator}
	ErrInvalidOperation        = Error{Kind: InvalidOperation}
	ErrInvalidVectorContents   = Error{Kind: InvalidVectorContents}
	ErrMatrixUnequalRowLengths = Error{Kind: MatrixUnequalRowLengths}
	ErrWrongArgumentCount      = Error{Kind: WrongArgumentCount}
	ErrBadFunctionArguments    = Error{Kind: BadFunctionArguments}
	ErrUnknownExpressionShape  = Error{Kind: UnknownExpressionShape}
)

func Errorf(kind ErrorKind, format string, args ...any) Error {
	return Error{Kind: kind, Value: fmt.Sprintf(format, args...)}
}

func (e Error) Error() string {
	msg := e.Value
	if msg == "" {
		msg = e.Kind.String()
	}
	if len(e.Stack) == 0 {
		return msg
	}
	return msg + " (in " + strings.Join(e.Stack, " < ") + ")"
}

func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Kind == e.Kind
}

// WithStack returns a copy of e carrying the stack, unless e already has one.
func (e Error) WithStack(stack []string) Error {
	if len(e.Stack) == 0 {
		e.Stack = stack
	}
	return e
}
