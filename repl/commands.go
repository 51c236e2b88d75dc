package repl

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"fortio.org/log"
	"fortio.org/safecast"
	"mcalc.io/mcalc/eval"
	"mcalc.io/mcalc/object"
	"mcalc.io/mcalc/token"
)

type Command uint8

const (
	NotACommand Command = iota
	DegreesCommand
	RadiansCommand
	DigitsCommand
	ClearCommand
	VarsCommand
	HelpCommand
	QuitCommand
)

// MaxDigits is the largest digit cap, about the precision of a float64.
const MaxDigits = 17

// DigitsOk is true for a digit cap between -1 (full precision) and MaxDigits.
func DigitsOk(n int) bool {
	return n >= -1 && n <= MaxDigits
}

var commands = map[string]Command{
	"deg":     DegreesCommand,
	"degrees": DegreesCommand,
	"rad":     RadiansCommand,
	"radians": RadiansCommand,
	"digits":  DigitsCommand,
	"clear":   ClearCommand,
	"vars":    VarsCommand,
	"help":    HelpCommand,
	"exit":    QuitCommand,
	"quit":    QuitCommand,
}

// CommandNames are the keywords recognized at the start of a line, sorted.
func CommandNames() []string {
	res := make([]string, 0, len(commands))
	for k := range commands {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// RunCommand handles the lines starting with a command keyword. When the
// line isn't a command (including a keyword followed by an expression,
// e.g "digits = 3"), ok is false and the line should be evaluated.
func RunCommand(s *eval.State, tokens []*token.Token) (status string, cmd Command, ok bool) {
	if len(tokens) == 0 || tokens[0].Kind() != token.IDENT {
		return "", NotACommand, false
	}
	cmd = commands[tokens[0].Literal()]
	args := tokens[1:]
	switch {
	case cmd == NotACommand:
		return "", NotACommand, false
	case cmd == DigitsCommand && len(args) <= 1:
		return digits(s, args), cmd, true
	case len(args) > 0:
		return "", NotACommand, false
	}
	log.LogVf("Running command %q", tokens[0].Literal())
	settings := s.Settings()
	switch cmd { //nolint:exhaustive // NotACommand and DigitsCommand handled above.
	case DegreesCommand:
		settings.Trig = object.Degrees
		return "Trig mode: " + settings.Trig.String(), cmd, true
	case RadiansCommand:
		settings.Trig = object.Radians
		return "Trig mode: " + settings.Trig.String(), cmd, true
	case ClearCommand:
		s.Clear()
		return "Variables and functions cleared", cmd, true
	case VarsCommand:
		return vars(s), cmd, true
	case HelpCommand:
		return help(), cmd, true
	default:
		return "Bye", QuitCommand, true
	}
}

func digits(s *eval.State, args []*token.Token) string {
	settings := s.Settings()
	if len(args) == 1 {
		n, err := parseDigits(args[0])
		if err != nil {
			return fmt.Sprintf("Invalid digits %q: %v", args[0].Literal(), err)
		}
		settings.Digits = n
	}
	if settings.Digits < 0 {
		return "Digits: full precision"
	}
	return "Digits: " + strconv.Itoa(settings.Digits)
}

// parseDigits accepts an integer between 0 and MaxDigits, or "full".
func parseDigits(t *token.Token) (int, error) {
	if t.Literal() == "full" {
		return -1, nil
	}
	if t.Kind() != token.NUMBER {
		return 0, fmt.Errorf("should be a number between 0 and %d or full", MaxDigits)
	}
	f, err := strconv.ParseFloat(t.Literal(), 64)
	if err != nil {
		return 0, err
	}
	n, err := safecast.Convert[int](f)
	if err != nil {
		return 0, err
	}
	if n > MaxDigits {
		return 0, fmt.Errorf("more than %d", MaxDigits)
	}
	return n, nil
}

func vars(s *eval.State) string {
	env := s.Env()
	digits := s.Settings().Digits
	out := strings.Builder{}
	for _, n := range env.Names() {
		v, _ := env.Get(n)
		fmt.Fprintf(&out, "%s = %s\n", n, object.Format(v, digits))
	}
	for _, n := range env.FunctionNames() {
		f, _ := env.Function(n)
		out.WriteString(f.Inspect())
		out.WriteString("\n")
	}
	return strings.TrimSuffix(out.String(), "\n")
}

func help() string {
	out := strings.Builder{}
	out.WriteString(`Enter an expression, e.g "1 + 2 * 3", "x = [1, 2; 3, 4] * [1; 1]" or "f(x) = x ^ 2".
A line starting with an operator continues from the previous result (ans).
Commands: deg(rees), rad(ians), digits [N|full], clear, vars, help, exit/quit.
Builtins:`)
	for _, n := range object.ExtraFunctionNames() {
		ext := object.ExtraFunctions()[n]
		fmt.Fprintf(&out, "\n  %-22s %s", ext.Usage(), ext.Help)
	}
	return out.String()
}
