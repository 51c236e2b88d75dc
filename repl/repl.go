// Package repl reads calculator lines, from a terminal or a stream, runs the
// commands and evaluates the rest, printing the results.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"fortio.org/log"
	"fortio.org/terminal"
	"mcalc.io/mcalc/eval"
	"mcalc.io/mcalc/lexer"
	"mcalc.io/mcalc/object"
	"mcalc.io/mcalc/parser"
)

const (
	PROMPT       = "$ "
	COMMENT      = "#"
	NoDigitsFlag = -2 // keep the default digits.
)

type Options struct {
	ShowParse   bool
	ShowEval    bool
	NoColor     bool // color controlled by log package, unless this is set to true.
	HistoryFile string
	MaxHistory  int
	MaxDepth    int
	PanicOk     bool // If true, panics are not caught (only for debugging/developing).
	Digits      int  // NoDigitsFlag to keep the default.
	Radians     bool
	Settings    *Settings // Optional startup settings.
}

// EvalStringOptions returns the default options for EvalString*.
func EvalStringOptions() Options {
	return Options{
		ShowEval: true,
		NoColor:  true,
		Digits:   NoDigitsFlag,
		MaxDepth: eval.DefaultMaxDepth,
	}
}

// NewState creates an evaluation state configured per the options.
func NewState(options Options) (*eval.State, error) {
	s := eval.NewState()
	if options.MaxDepth > 0 {
		s.MaxDepth = options.MaxDepth
	}
	if options.Radians {
		s.Settings().Trig = object.Radians
	}
	if options.Settings != nil {
		if err := options.Settings.Apply(s); err != nil {
			return nil, err
		}
	}
	if options.Digits != NoDigitsFlag {
		s.Settings().Digits = options.Digits
	}
	return s, nil
}

// EvalString evaluates the lines of what in a new state, with default options.
// It returns the output and the errors, if any.
func EvalString(what string) (res string, errs []string) {
	return EvalStringWithOption(EvalStringOptions(), what)
}

func EvalStringWithOption(o Options, what string) (res string, errs []string) {
	s, err := NewState(o)
	if err != nil {
		return "", []string{err.Error()}
	}
	out := strings.Builder{}
	errs = EvalAll(s, strings.NewReader(what), &out, o)
	return out.String(), errs
}

// EvalAll evaluates each line of in, stopping at the first quit command.
// Errors don't stop the evaluation: they are logged and returned.
func EvalAll(s *eval.State, in io.Reader, out io.Writer, options Options) []string {
	var errs []string
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		lineErrs, quit := EvalOne(s, scanner.Text(), out, options)
		for _, e := range lineErrs {
			log.Errf("line %d: %s", line, e)
		}
		errs = append(errs, lineErrs...)
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err.Error())
	}
	return errs
}

// EvalOne runs one line: a command or an expression. Results are written to out,
// errors are returned. quit is true when the line was exit or quit.
func EvalOne(s *eval.State, what string, out io.Writer, options Options) (errs []string, quit bool) {
	if !options.PanicOk {
		defer func() {
			if r := recover(); r != nil {
				log.Errf("Caught panic: %v", r)
				log.LogVf("Stack trace: %s", debug.Stack())
				errs = append(errs, fmt.Sprintf("panic: %v", r))
				s.Reset()
			}
		}()
	}
	what = strings.TrimSpace(what)
	if what == "" || strings.HasPrefix(what, COMMENT) {
		return nil, false
	}
	tokens := lexer.Tokenize(what)
	if status, cmd, ok := RunCommand(s, tokens); ok {
		if options.ShowEval && status != "" {
			fmt.Fprintln(out, status)
		}
		return nil, cmd == QuitCommand
	}
	expr, err := parser.Parse(tokens)
	if err != nil {
		return []string{err.Error()}, false
	}
	if options.ShowParse {
		fmt.Fprint(out, "== Parse ==> ")
		fmt.Fprintln(out, expr.String())
	}
	v, err := s.EvalExpression(expr)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, object.ErrUnknownIdentifier) {
			msg += didYouMean(s, unknownIdentifiers(s, tokens))
		}
		return []string{msg}, false
	}
	if !options.ShowEval {
		return nil, false
	}
	res := v.Inspect()
	if v.Type() != object.FUNC {
		res = object.Format(v, s.Settings().Digits)
	}
	if options.NoColor {
		fmt.Fprintln(out, res)
	} else {
		fmt.Fprint(out, log.Colors.Green, res, log.Colors.Reset, "\n")
	}
	return nil, false
}

func didYouMean(s *eval.State, names []string) string {
	var res []string
	for _, n := range names {
		if sugg := Suggest(s, n); len(sugg) > 0 {
			res = append(res, n+": "+strings.Join(sugg, ", "))
		}
	}
	if len(res) == 0 {
		return ""
	}
	return " (did you mean " + strings.Join(res, "; ") + "?)"
}

// Interactive runs the read-eval-print loop on the terminal until exit,
// quit, EOF or a terminal error. Returns the exit code.
func Interactive(options Options) int {
	s, err := NewState(options)
	if err != nil {
		return log.FErrf("Error applying settings: %v", err)
	}
	term, err := terminal.Open(context.Background())
	if err != nil {
		return log.FErrf("Error creating readline: %v", err)
	}
	defer term.Close()
	term.SetPrompt(PROMPT)
	autoComplete := NewCompletion()
	s.RegisterTrie(autoComplete.Trie)
	term.SetAutoCompleteCallback(autoComplete.AutoComplete())
	term.LoggerSetup()
	term.NewHistory(options.MaxHistory)
	term.SetHistoryFile(options.HistoryFile)
	log.Infof("Interactive mode, trig mode %s, type 'help' for help, 'exit' or ^D to quit", s.Settings().Trig)
	for {
		rd, err := term.ReadLine()
		if errors.Is(err, io.EOF) {
			log.Infof("Exit requested")
			return 0
		}
		if errors.Is(err, terminal.ErrUserInterrupt) {
			log.Infof("Interrupted, use exit or ^D to quit")
			continue
		}
		if err != nil {
			return log.FErrf("Error reading line: %v", err)
		}
		log.Debugf("Read: %q", rd)
		errs, quit := EvalOne(s, rd, term.Out, options)
		for _, e := range errs {
			if options.NoColor {
				fmt.Fprintln(term.Out, "Error:", e)
			} else {
				fmt.Fprint(term.Out, log.Colors.Red, "Error: ", e, log.Colors.Reset, "\n")
			}
		}
		if quit {
			log.Infof("Bye")
			return 0
		}
	}
}
