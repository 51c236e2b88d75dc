package repl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/terminal"
	"mcalc.io/mcalc/lexer"
	"mcalc.io/mcalc/object"
	"mcalc.io/mcalc/trie"
)

type AutoComplete struct {
	Trie *trie.Trie
}

// NewCompletion is seeded with the commands and the builtins, variables and
// functions get added as they are defined.
func NewCompletion() *AutoComplete {
	t := trie.NewTrie()
	for _, c := range CommandNames() {
		t.Insert(c)
	}
	for _, n := range object.ExtraFunctionNames() {
		t.Insert(n + "(")
	}
	return &AutoComplete{t}
}

func (a *AutoComplete) AutoComplete() terminal.AutoCompleteCallback {
	return func(t *terminal.Terminal, line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		if key != '\t' {
			return // only tab for now
		}
		newLine, newPos, choices := a.Complete(line, pos)
		if len(choices) > 1 {
			fmt.Fprintln(t.Out, "One of:", strings.Join(choices, " "))
		}
		return newLine, newPos, len(choices) > 0
	}
}

// Complete extends the word ending at pos to the longest common prefix of
// its completions. It returns the updated line and position, and the choices.
func (a *AutoComplete) Complete(line string, pos int) (string, int, []string) {
	start := wordStart(line, pos)
	l, choices := a.Trie.PrefixAll(line[start:pos])
	if len(choices) == 0 {
		return line, pos, nil
	}
	completed := choices[0][:l]
	return line[:start] + completed + line[pos:], start + len(completed), choices
}

func wordStart(line string, pos int) int {
	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(line[:pos])
		if !lexer.IsWordChar(r) {
			break
		}
		pos -= size
	}
	return pos
}
