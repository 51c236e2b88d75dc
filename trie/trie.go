// Trie implements a byte trie data structure.
// It is fast as it uses arrays instead of maps and no bound checks.
package trie

type Trie struct {
	// Children of this node
	children [256]*Trie
	// This node itself is a valid leaf (end of a word) in addition having children.
	valid bool
	leaf  bool // Note really needed outside of debugging but with struct alignment it doesn't cost anything extra.
}

// Save some memory by having a shared end marker for leaves.
// Only one having "leaf" set to true.
var endMarker = &Trie{valid: true, leaf: true}

func NewTrie() *Trie {
	return &Trie{}
}

func (t *Trie) Insert(word string) {
	l := len(word)
	for i := range l {
		char := word[i]
		valid := false
		switch t.children[char] {
		case endMarker:
			// This was a valid leaf before, propagate to the new children node
			valid = true
			fallthrough
		case nil:
			if i == l-1 {
				t.children[char] = endMarker // Shared for all leaves, saves memory.
			} else {
				t.children[char] = &Trie{valid: valid}
			}
		default:
			if i == l-1 {
				// Shorter word than one already there, e.g "x" after "x2".
				t.children[char].valid = true
			}
		}
		t = t.children[char]
	}
}

func (t *Trie) Contains(word string) bool {
	return t.Prefix(word).IsValid()
}

func (t *Trie) Prefix(word string) *Trie {
	for i := range len(word) {
		char := word[i]
		t = t.children[char]
		if t == nil {
			return nil
		}
	}
	return t
}

func (t *Trie) IsLeaf() bool {
	return t != nil && t.leaf
}

func (t *Trie) IsValid() bool {
	return t != nil && t.valid
}

// PrefixAll returns all the words starting with prefix, sorted, and the
// length of their longest common prefix (at least len(prefix) when there is a match).
func (t *Trie) PrefixAll(prefix string) (int, []string) {
	n := t.Prefix(prefix)
	if n == nil {
		return 0, nil
	}
	buf := []byte(prefix)
	var words []string
	n.walk(&buf, &words)
	if len(words) == 0 {
		return 0, nil
	}
	l := len(words[0])
	for _, w := range words[1:] {
		l = min(l, len(w))
		for i := len(prefix); i < l; i++ {
			if w[i] != words[0][i] {
				l = i
				break
			}
		}
	}
	return l, words
}

// walk appends the words under t, in byte order, buf holding the current path.
func (t *Trie) walk(buf *[]byte, words *[]string) {
	if t.valid {
		*words = append(*words, string(*buf))
	}
	for c, child := range t.children {
		if child == nil {
			continue
		}
		*buf = append(*buf, byte(c))
		child.walk(buf, words)
		*buf = (*buf)[:len(*buf)-1]
	}
}

/*
  A-B
  A-B-C

  [A] -> [B] children[C] = endMarker
*/
