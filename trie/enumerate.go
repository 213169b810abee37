package trie

import (
	"iter"
	"maps"
	"slices"
)

// frame is one pending node of an enumeration walk.
type frame struct {
	n    *node
	word string // full word spelled by the path to n
}

// walk performs a pre-order, ascending-rune, depth-first traversal from
// start, yielding the spelled word of every terminal node. It stops as soon
// as yield returns false. The stack is explicit.
func walk(start *node, prefix string, yield func(string) bool) {
	stack := []frame{{n: start, word: prefix}}
	var f frame
	for len(stack) > 0 {
		f = stack[len(stack)-1] // pop
		stack = stack[:len(stack)-1]

		if f.n.terminal && !yield(f.word) {
			return
		}

		// Push children largest-first so the smallest rune is popped next.
		keys := slices.Sorted(maps.Keys(f.n.children))
		for i := len(keys) - 1; i >= 0; i-- {
			stack = append(stack, frame{n: f.n.children[keys[i]], word: f.word + string(keys[i])})
		}
	}
}

// Completions returns a lazy, restartable sequence of stored words that
// start with prefix, in lexicographic order. Each range over the sequence
// walks the Trie as it is at that moment; mutating the Trie during a range
// is not supported.
func (t *Trie) Completions(prefix string) iter.Seq[string] {
	key := t.norm(prefix)

	return func(yield func(string) bool) {
		if start := t.find(key); start != nil {
			walk(start, key, yield)
		}
	}
}

// All returns a lazy sequence of every stored word in lexicographic order.
func (t *Trie) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		walk(t.root, "", yield)
	}
}

// Autocomplete returns at most limit stored words starting with prefix, in
// lexicographic order. The traversal stops the moment limit words were
// collected. An unknown prefix or limit <= 0 yields an empty, non-nil slice.
//
// Complexity: O(len(prefix) + visited nodes).
func (t *Trie) Autocomplete(prefix string, limit int) []string {
	out := make([]string, 0, min(max(limit, 0), 16))
	if limit <= 0 {
		return out
	}
	for w := range t.Completions(prefix) {
		out = append(out, w)
		if len(out) == limit {
			break
		}
	}

	return out
}

// AllWords returns every stored word in lexicographic order.
// Complexity: O(nodes).
func (t *Trie) AllWords() []string {
	out := make([]string, 0, t.words)
	for w := range t.All() {
		out = append(out, w)
	}

	return out
}
