package trie

import (
	"iter"
	"strings"
)

// New creates an empty Trie configured by opts.
// Input is repaired before and after the configured Normalizer: each run of
// invalid UTF-8 bytes becomes U+FFFD, so the stored form always spells its path.
// Complexity: O(1).
func New(opts ...Option) *Trie {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Trie{
		root:   &node{},
		norm:   validUTF8(o.Normalizer),
		policy: o.CountPolicy,
	}
}

// validUTF8 wraps fn with invalid-byte replacement on both sides: fn
// always sees valid input, and whatever fn emits is repaired again.
func validUTF8(fn Normalizer) Normalizer {
	return func(s string) string {
		return strings.ToValidUTF8(fn(strings.ToValidUTF8(s, "\uFFFD")), "\uFFFD")
	}
}

// CountPolicy reports the through-count policy the Trie was built with.
func (t *Trie) CountPolicy() CountPolicy { return t.policy }

// Normalize returns the canonical form the Trie stores for s.
func (t *Trie) Normalize(s string) string { return t.norm(s) }

// TotalWords returns the number of distinct words currently stored.
// Complexity: O(1).
func (t *Trie) TotalWords() int { return t.words }

// Insert adds word to the Trie. Empty input (before or after normalization)
// is a no-op. Re-inserting a stored word leaves TotalWords unchanged; under
// ReferenceCounts it still inflates the through-counts along its path.
//
// Complexity: O(len(word)).
func (t *Trie) Insert(word string) {
	t.insert(t.norm(word))
}

// insert stores an already normalized word and reports whether it was new.
func (t *Trie) insert(word string) bool {
	if word == "" {
		return false
	}

	// 1. Walk, creating missing nodes. Under ReferenceCounts every visit counts.
	cur := t.root
	if t.policy == ReferenceCounts {
		cur.through++
	}
	for _, r := range word {
		cur = cur.ensureChild(r)
		if t.policy == ReferenceCounts {
			cur.through++
		}
	}

	// 2. Duplicate: nothing else changes.
	if cur.terminal {
		return false
	}

	// 3. New word: mark terminal and, under ExactCounts, count it once per node.
	cur.terminal = true
	t.words++
	if t.policy == ExactCounts {
		t.addThrough(word, 1)
	}

	return true
}

// addThrough adds delta to the through-count of the root and of every node
// on the path of word. The path must exist.
func (t *Trie) addThrough(word string, delta int) {
	cur := t.root
	cur.through += delta
	for _, r := range word {
		cur = cur.children[r]
		cur.through += delta
	}
}

// InsertAll inserts every word produced by words and returns how many of
// them were new to the Trie.
func (t *Trie) InsertAll(words iter.Seq[string]) int {
	added := 0
	for w := range words {
		if t.insert(t.norm(w)) {
			added++
		}
	}

	return added
}

// Search reports whether word is stored. A path that exists but ends on a
// non-terminal node is only a prefix and yields false.
// Complexity: O(len(word)).
func (t *Trie) Search(word string) bool {
	n := t.find(t.norm(word))

	return n != nil && n.terminal
}

// StartsWith reports whether any path exists for prefix, whatever its
// terminal status. The empty prefix is always present.
// Complexity: O(len(prefix)).
func (t *Trie) StartsWith(prefix string) bool {
	return t.find(t.norm(prefix)) != nil
}

// CountWordsWithPrefix returns the stored through-count at the node reached
// by prefix, or 0 when no such path exists. It never enumerates.
// CountWordsWithPrefix("") reads the root count.
// Complexity: O(len(prefix)).
func (t *Trie) CountWordsWithPrefix(prefix string) int {
	n := t.find(t.norm(prefix))
	if n == nil {
		return 0
	}

	return n.through
}

// find walks the normalized key from the root and returns its end node,
// or nil when the path breaks.
func (t *Trie) find(key string) *node {
	cur := t.root
	for _, r := range key {
		if cur = cur.child(r); cur == nil {
			return nil
		}
	}

	return cur
}
