// Package trie defines the node storage unit, the Trie container,
// count policies, normalizers and functional options.
package trie

// CountPolicy selects how per-node through-counts react to duplicate
// inserts and to deletes.
type CountPolicy int

const (
	// ExactCounts increments counts along a path only when the inserted word
	// is new, and decrements them when a word is deleted. CountWordsWithPrefix
	// then always equals the number of stored words under the prefix.
	ExactCounts CountPolicy = iota

	// ReferenceCounts increments counts on every insert traversal, duplicates
	// included, and never decrements them. Counts over-report after
	// re-inserts and deletes.
	ReferenceCounts
)

// String returns the policy name.
func (p CountPolicy) String() string {
	switch p {
	case ExactCounts:
		return "exact"
	case ReferenceCounts:
		return "reference"
	default:
		return "unknown"
	}
}

// Normalizer maps an input string to its canonical stored form.
// It is applied identically by every operation, reads and writes alike.
type Normalizer func(s string) string

// node is one character transition of the tree.
// It is owned exclusively by its parent; the root has no incoming character.
type node struct {
	children map[rune]*node // child per next rune; nil until first child
	terminal bool           // a stored word ends exactly here
	through  int            // words whose path passes through this node
}

// child returns the child for r, or nil.
func (n *node) child(r rune) *node {
	return n.children[r] // nil map lookup is safe
}

// ensureChild returns the child for r, creating it if missing.
func (n *node) ensureChild(r rune) *node {
	if c, ok := n.children[r]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[rune]*node, 1)
	}
	c := &node{}
	n.children[r] = c

	return c
}

// prunable reports whether the node carries nothing worth keeping.
func (n *node) prunable() bool {
	return !n.terminal && len(n.children) == 0
}

// Trie is an ordered, mutable prefix tree over Unicode code points.
//
// A Trie is not safe for concurrent use; wrap it in Concurrent (or guard it
// with a caller-side lock) when shared between goroutines.
type Trie struct {
	root   *node       // sole owner of the whole node graph
	words  int         // distinct terminal words currently stored
	norm   Normalizer  // applied to every input
	policy CountPolicy // through-count bookkeeping mode
}

// Option configures a Trie at construction time.
type Option func(*Options)

// Options holds the construction-time configuration of a Trie.
type Options struct {
	// Normalizer is applied to every word and prefix. Defaults to LowerCase.
	Normalizer Normalizer

	// CountPolicy selects the through-count semantics. Defaults to ExactCounts.
	CountPolicy CountPolicy
}

// DefaultOptions returns Options with:
//   - LowerCase normalization
//   - ExactCounts policy
func DefaultOptions() Options {
	return Options{
		Normalizer:  LowerCase,
		CountPolicy: ExactCounts,
	}
}

// WithNormalizer installs fn as the input normalizer.
// Passing nil has no effect (the default is retained).
func WithNormalizer(fn Normalizer) Option {
	return func(o *Options) {
		if fn != nil {
			o.Normalizer = fn
		}
	}
}

// WithCountPolicy selects the through-count policy.
// Unknown values are ignored.
func WithCountPolicy(p CountPolicy) Option {
	return func(o *Options) {
		if p == ExactCounts || p == ReferenceCounts {
			o.CountPolicy = p
		}
	}
}

// Stats is a structural snapshot of a Trie.
type Stats struct {
	// Words is the number of distinct stored words.
	Words int

	// Nodes counts live nodes, the root included.
	Nodes int

	// MaxDepth is the length, in runes, of the longest root-to-node path.
	MaxDepth int

	// AvgWordLen is the mean length of stored words in runes (0 when empty).
	AvgWordLen float64

	// ByFirstRune maps each first rune to the number of stored words that
	// start with it, as reported by CountWordsWithPrefix. Under
	// ReferenceCounts these are through-counts and over-report after
	// duplicate inserts and deletes.
	ByFirstRune map[rune]int
}
