// Package trie implements an ordered, mutable prefix tree (trie) dictionary
// with membership search, prefix existence, stored prefix counts,
// lexicographic enumeration, bounded autocomplete, and deletion with
// automatic pruning of dead branches.
//
// What:
//
//   - Insert:               store a word; duplicates keep TotalWords unchanged.
//   - Search:               exact-word membership (prefixes alone do not match).
//   - StartsWith:           path existence for a prefix ("" is always present).
//   - CountWordsWithPrefix: O(len(prefix)) read of the stored through-count.
//   - Autocomplete:         at most limit words under a prefix, lexicographic.
//   - AllWords:             every stored word, lexicographic.
//   - Delete:               remove a word and prune childless, non-terminal nodes.
//   - TotalWords:           number of distinct stored words.
//
// Every input is passed through the Trie's Normalizer before storage and
// before lookup. The default, LowerCase, applies language-neutral Unicode
// lower-casing, so "Hello" and "hello" are the same word. Paths are built per
// Unicode code point; no alphabet is enforced. Invalid UTF-8 left over after
// normalization is replaced with U+FFFD (one per run of bad bytes), so
// Normalize, the stored paths and the enumerated words always agree.
//
// Count policies:
//
//	ExactCounts (default)  counts move only when a word is added or removed;
//	                       CountWordsWithPrefix(p) == len(completions of p).
//	ReferenceCounts        every insert traversal increments, delete never
//	                       decrements; counts drift upward after duplicate
//	                       inserts and after deletes.
//
// ReferenceCounts exists for callers that must match previously recorded
// counts; new code should keep the default.
//
// Concurrency:
//
// A Trie is a plain, single-threaded structure. Concurrent wraps one behind
// a sync.RWMutex (writers exclusive, readers shared).
//
// Complexity:
//
//   - Insert, Search, StartsWith, CountWordsWithPrefix, Delete: O(L), L = key length.
//   - Autocomplete: O(L + visited nodes), stops once limit words are found.
//   - AllWords, NodeCount, Stats, Clone: O(N), N = live nodes.
//
// Traversals and deletion keep their own explicit stacks; no operation
// recurses.
//
// Errors:
//
// No operation fails. "Not found" is reported as false, 0 or an empty slice.
//
// Example:
//
//	t := trie.New()
//	for _, w := range []string{"cat", "car", "card", "care", "dog"} {
//		t.Insert(w)
//	}
//	t.CountWordsWithPrefix("ca") // 4
//	t.Autocomplete("car", 2)     // [car card]
//	t.Delete("car")              // true
package trie
