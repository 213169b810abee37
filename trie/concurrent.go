package trie

import (
	"iter"
	"sync"
)

// Concurrent guards a Trie with a single sync.RWMutex: Insert, InsertAll
// and Delete take the write lock, every query takes the read lock.
// Enumerations are materialized into slices before the lock is released.
type Concurrent struct {
	mu sync.RWMutex
	t  *Trie
}

// NewConcurrent creates a guarded, empty Trie configured by opts.
func NewConcurrent(opts ...Option) *Concurrent {
	return &Concurrent{t: New(opts...)}
}

// Guard takes exclusive ownership of t. The caller must not touch t
// directly afterwards.
func Guard(t *Trie) *Concurrent {
	return &Concurrent{t: t}
}

// Insert adds word under the write lock.
func (c *Concurrent) Insert(word string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.t.Insert(word)
}

// InsertAll drains words under a single write lock and returns how many
// were new. The sequence must not call back into c.
func (c *Concurrent) InsertAll(words iter.Seq[string]) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t.InsertAll(words)
}

// Delete removes word under the write lock.
func (c *Concurrent) Delete(word string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t.Delete(word)
}

// Search reports membership under the read lock.
func (c *Concurrent) Search(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.t.Search(word)
}

// StartsWith reports prefix existence under the read lock.
func (c *Concurrent) StartsWith(prefix string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.t.StartsWith(prefix)
}

// CountWordsWithPrefix reads the prefix count under the read lock.
func (c *Concurrent) CountWordsWithPrefix(prefix string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.t.CountWordsWithPrefix(prefix)
}

// Autocomplete collects up to limit completions under the read lock.
func (c *Concurrent) Autocomplete(prefix string, limit int) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.t.Autocomplete(prefix, limit)
}

// AllWords lists every stored word under the read lock.
func (c *Concurrent) AllWords() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.t.AllWords()
}

// TotalWords reads the word counter under the read lock.
func (c *Concurrent) TotalWords() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.t.TotalWords()
}

// Stats computes a structural snapshot under the read lock.
func (c *Concurrent) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.t.Stats()
}

// Snapshot returns an unguarded deep copy taken under the read lock.
func (c *Concurrent) Snapshot() *Trie {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.t.Clone()
}
