package trie_test

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlex/trie"
)

// TestConcurrent_InsertSearch runs writers and readers side by side.
// Run with -race.
func TestConcurrent_InsertSearch(t *testing.T) {
	c := trie.NewConcurrent()
	const writers, perWriter = 8, 100

	var wg sync.WaitGroup
	wg.Add(writers * 2)
	for w := 0; w < writers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				c.Insert(fmt.Sprintf("w%dn%d", id, i))
			}
		}(w)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = c.Search(fmt.Sprintf("w%dn%d", id, i))
				_ = c.CountWordsWithPrefix(fmt.Sprintf("w%d", id))
				_ = c.Autocomplete("w", 3)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, writers*perWriter, c.TotalWords())
	assert.Equal(t, writers*perWriter, c.CountWordsWithPrefix(""))
	assert.True(t, c.Search("w3n42"))
	assert.True(t, c.StartsWith("w7"))
}

// TestConcurrent_InsertDelete mixes inserts and deletes of disjoint keys.
func TestConcurrent_InsertDelete(t *testing.T) {
	c := trie.NewConcurrent()
	for i := 0; i < 200; i++ {
		c.Insert(fmt.Sprintf("k%03d", i))
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i += 2 {
			assert.True(t, c.Delete(fmt.Sprintf("k%03d", i)))
		}
	}()
	go func() {
		defer wg.Done()
		_ = c.InsertAll(slices.Values([]string{"x1", "x2", "x3"}))
	}()
	wg.Wait()

	assert.Equal(t, 103, c.TotalWords())
	assert.Len(t, c.AllWords(), 103)
	assert.Equal(t, 103, c.Stats().Words)
}

func TestGuard_Snapshot(t *testing.T) {
	c := trie.Guard(build("alpha", "beta"))
	snap := c.Snapshot()

	c.Insert("gamma")
	assert.False(t, snap.Search("gamma"), "snapshot is detached")
	assert.Equal(t, 2, snap.TotalWords())
	assert.Equal(t, 3, c.TotalWords())
}
