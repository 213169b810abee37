package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlex/trie"
)

func TestStats(t *testing.T) {
	tr := build("a", "ab", "abc", "b", "bcd")
	s := tr.Stats()

	assert.Equal(t, 5, s.Words)
	assert.Equal(t, tr.NodeCount(), s.Nodes)
	assert.Equal(t, 7, s.Nodes) // root a b c | b c d
	assert.Equal(t, 3, s.MaxDepth)
	assert.InDelta(t, 2.0, s.AvgWordLen, 1e-9) // (1+2+3+1+3)/5
	assert.Equal(t, map[rune]int{'a': 3, 'b': 2}, s.ByFirstRune)
}

func TestStats_Empty(t *testing.T) {
	s := trie.New().Stats()
	assert.Equal(t, 0, s.Words)
	assert.Equal(t, 1, s.Nodes)
	assert.Equal(t, 0, s.MaxDepth)
	assert.Zero(t, s.AvgWordLen)
	assert.Empty(t, s.ByFirstRune)
}
