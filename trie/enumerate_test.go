package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlex/trie"
)

func TestAutocomplete_Limit(t *testing.T) {
	tr := build("hello", "help", "helper")
	assert.Equal(t, []string{"hello", "help"}, tr.Autocomplete("hel", 2))
	assert.Equal(t, []string{"hello", "help", "helper"}, tr.Autocomplete("hel", 10))
}

func TestAutocomplete_PrefixItselfFirst(t *testing.T) {
	tr := build("care", "car", "card", "cart")
	assert.Equal(t, []string{"car", "card", "care", "cart"}, tr.Autocomplete("car", 10))
}

func TestAutocomplete_Empty(t *testing.T) {
	tr := build("hello")

	got := tr.Autocomplete("xyz", 5)
	require.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, tr.Autocomplete("hel", 0))
	assert.Empty(t, tr.Autocomplete("hel", -3))
}

func TestAutocomplete_EmptyPrefixListsAll(t *testing.T) {
	tr := build("b", "a", "c")
	assert.Equal(t, []string{"a", "b"}, tr.Autocomplete("", 2))
}

func TestAutocomplete_NormalizesPrefix(t *testing.T) {
	tr := build("Hello", "help")
	assert.Equal(t, []string{"hello", "help"}, tr.Autocomplete("HEL", 5))
}

func TestAllWords_Lexicographic(t *testing.T) {
	tr := build("dog", "cat", "car", "care", "card", "a", "zebra", "ab")
	assert.Equal(t,
		[]string{"a", "ab", "car", "card", "care", "cat", "dog", "zebra"},
		tr.AllWords())
}

func TestCompletions_EarlyBreak(t *testing.T) {
	tr := build("aa", "ab", "ac", "ad")
	var got []string
	for w := range tr.Completions("a") {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"aa", "ab"}, got)
}

func TestCompletions_Restartable(t *testing.T) {
	tr := build("one", "two")
	seq := tr.All()

	var first, second []string
	for w := range seq {
		first = append(first, w)
	}
	tr.Insert("three")
	for w := range seq {
		second = append(second, w)
	}
	assert.Equal(t, []string{"one", "two"}, first)
	assert.Equal(t, []string{"one", "three", "two"}, second)
}

func TestCompletions_UnknownPrefix(t *testing.T) {
	tr := build("one")
	for range tr.Completions("x") {
		t.Fatal("no completions expected")
	}
}

func TestAutocomplete_DeepWord(t *testing.T) {
	long := make([]rune, 10000)
	for i := range long {
		long[i] = 'a' + rune(i%26)
	}
	tr := trie.New()
	tr.Insert(string(long))
	assert.Equal(t, []string{string(long)}, tr.AllWords())
	require.True(t, tr.Delete(string(long)))
	assert.Equal(t, 1, tr.NodeCount())
}
