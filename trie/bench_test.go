package trie_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlex/trie"
)

// dictionary returns n distinct words sharing a handful of prefixes.
func dictionary(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%c%06d", 'a'+rune(i%26), i)
	}

	return words
}

// BenchmarkInsert measures insertion of fresh words.
func BenchmarkInsert(b *testing.B) {
	words := dictionary(100000)
	t := trie.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Insert(words[i%len(words)])
	}
}

// BenchmarkSearch measures membership lookups on a 100k-word trie.
func BenchmarkSearch(b *testing.B) {
	words := dictionary(100000)
	t := trie.New()
	for _, w := range words {
		t.Insert(w)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Search(words[i%len(words)])
	}
}

// BenchmarkAutocomplete measures a capped walk under a busy prefix.
func BenchmarkAutocomplete(b *testing.B) {
	t := trie.New()
	for _, w := range dictionary(100000) {
		t.Insert(w)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Autocomplete("wa", 10)
	}
}

// BenchmarkDelete measures delete followed by re-insert of the same word.
func BenchmarkDelete(b *testing.B) {
	words := dictionary(10000)
	t := trie.New()
	for _, w := range words {
		t.Insert(w)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := words[i%len(words)]
		t.Delete(w)
		t.Insert(w)
	}
}
