// Package spell defines the dictionary contract, checker options and
// per-word results for edit-distance-1 spelling checks.
package spell

import (
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultAlphabet is the rune set used to generate insertions and
// substitutions when none is configured.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// DefaultMaxSuggestions caps Suggest when no limit is configured.
const DefaultMaxSuggestions = 5

// ErrNilDictionary is returned by NewChecker when dict is nil.
var ErrNilDictionary = errors.New("spell: dictionary is nil")

// Dictionary is the only capability a Checker needs: exact membership.
// *trie.Trie and *trie.Concurrent both satisfy it.
type Dictionary interface {
	Search(word string) bool
}

// Option configures a Checker.
type Option func(*Options)

// Options holds Checker configuration.
type Options struct {
	// Alphabet supplies the runes tried for insertions and substitutions.
	Alphabet []rune

	// MaxSuggestions caps Suggest. Values <= 0 fall back to the default.
	MaxSuggestions int

	// Normalize maps a misspelled word to the key candidates are built
	// from. Defaults to Unicode lower-casing.
	Normalize func(string) string
}

// DefaultOptions returns Options with:
//   - the lowercase Latin alphabet a-z
//   - at most DefaultMaxSuggestions suggestions
//   - lower-cased suggestion keys
func DefaultOptions() Options {
	return Options{
		Alphabet:       []rune(DefaultAlphabet),
		MaxSuggestions: DefaultMaxSuggestions,
		Normalize:      lowerCase,
	}
}

// lowerCase builds a fresh Caser per call; Casers are not goroutine-safe.
func lowerCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// WithAlphabet replaces the candidate alphabet. Duplicate runes are kept
// once; an empty alphabet is ignored.
func WithAlphabet(alphabet string) Option {
	return func(o *Options) {
		if alphabet == "" {
			return
		}
		seen := make(map[rune]bool, len(alphabet))
		runes := make([]rune, 0, len(alphabet))
		for _, r := range alphabet {
			if !seen[r] {
				seen[r] = true
				runes = append(runes, r)
			}
		}
		o.Alphabet = runes
	}
}

// WithMaxSuggestions caps the number of suggestions per word.
// Non-positive values are ignored.
func WithMaxSuggestions(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSuggestions = n
		}
	}
}

// WithNormalizer replaces the suggestion key mapping. Pass the dictionary's
// own normalizer (e.g. (*trie.Trie).Normalize) when it is not lower case.
// Nil is ignored.
func WithNormalizer(fn func(string) string) Option {
	return func(o *Options) {
		if fn != nil {
			o.Normalize = fn
		}
	}
}

// Result reports the outcome of checking one token of a text.
type Result struct {
	// Word is the token with non-letters stripped.
	Word string

	// Correct is true when the dictionary holds Word.
	Correct bool

	// Suggestions lists dictionary words one edit away; empty when Correct.
	Suggestions []string
}
