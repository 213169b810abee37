package trie

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// LowerCase maps s to lower case using language-neutral Unicode rules.
// A fresh Caser is built per call: Casers are stateful and must not be
// shared between goroutines reading through a Concurrent trie.
func LowerCase(s string) string {
	if s == "" {
		return s
	}

	return cases.Lower(language.Und).String(s)
}

// FoldCase composes s to NFC and applies full Unicode case folding,
// so that "Straße", "STRASSE" and "strasse" share one path.
func FoldCase(s string) string {
	if s == "" {
		return s
	}

	return cases.Fold().String(norm.NFC.String(s))
}

// Identity stores input verbatim (case-sensitive trie).
func Identity(s string) string { return s }
