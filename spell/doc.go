// Package spell checks spelling against any exact-membership Dictionary
// (typically a *trie.Trie) and proposes corrections one edit away.
//
// Candidate generation covers the four single edits, in this order:
// deletion, insertion, substitution, adjacent transposition. Suggest keeps
// the candidates the dictionary accepts, in generation order, up to the
// configured cap. There is no ranking: the first valid candidates win.
//
// Usage:
//
//	dict := trie.New()
//	dict.InsertAll(slices.Values([]string{"the", "world", "hello"}))
//	chk, _ := spell.NewChecker(dict, spell.WithMaxSuggestions(3))
//	chk.Check("teh")    // false
//	chk.Suggest("teh")  // [the]
//	chk.CheckText("Helo wrold!")
//
// Errors:
//
//   - ErrNilDictionary  NewChecker was given a nil Dictionary.
package spell
