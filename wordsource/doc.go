// Package wordsource feeds dictionaries in bulk.
//
// A Source streams words; Load drains one into anything with an
// Insert(string) method, such as *trie.Trie or *trie.Concurrent.
//
// Sources:
//
//   - Lines(r, opts...)      text input, one word per line or split on white
//     space; optional legacy decoding (Latin-1, Latin-9, Windows-1252) and an
//     alphabetic-only filter.
//   - Rows(db, query, ...)   first column of every row of a SQL query.
//   - Slice(words...)        a fixed list.
//   - SourceFunc             adapter for anything else.
//
// Example:
//
//	f, _ := os.Open("/usr/share/dict/words")
//	defer f.Close()
//	t := trie.New()
//	n, err := wordsource.Load(ctx, t, wordsource.Lines(f, wordsource.WithAlphaOnly()))
//
// Logging goes to a null logger until SetLogger is called.
//
// Errors:
//
//   - ErrNilSource, ErrNilDestination  invalid Load arguments.
//   - ErrNilDB                         Rows over a nil *sql.DB.
//   - context.Canceled / DeadlineExceeded, wrapped, when ctx ends mid-load.
//   - scanner and driver errors, wrapped.
package wordsource
