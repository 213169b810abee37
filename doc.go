// Package lvlex is an in-memory dictionary toolkit built around a prefix
// tree (trie) of Unicode words.
//
// What is lvlex?
//
//	A small set of packages that load word lists and answer questions
//	about them:
//		• trie/        the prefix tree: insert, search, prefix checks,
//		               prefix counts, ordered completion, delete, stats
//		• spell/       edit-distance-1 spelling suggestions over any
//		               dictionary with exact membership
//		• wordsource/  streaming word feeds from text files (any 8-bit
//		               charset) and SQL queries, plus a cancellable loader
//		• cmd/lvlex/   one-shot command line front end
//		• examples/    runnable walkthroughs
//
// Quick ASCII example: after inserting "car", "cart" and "cat"
//
//	root
//	 └─ c(3)
//	     └─ a(3)
//	         ├─ r(2)*
//	         │   └─ t(1)*
//	         └─ t(1)*
//
// every node carries how many stored words pass through it (in brackets)
// and a star marks the end of a word, so CountWordsWithPrefix("ca") is 3
// without walking the subtree.
//
//	go get github.com/katalvlaran/lvlex/trie
package lvlex
