package spell

// Candidates returns every distinct string at edit distance 1 from word,
// grouped in this order:
//
//  1. deletions      (one rune removed)
//  2. insertions     (one alphabet rune inserted at any position)
//  3. substitutions  (one rune replaced by a different alphabet rune)
//  4. transpositions (two adjacent runes swapped)
//
// Within a group, positions advance left to right and alphabet runes are
// tried in the given order. word itself is never returned.
//
// Complexity: O(n·|alphabet|) candidates of length O(n), n = runes in word.
func Candidates(word string, alphabet []rune) []string {
	rs := []rune(word)
	n := len(rs)
	out := make([]string, 0, n+(n+1)*len(alphabet)+n*len(alphabet)+n)
	seen := map[string]bool{word: true}
	add := func(c []rune) {
		s := string(c)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	buf := make([]rune, 0, n+1)

	// 1. Deletions.
	for i := 0; i < n; i++ {
		buf = append(append(buf[:0], rs[:i]...), rs[i+1:]...)
		add(buf)
	}

	// 2. Insertions.
	for i := 0; i <= n; i++ {
		for _, a := range alphabet {
			buf = append(buf[:0], rs[:i]...)
			buf = append(buf, a)
			buf = append(buf, rs[i:]...)
			add(buf)
		}
	}

	// 3. Substitutions.
	for i := 0; i < n; i++ {
		for _, a := range alphabet {
			if a == rs[i] {
				continue
			}
			buf = append(buf[:0], rs...)
			buf[i] = a
			add(buf)
		}
	}

	// 4. Adjacent transpositions.
	for i := 0; i+1 < n; i++ {
		if rs[i] == rs[i+1] {
			continue
		}
		buf = append(buf[:0], rs...)
		buf[i], buf[i+1] = buf[i+1], buf[i]
		add(buf)
	}

	return out
}
