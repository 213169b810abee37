package trie

// NodeCount returns the number of live nodes, the root included.
// An empty Trie (or one whose words were all deleted) has exactly one node.
// Complexity: O(nodes).
func (t *Trie) NodeCount() int {
	count := 0
	stack := []*node{t.root}
	var n *node
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, c := range n.children {
			stack = append(stack, c)
		}
	}

	return count
}

// Stats walks the whole Trie and returns its structural snapshot.
// Complexity: O(nodes).
func (t *Trie) Stats() Stats {
	type item struct {
		n     *node
		depth int
	}

	s := Stats{
		Words:       t.words,
		ByFirstRune: make(map[rune]int, len(t.root.children)),
	}
	totalLen := 0
	stack := []item{{n: t.root}}
	var it item
	for len(stack) > 0 {
		it = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s.Nodes++
		s.MaxDepth = max(s.MaxDepth, it.depth)
		if it.n.terminal {
			totalLen += it.depth // depth equals rune length of the word
		}
		for _, c := range it.n.children {
			stack = append(stack, item{n: c, depth: it.depth + 1})
		}
	}

	for r, c := range t.root.children {
		s.ByFirstRune[r] = c.through
	}
	if s.Words > 0 {
		s.AvgWordLen = float64(totalLen) / float64(s.Words)
	}

	return s
}
