package trie

// Clone returns a deep copy of t: nodes, counts, normalizer and policy.
// The copy shares no nodes with t, so either may be mutated independently.
// Complexity: O(nodes).
func (t *Trie) Clone() *Trie {
	type pair struct{ src, dst *node }

	clone := &Trie{
		root:   &node{},
		words:  t.words,
		norm:   t.norm,
		policy: t.policy,
	}

	stack := []pair{{src: t.root, dst: clone.root}}
	var p pair
	for len(stack) > 0 {
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p.dst.terminal = p.src.terminal
		p.dst.through = p.src.through
		if len(p.src.children) == 0 {
			continue
		}
		p.dst.children = make(map[rune]*node, len(p.src.children))
		for r, c := range p.src.children {
			nc := &node{}
			p.dst.children[r] = nc
			stack = append(stack, pair{src: c, dst: nc})
		}
	}

	return clone
}
