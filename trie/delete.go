package trie

// step records one edge of a root-to-node path: the parent and the rune
// leading out of it.
type step struct {
	parent *node
	r      rune
}

// Delete removes word from the Trie and reports whether it was stored.
// On success the terminal mark is cleared, TotalWords drops by one and every
// node left without a terminal mark and without children is detached from
// its parent, cascading upward until a terminal or branching node is reached.
// Under ExactCounts the through-counts along the path are decremented;
// ReferenceCounts leaves them untouched.
//
// Ancestors are kept on an explicit stack bounded by len(word); no recursion.
//
// Complexity: O(len(word)).
func (t *Trie) Delete(word string) bool {
	key := t.norm(word)

	// 1. Record the path; bail out if it breaks.
	path := make([]step, 0, len(key))
	cur := t.root
	for _, r := range key {
		next := cur.child(r)
		if next == nil {
			return false
		}
		path = append(path, step{parent: cur, r: r})
		cur = next
	}

	// 2. Only a terminal end node holds a word.
	if !cur.terminal {
		return false
	}

	// 3. Unmark and account.
	cur.terminal = false
	t.words--
	if t.policy == ExactCounts {
		t.addThrough(key, -1)
	}

	// 4. Prune upward: each prune candidate is either detached or kept alive.
	for i := len(path) - 1; i >= 0; i-- {
		if !cur.prunable() {
			break // terminal or still branching: stays alive
		}
		parent := path[i].parent
		delete(parent.children, path[i].r)
		if len(parent.children) == 0 {
			parent.children = nil
		}
		cur = parent
	}

	return true
}
