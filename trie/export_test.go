package trie

import "fmt"

// Test bridge: white-box checks over the private node graph for trie_test.

// CheckInvariants walks t and reports the first structural violation:
//   - a non-root node that is neither terminal nor has children;
//   - a child whose through-count exceeds its parent's;
//   - a terminal-node count that differs from TotalWords;
//   - under ExactCounts, a through-count that differs from the number of
//     terminal nodes in its subtree.
func CheckInvariants(t *Trie) error {
	terminals, err := checkNode(t, t.root, "", true)
	if err != nil {
		return err
	}
	if terminals != t.words {
		return fmt.Errorf("terminal nodes %d != TotalWords %d", terminals, t.words)
	}

	return nil
}

// checkNode returns the number of terminal nodes in n's subtree.
// Recursion is fine here: test words are short.
func checkNode(t *Trie, n *node, path string, isRoot bool) (int, error) {
	if !isRoot && n.prunable() {
		return 0, fmt.Errorf("dead node at %q", path)
	}
	terminals := 0
	if n.terminal {
		terminals++
	}
	for r, c := range n.children {
		if c.through > n.through {
			return 0, fmt.Errorf("count at %q (%d) exceeds parent %q (%d)",
				path+string(r), c.through, path, n.through)
		}
		sub, err := checkNode(t, c, path+string(r), false)
		if err != nil {
			return 0, err
		}
		terminals += sub
	}
	if t.policy == ExactCounts && n.through != terminals {
		return 0, fmt.Errorf("exact count at %q is %d, subtree holds %d words", path, n.through, terminals)
	}

	return terminals, nil
}
