package nested

import "fmt"

// Contains reports whether any leaf reachable from t equals target.
//
// Algorithm:
//  1. A scalar node matches iff Equal(node, target).
//  2. A *Node is searched depth first, visiting its keys in insertion
//     order; the first matching subtree ends the search.
//  3. An empty *Node contains nothing.
//
// Complexity: O(L) time over L reachable nodes, O(D) stack for depth D.
//
// Errors:
//   - ErrInvalidArgument if target is nil, or t (or any subtree) is nil.
func Contains(t Tree, target Scalar) (bool, error) {
	if target == nil {
		return false, fmt.Errorf("%s: target is nil: %w", MethodContains, ErrInvalidArgument)
	}

	return contains(t, target)
}

func contains(t Tree, target Scalar) (bool, error) {
	switch n := t.(type) {
	case Scalar:
		return Equal(n, target), nil
	case *Node:
		if n == nil {
			return false, fmt.Errorf("%s: nil node: %w", MethodContains, ErrInvalidArgument)
		}
		for _, key := range n.keys {
			found, err := contains(n.entries[key], target)
			if err != nil {
				return false, err
			}
			if found {
				return true, nil
			}
		}

		return false, nil
	default:
		return false, fmt.Errorf("%s: nil tree: %w", MethodContains, ErrInvalidArgument)
	}
}
