package bstset

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// CheckInvariants verifies the ordering of every node in t, that no stored
// value is an empty string, and that Size matches the number of reachable
// nodes.
func CheckInvariants[T constraints.Ordered](t Tree[T]) error {
	count, err := checkSubtree(t.Root(), nil, nil)
	if err != nil {
		return err
	}
	if count != t.Size() {
		return errors.AssertionFailedf("size %d, but %d nodes are reachable", t.Size(), count)
	}
	if t.Empty() != (count == 0) {
		return errors.AssertionFailedf("empty=%t with %d nodes", t.Empty(), count)
	}
	return nil
}

// checkSubtree returns the node count under n; lo and hi are exclusive
// bounds inherited from the ancestors.
func checkSubtree[T constraints.Ordered](n Node[T], lo, hi *T) (int, error) {
	if n == nil {
		return 0, nil
	}
	v := n.Value()
	if err := validate(v); err != nil {
		return 0, errors.NewAssertionErrorWithWrappedErrf(err, "stored value")
	}
	if lo != nil && cmp.Compare(v, *lo) <= 0 {
		return 0, errors.AssertionFailedf("value %v not greater than ancestor %v", v, *lo)
	}
	if hi != nil && cmp.Compare(v, *hi) >= 0 {
		return 0, errors.AssertionFailedf("value %v not less than ancestor %v", v, *hi)
	}
	left, err := checkSubtree(n.Left(), lo, &v)
	if err != nil {
		return 0, err
	}
	right, err := checkSubtree(n.Right(), &v, hi)
	if err != nil {
		return 0, err
	}
	return 1 + left + right, nil
}
