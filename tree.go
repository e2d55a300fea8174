package bstset

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/errors"
)

func (t *tree[T]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[T]) Empty() bool {
	return t == nil || t.root == nil
}

func (t *tree[T]) Root() Node[T] {
	if t.root == nil {
		return nil
	}
	return t.root
}

func (t *tree[T]) Height() int {
	return t.root.height()
}

// Insert adds value unless an equal value is already stored. It reports
// whether a node was created.
func (t *tree[T]) Insert(value T) (bool, error) {
	if err := validate(value); err != nil {
		return false, err
	}
	inserted, err := t.recursiveInsert(&t.root, value)
	if inserted {
		t.size++
	}
	return inserted, err
}

func (t *tree[T]) recursiveInsert(curNode **node[T], value T) (bool, error) {
	curr := *curNode
	if curr == nil {
		n, err := newNode(value)
		if err != nil {
			return false, err
		}
		replaceRef(curNode, n)
		return true, nil
	}

	switch c := cmp.Compare(value, curr.value); {
	case c < 0:
		return t.recursiveInsert(&curr.left, value)
	case c > 0:
		return t.recursiveInsert(&curr.right, value)
	}
	// already present
	return false, nil
}

// InsertRange inserts values in order and returns how many were new. If any
// value is invalid nothing is inserted.
func (t *tree[T]) InsertRange(values ...T) (int, error) {
	for i, v := range values {
		if err := validate(v); err != nil {
			return 0, errors.Wrapf(err, "value %d", i)
		}
	}
	added := 0
	for _, v := range values {
		inserted, err := t.Insert(v)
		if err != nil {
			return added, err
		}
		if inserted {
			added++
		}
	}
	return added, nil
}

// Merge inserts every value of other, in ascending order, and returns how
// many were new. other is not modified.
func (t *tree[T]) Merge(other Tree[T]) int {
	if other == nil {
		return 0
	}
	added := 0
	for v := range other.TraverseInorder() {
		// values coming out of a Tree have already passed validation
		if inserted, _ := t.Insert(v); inserted {
			added++
		}
	}
	return added
}

func (t *tree[T]) Contains(value T) bool {
	return t.Find(value) != nil
}

func (t *tree[T]) Find(value T) Node[T] {
	if n := t.recursiveFind(t.root, value); n != nil {
		return n
	}
	return nil
}

func (t *tree[T]) recursiveFind(curr *node[T], value T) *node[T] {
	if curr == nil {
		return nil
	}
	switch c := cmp.Compare(value, curr.value); {
	case c < 0:
		return t.recursiveFind(curr.left, value)
	case c > 0:
		return t.recursiveFind(curr.right, value)
	}
	return curr
}

// Erase removes value and reports whether it was present.
func (t *tree[T]) Erase(value T) bool {
	removed := t.recursiveErase(&t.root, value)
	if removed {
		t.size--
	}
	return removed
}

func (t *tree[T]) recursiveErase(curNode **node[T], value T) bool {
	curr := *curNode
	if curr == nil {
		return false
	}

	switch c := cmp.Compare(value, curr.value); {
	case c < 0:
		return t.recursiveErase(&curr.left, value)
	case c > 0:
		return t.recursiveErase(&curr.right, value)
	}

	if curr.left == nil {
		replaceRef(curNode, curr.setRight(nil))
		return true
	}
	if curr.right == nil {
		replaceRef(curNode, curr.setLeft(nil))
		return true
	}

	// two children: pull the in-order successor's value up, then remove the
	// successor, which has no left child
	succ := curr.right.leftmost()
	if err := curr.setValue(succ.value); err != nil {
		panic(errors.AssertionFailedf("stored value rejected: %v", err))
	}
	return t.recursiveErase(&curr.right, succ.value)
}

func (t *tree[T]) Clear() {
	t.root.release()
	t.root = nil
	t.size = 0
}

func (t *tree[T]) TraverseInorder() iter.Seq[T] {
	return t.All(InOrder)
}

func (t *tree[T]) TraversePreorder() iter.Seq[T] {
	return t.All(PreOrder)
}

func (t *tree[T]) TraversePostorder() iter.Seq[T] {
	return t.All(PostOrder)
}

// All returns a sequence over the values in the given order. Each call to
// the sequence starts a fresh walk.
func (t *tree[T]) All(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := newIterator(t.root, order)
		for it.HasNext() {
			v, _ := it.Next()
			if !yield(v) {
				return
			}
		}
	}
}

func (t *tree[T]) Walk(order Order, fn func(value T) bool) {
	for v := range t.All(order) {
		if !fn(v) {
			return
		}
	}
}

func (t *tree[T]) Iterator(order Order) Iterator[T] {
	return newIterator(t.root, order)
}

// modify the slot curNode points at, ** means ref to a child pointer
func replaceRef[T any](curNode **T, n *T) {
	*curNode = n
}
