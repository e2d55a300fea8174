package bstset

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// validate rejects the empty string for textual value types. Numeric values
// are always valid.
func validate[T constraints.Ordered](value T) error {
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String && rv.Len() == 0 {
		return errors.Wrapf(ErrInvalidValue, "empty %T", value)
	}
	return nil
}

func newNode[T constraints.Ordered](value T) (*node[T], error) {
	if err := validate(value); err != nil {
		return nil, err
	}
	return &node[T]{value: value}, nil
}

func (n *node[T]) Value() T {
	return n.value
}

func (n *node[T]) Left() Node[T] {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *node[T]) Right() Node[T] {
	if n.right == nil {
		return nil
	}
	return n.right
}

// setValue replaces the value in place, children are left alone. Only used
// to promote an in-order successor during erase.
func (n *node[T]) setValue(value T) error {
	if err := validate(value); err != nil {
		return err
	}
	n.value = value
	return nil
}

// setLeft and setRight hand the previous subtree back to the caller.
func (n *node[T]) setLeft(child *node[T]) (prev *node[T]) {
	prev, n.left = n.left, child
	return prev
}

func (n *node[T]) setRight(child *node[T]) (prev *node[T]) {
	prev, n.right = n.right, child
	return prev
}

// leftmost returns the minimum node of the subtree rooted at n.
func (n *node[T]) leftmost() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.height(), n.right.height())
}

// release detaches the whole subtree, children before parent.
func (n *node[T]) release() {
	if n == nil {
		return
	}
	n.left.release()
	n.right.release()
	n.setLeft(nil)
	n.setRight(nil)
}
