package bstset

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree is an ordered set of distinct values kept in an unbalanced binary
// search tree. It is not safe for concurrent use.
type Tree[T constraints.Ordered] interface {
	Insert(value T) (bool, error)
	InsertRange(values ...T) (int, error)
	Merge(other Tree[T]) int
	Contains(value T) bool
	// Find returns the node holding value, or nil. The returned node is only
	// valid until the next Erase: removing a node with two children moves the
	// successor's value into it.
	Find(value T) Node[T]
	Erase(value T) bool
	Clear()

	Root() Node[T]
	Size() int
	Empty() bool
	Height() int

	TraverseInorder() iter.Seq[T]
	TraversePreorder() iter.Seq[T]
	TraversePostorder() iter.Seq[T]
	All(order Order) iter.Seq[T]
	Walk(order Order, fn func(value T) bool)
	Iterator(order Order) Iterator[T]
}

// Iterator is a pull style cursor over the values of a Tree.
type Iterator[T constraints.Ordered] interface {
	HasNext() bool
	Next() (T, error)
}

// Node is a read-only view of a stored value and its children.
type Node[T constraints.Ordered] interface {
	Value() T
	Left() Node[T]
	Right() Node[T]
}

func New[T constraints.Ordered]() Tree[T] {
	return &tree[T]{}
}
