package bstset

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

var (
	ErrInvalidValue = errors.New("invalid value")
	ErrNoMoreValues = errors.New("there are no more values in the tree")
)

type (
	tree[T constraints.Ordered] struct {
		size int
		root *node[T]
	}

	// Order selects one of the three depth-first visiting sequences.
	Order int

	node[T constraints.Ordered] struct {
		value T
		left  *node[T]
		right *node[T]
	}

	// iterator frame: the node plus whether its left subtree (in-order) or
	// both subtrees (post-order) have already been pushed.
	frame[T constraints.Ordered] struct {
		node     *node[T]
		expanded bool
	}

	iterator[T constraints.Ordered] struct {
		order Order
		stack []frame[T]
		next  *node[T]
	}
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return "unknown"
}
