package bstset

import "golang.org/x/exp/constraints"

// newIterator walks the subtree at root with an explicit stack, so a
// degenerate tree does not grow the goroutine stack.
func newIterator[T constraints.Ordered](root *node[T], order Order) *iterator[T] {
	it := &iterator[T]{order: order}
	it.push(root, false)
	it.advance()
	return it
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && it.next != nil
}

func (it *iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreValues
	}
	cur := it.next
	it.advance()
	return cur.value, nil
}

func (it *iterator[T]) push(n *node[T], expanded bool) {
	if n != nil {
		it.stack = append(it.stack, frame[T]{node: n, expanded: expanded})
	}
}

func (it *iterator[T]) pop() frame[T] {
	f := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	return f
}

// advance moves it.next to the following node, or nil when done.
func (it *iterator[T]) advance() {
	for len(it.stack) > 0 {
		f := it.pop()
		n := f.node

		switch it.order {
		case PreOrder:
			it.push(n.right, false)
			it.push(n.left, false)
			it.next = n
			return
		case InOrder:
			if f.expanded {
				it.push(n.right, false)
				it.next = n
				return
			}
			it.push(n, true)
			it.push(n.left, false)
		case PostOrder:
			if f.expanded {
				it.next = n
				return
			}
			it.push(n, true)
			it.push(n.right, false)
			it.push(n.left, false)
		default:
			it.stack = nil
		}
	}
	it.next = nil
}
