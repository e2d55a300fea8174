package bstset

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode(t *testing.T) {
	n, err := newNode(42)
	require.NoError(t, err)
	assert.Equal(t, 42, n.Value())
	assert.Nil(t, n.Left())
	assert.Nil(t, n.Right())

	for _, v := range []int{0, -1, -1 << 31} {
		n, err := newNode(v)
		require.NoError(t, err)
		assert.Equal(t, v, n.Value())
	}

	f, err := newNode(3.14)
	require.NoError(t, err)
	assert.Equal(t, 3.14, f.Value())

	s, err := newNode("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", s.Value())

	ws, err := newNode(" ")
	require.NoError(t, err)
	assert.Equal(t, " ", ws.Value())
}

func TestNewNodeEmptyString(t *testing.T) {
	n, err := newNode("")
	assert.Nil(t, n)
	assert.True(t, errors.Is(err, ErrInvalidValue))

	type name string
	nn, err := newNode(name(""))
	assert.Nil(t, nn)
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestNodeSetValue(t *testing.T) {
	n, err := newNode("a")
	require.NoError(t, err)
	child, err := newNode("b")
	require.NoError(t, err)
	n.setRight(child)

	require.NoError(t, n.setValue("c"))
	assert.Equal(t, "c", n.Value())

	err = n.setValue("")
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Equal(t, "c", n.Value())
	assert.Equal(t, "b", n.Right().Value())
}

func TestNodeChildSlots(t *testing.T) {
	parent, _ := newNode(10)
	l1, _ := newNode(5)
	l2, _ := newNode(3)
	r, _ := newNode(20)

	assert.Nil(t, parent.setLeft(l1))
	assert.Nil(t, parent.setRight(r))
	assert.Equal(t, 5, parent.Left().Value())
	assert.Equal(t, 20, parent.Right().Value())

	prev := parent.setLeft(l2)
	assert.Same(t, l1, prev)
	assert.Equal(t, 3, parent.Left().Value())

	assert.Same(t, r, parent.setRight(nil))
	assert.Nil(t, parent.Right())
}

func TestNodeHeightAndRelease(t *testing.T) {
	var empty *node[int]
	assert.Equal(t, -1, empty.height())

	root, _ := newNode(2)
	l, _ := newNode(1)
	r, _ := newNode(3)
	rr, _ := newNode(4)
	root.setLeft(l)
	root.setRight(r)
	r.setRight(rr)
	assert.Equal(t, 2, root.height())
	assert.Same(t, l, root.leftmost())

	root.release()
	assert.Nil(t, root.Left())
	assert.Nil(t, root.Right())
	assert.Nil(t, r.Right())
	assert.Equal(t, 0, root.height())
}
