package main

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/e11jah/bstset"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// valueSet hides the element type chosen on the command line.
type valueSet interface {
	size() int
	traverse(order bstset.Order) []string
	show() string
	stats() setStats
	erase(raw string) (bool, error)
	check() error
}

type setStats struct {
	size, height  int
	root, min, max string
}

type typedSet[T constraints.Ordered] struct {
	tree  bstset.Tree[T]
	parse func(string) (T, error)
}

func buildSet(typ string, args []string) (valueSet, error) {
	switch typ {
	case "int":
		return newTypedSet(args, strconv.Atoi)
	case "float":
		return newTypedSet(args, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	case "string":
		return newTypedSet(args, func(s string) (string, error) { return s, nil })
	}
	return nil, errors.Newf("unknown value type: %q", typ)
}

func newTypedSet[T constraints.Ordered](args []string, parse func(string) (T, error)) (valueSet, error) {
	s := &typedSet[T]{tree: bstset.New[T](), parse: parse}
	values := make([]T, 0, len(args))
	for _, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", arg)
		}
		values = append(values, v)
	}
	if _, err := s.tree.InsertRange(values...); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *typedSet[T]) size() int {
	return s.tree.Size()
}

func (s *typedSet[T]) traverse(order bstset.Order) []string {
	out := make([]string, 0, s.tree.Size())
	for v := range s.tree.All(order) {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

func (s *typedSet[T]) show() string {
	root := s.tree.Root()
	if root == nil {
		return "(empty)\n"
	}
	tree := treeprint.NewWithRoot(fmt.Sprint(root.Value()))
	addChildren(tree, root)
	return tree.String()
}

func addChildren[T constraints.Ordered](branch treeprint.Tree, n bstset.Node[T]) {
	if l := n.Left(); l != nil {
		addChildren(branch.AddBranch(fmt.Sprintf("L: %v", l.Value())), l)
	}
	if r := n.Right(); r != nil {
		addChildren(branch.AddBranch(fmt.Sprintf("R: %v", r.Value())), r)
	}
}

func (s *typedSet[T]) stats() setStats {
	st := setStats{size: s.tree.Size(), height: s.tree.Height()}
	if root := s.tree.Root(); root != nil {
		st.root = fmt.Sprint(root.Value())
	}
	first := true
	for v := range s.tree.TraverseInorder() {
		if first {
			st.min = fmt.Sprint(v)
			first = false
		}
		st.max = fmt.Sprint(v)
	}
	return st
}

func (s *typedSet[T]) erase(raw string) (bool, error) {
	v, err := s.parse(raw)
	if err != nil {
		return false, errors.Wrapf(err, "parsing %q", raw)
	}
	return s.tree.Erase(v), nil
}

func (s *typedSet[T]) check() error {
	return bstset.CheckInvariants(s.tree)
}
