package bstset

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"golang.org/x/exp/constraints"
)

func TestDataDrivenInt(t *testing.T) {
	runTreeTest(t, "testdata/int_tree", strconv.Atoi)
}

func TestDataDrivenString(t *testing.T) {
	runTreeTest(t, "testdata/string_tree", func(s string) (string, error) {
		if s == `""` {
			return "", nil
		}
		return s, nil
	})
}

func runTreeTest[T constraints.Ordered](t *testing.T, path string, parse func(string) (T, error)) {
	tree := New[T]()

	parseValues := func(input string) ([]T, error) {
		var values []T
		for _, f := range strings.Fields(input) {
			v, err := parse(f)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	}

	datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
		values, err := parseValues(d.Input)
		if err != nil {
			return err.Error()
		}

		var buf strings.Builder
		switch d.Cmd {
		case "reset":
			tree = New[T]()
			return "ok"

		case "insert":
			added, err := tree.InsertRange(values...)
			if err != nil {
				fmt.Fprintf(&buf, "error: %v\n", err)
			}
			fmt.Fprintf(&buf, "added=%d %s", added, stats(tree))

		case "erase":
			for _, v := range values {
				removed := "absent"
				if tree.Erase(v) {
					removed = "removed"
				}
				fmt.Fprintf(&buf, "%v: %s\n", v, removed)
			}
			buf.WriteString(stats(tree))

		case "contains":
			for _, v := range values {
				fmt.Fprintf(&buf, "%v: %t\n", v, tree.Contains(v))
			}

		case "merge":
			other := New[T]()
			if _, err := other.InsertRange(values...); err != nil {
				return err.Error()
			}
			added := tree.Merge(other)
			fmt.Fprintf(&buf, "added=%d %s\nother: %s", added, stats(tree), stats(other))

		case "clear":
			tree.Clear()
			buf.WriteString(stats(tree))

		case "traverse":
			var order string
			d.ScanArgs(t, "order", &order)
			var o Order
			switch order {
			case "in":
				o = InOrder
			case "pre":
				o = PreOrder
			case "post":
				o = PostOrder
			default:
				return fmt.Sprintf("unknown order %q", order)
			}
			var out []string
			for v := range tree.All(o) {
				out = append(out, fmt.Sprint(v))
			}
			if len(out) == 0 {
				return "<empty>"
			}
			buf.WriteString(strings.Join(out, " "))

		case "show":
			if tree.Empty() {
				return "<empty>"
			}
			showNode(&buf, tree.Root(), "", 0)

		default:
			return fmt.Sprintf("unknown command: %s", d.Cmd)
		}

		if err := CheckInvariants(tree); err != nil {
			return err.Error()
		}
		return buf.String()
	})
}

func stats[T constraints.Ordered](tree Tree[T]) string {
	return fmt.Sprintf("size=%d height=%d", tree.Size(), tree.Height())
}

func showNode[T constraints.Ordered](buf *strings.Builder, n Node[T], label string, depth int) {
	if n == nil {
		return
	}
	fmt.Fprintf(buf, "%s%s%v\n", strings.Repeat("  ", depth), label, n.Value())
	showNode(buf, n.Left(), "L: ", depth+1)
	showNode(buf, n.Right(), "R: ", depth+1)
}
