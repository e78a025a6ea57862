package Trees

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-trees/Seqs"
	"golang.org/x/exp/constraints"
)

// base holds what AVLTree and BSTree share: the root, the size and the order.
// Nothing in base changes the shape of the tree.
type base[T any] struct {
	root *node[T]
	sz   uint
	less func(a, b T) bool
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *base[T]) Contains(v T) bool {
	for cur := u.root; cur != nil; {
		if u.less(v, cur.v) {
			cur = cur.l
		} else if u.less(cur.v, v) {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

func (u *base[T]) Empty() bool {
	return u.sz == 0
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *base[T]) Size() uint {
	return u.sz
}

// Clear the tree. The nodes are left to the garbage collector.
func (u *base[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[T]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[T]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

func preOrder[T any](n *node[T], c Seqs.Collector[T]) {
	c.Append(n.v)
	if n.l != nil {
		preOrder(n.l, c)
	}
	if n.r != nil {
		preOrder(n.r, c)
	}
}

func inOrder[T any](n *node[T], c Seqs.Collector[T]) {
	if n.l != nil {
		inOrder(n.l, c)
	}
	c.Append(n.v)
	if n.r != nil {
		inOrder(n.r, c)
	}
}

func postOrder[T any](n *node[T], c Seqs.Collector[T]) {
	if n.l != nil {
		postOrder(n.l, c)
	}
	if n.r != nil {
		postOrder(n.r, c)
	}
	c.Append(n.v)
}

// walk the tree with one of the traversals above into c.
func (u *base[T]) walk(visit func(*node[T], Seqs.Collector[T]), c Seqs.Collector[T]) {
	if u.root != nil {
		visit(u.root, c)
	}
}

// collect the traversal into a fresh slice of exactly Size() elements.
func (u *base[T]) collect(visit func(*node[T], Seqs.Collector[T])) []T {
	s := Seqs.NewArraySeq[T](u.sz)
	u.walk(visit, s)
	return s.Detach()
}

// PreOrder [Tree.PreOrder]. Recursive.
// Time: O(n)
func (u *base[T]) PreOrder() []T {
	return u.collect(preOrder[T])
}

// InOrder [Tree.InOrder]. Recursive.
// Time: O(n)
func (u *base[T]) InOrder() []T {
	return u.collect(inOrder[T])
}

// PostOrder [Tree.PostOrder]. Recursive.
// Time: O(n)
func (u *base[T]) PostOrder() []T {
	return u.collect(postOrder[T])
}

func (u *base[T]) PreOrderTo(c Seqs.Collector[T]) {
	u.walk(preOrder[T], c)
}

func (u *base[T]) InOrderTo(c Seqs.Collector[T]) {
	u.walk(inOrder[T], c)
}

func (u *base[T]) PostOrderTo(c Seqs.Collector[T]) {
	u.walk(postOrder[T], c)
}

// ordered checks the BST ordering of the subtree rooting at n: every value
// is in [lo, hi), or [lo, hi] when !strict, where a nil bound is unbounded.
// Returns the node count, or -1 when ordering is broken. Recursive.
func (u *base[T]) ordered(n *node[T], lo, hi *T, strict bool) int {
	if n == nil {
		return 0
	}
	if lo != nil && u.less(n.v, *lo) {
		return -1
	}
	if hi != nil && (u.less(*hi, n.v) || strict && !u.less(n.v, *hi)) {
		return -1
	}
	lc := u.ordered(n.l, lo, &n.v, strict)
	if lc < 0 {
		return -1
	}
	rc := u.ordered(n.r, &n.v, hi, strict)
	if rc < 0 {
		return -1
	}
	return lc + rc + 1
}

// corrupt is true when the ordering is broken or the node count isn't Size().
func (u *base[T]) corrupt(strict bool) bool {
	c := u.ordered(u.root, nil, nil, strict)
	return c < 0 || uint(c) != u.sz
}

// dump writes the tree one node per line in pre-order, indented by depth.
func (u *base[T]) dump(heights bool) string {
	var b strings.Builder
	var visit func(*node[T], int)
	visit = func(n *node[T], d int) {
		if n == nil {
			return
		}
		b.WriteString(strings.Repeat("  ", d))
		if heights {
			fmt.Fprintf(&b, "%v (h=%d)\n", n.v, n.h)
		} else {
			fmt.Fprintf(&b, "%v\n", n.v)
		}
		visit(n.l, d+1)
		visit(n.r, d+1)
	}
	visit(u.root, 0)
	return b.String()
}

// lessOrdered is the natural order of T.
func lessOrdered[T constraints.Ordered](a, b T) bool {
	return a < b
}
