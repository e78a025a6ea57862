package Trees

// EmptyHeight is the height of an empty tree, and of an absent child.
const EmptyHeight = -1

// A node in the trees.
// h is the height of the subtree rooting at this node, a leaf has h=0.
// Only AVLTree maintains h; it's always 0 in a BSTree.
type node[T any] struct {
	v    T
	l, r *node[T]
	h    int
}

// height of the subtree rooting at n. nil is EmptyHeight.
func height[T any](n *node[T]) int {
	if n == nil {
		return EmptyHeight
	}
	return n.h
}

// fix recomputes n.h from the heights of its children, which must be correct.
func (n *node[T]) fix() {
	n.h = max(height(n.l), height(n.r)) + 1
}

// balance is height(l)-height(r). Positive means left heavy.
func (n *node[T]) balance() int {
	return height(n.l) - height(n.r)
}

// rotateLeft lifts the right child of *n to where *n was. n is passed by reference in order
// to modify its content. The heights of both nodes are recomputed after relinking.
//
//	  n              rc
//	 / \            /  \
//	a   rc   ->    n    c
//	   /  \       / \
//	  b    c     a   b
//
// Time: O(1); Space: O(1)
func rotateLeft[T any](n **node[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.fix()
	rc.fix()
	*n = rc
}

// rotateRight lifts the left child of *n to where *n was. n is passed by reference in order
// to modify its content. The heights of both nodes are recomputed after relinking.
// Time: O(1); Space: O(1)
func rotateRight[T any](n **node[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.fix()
	lc.fix()
	*n = lc
}
