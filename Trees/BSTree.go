package Trees

import "golang.org/x/exp/constraints"

// BSTree is a binary search tree with no balancing. Inserting values in
// sorted order makes it a linked list, so D is O(n) in the worst case.
// It's kept as a baseline for AVLTree and shares its contract.
// Duplicates are allowed, see Tree.
// The zero value isn't usable, create it with NewBST or NewBSTFunc.
type BSTree[T any] struct {
	base[T]
}

// NewBST returns an empty BSTree ordered by <.
func NewBST[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{base[T]{less: lessOrdered[T]}}
}

// NewBSTFunc returns an empty BSTree ordered by less, see NewAVLFunc.
func NewBSTFunc[T any](less func(a, b T) bool) *BSTree[T] {
	return &BSTree[T]{base[T]{less: less}}
}

// Insert [Tree.Insert]. v becomes a new leaf.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if u.less(v, cur.v) {
			curPtr = &cur.l
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = &node[T]{v: v}
	u.sz++
}

// remove one node holding v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if v doesn't exist in the subtree.
// A node with one child is replaced by that child; a node with two children
// takes the value of its in-order successor, which is then unlinked.
// Time: O(D)
func (u *BSTree[T]) remove(curPtr **node[T], v T) bool {
	if cur := *curPtr; cur == nil {
		return false
	} else if u.less(v, cur.v) {
		return u.remove(&cur.l, v)
	} else if u.less(cur.v, v) {
		return u.remove(&cur.r, v)
	} else {
		if cur.l == nil {
			*curPtr = cur.r
		} else if cur.r == nil {
			*curPtr = cur.l
		} else {
			t := &cur.r
			for (*t).l != nil {
				t = &(*t).l
			}
			cur.v = (*t).v
			*t = (*t).r
		}
		return true
	}
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *BSTree[T]) Remove(v T) (bool, error) {
	if u.root == nil {
		return false, &EmptyTreeError{}
	}
	if u.remove(&u.root, v) {
		u.sz--
		return true, nil
	}
	return false, nil
}

// Height [Tree.Height]. BSTree doesn't store heights so it's computed. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() int {
	return measure(u.root)
}

// Corrupt [Tree.Corrupt]. Left subtrees must be strictly less. Recursive.
func (u *BSTree[T]) Corrupt() bool {
	return u.corrupt(true)
}

// String is the shape of the tree, one node per line.
func (u *BSTree[T]) String() string {
	return u.dump(false)
}

func measure[T any](n *node[T]) int {
	if n == nil {
		return EmptyHeight
	}
	return max(measure(n.l), measure(n.r)) + 1
}
