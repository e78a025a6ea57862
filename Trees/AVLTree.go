package Trees

import "golang.org/x/exp/constraints"

// AVLTree is a binary search tree that keeps, at every node, the heights of
// the two subtrees differing by at most 1. It maintains balance through
// rotations by checking the heights of subtrees, which every node stores.
// The worst case height of the tree is less than f(n)=1.44*log2(n+2)-0.328,
// so the height D of the tree is of O(log n).
// Duplicates are allowed, see Tree.
// The zero value isn't usable, create it with NewAVL, NewAVLFunc or BuildAVL.
type AVLTree[T any] struct {
	base[T]
}

// NewAVL returns an empty AVLTree ordered by <.
func NewAVL[T constraints.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{base[T]{less: lessOrdered[T]}}
}

// NewAVLFunc returns an empty AVLTree ordered by less, which must be a strict
// weak order. Two values are equal when neither is less than the other.
func NewAVLFunc[T any](less func(a, b T) bool) *AVLTree[T] {
	return &AVLTree[T]{base[T]{less: less}}
}

// BuildAVL builds a perfectly balanced AVLTree from the given slice. This is faster than
// repeatedly calling Insert.
// The given slice must be strictly increasing.
// If safe==true, this function will check if the condition is met and panic with InvalidSliceError
// if it's broken. Otherwise, it's up to the user to ensure the condition is met.
// Time: O(n).
func BuildAVL[T constraints.Ordered](sli []T, safe bool) *AVLTree[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if !(sli[i-1] < sli[i]) {
				panic(InvalidSliceError[T]{i, sli[i-1], sli[i]})
			}
		}
	}
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &node[T]{v: s[mid], l: build(s[:mid]), r: build(s[mid+1:])}
		n.fix()
		return n
	}
	return &AVLTree[T]{base[T]{build(sli), uint(len(sli)), lessOrdered[T]}}
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. On the way back up, the height of every node on the path
// is recomputed; the first node found unbalanced is rotated:
// left-left and right-right by a single rotation, left-right and right-left
// by a double rotation. Which case applies is decided by comparing v with the
// child on the heavy side.
func (u *AVLTree[T]) insert(curPtr **node[T], v T) {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T]{v: v}
		return
	}
	if u.less(v, cur.v) {
		u.insert(&cur.l, v)
		if cur.balance() > 1 {
			if u.less(v, cur.l.v) {
				rotateRight(curPtr)
			} else {
				rotateLeft(&cur.l)
				rotateRight(curPtr)
			}
			return
		}
	} else {
		u.insert(&cur.r, v)
		if cur.balance() < -1 {
			if u.less(v, cur.r.v) {
				rotateRight(&cur.r)
				rotateLeft(curPtr)
			} else {
				rotateLeft(curPtr)
			}
			return
		}
	}
	cur.fix()
}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) {
	u.insert(&u.root, v)
	u.sz++
}

// rebalance the subtree rooting at *curPtr after one of its children lost
// height. Unlike insert, the rotation case is decided by the balance of the
// heavy child, since there's no inserted value to compare with.
func rebalance[T any](curPtr **node[T]) {
	cur := *curPtr
	if b := cur.balance(); b > 1 {
		if cur.l.balance() < 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(curPtr)
	} else if b < -1 {
		if cur.r.balance() > 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(curPtr)
	} else {
		cur.fix()
	}
}

// removeMin unlinks the leftmost node of the non-empty subtree *curPtr and
// returns its value, rebalancing on the way up. Recursive.
func removeMin[T any](curPtr **node[T]) T {
	cur := *curPtr
	if cur.l == nil {
		*curPtr = cur.r
		return cur.v
	}
	v := removeMin(&cur.l)
	rebalance(curPtr)
	return v
}

// remove one node holding v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if v doesn't exist in the subtree.
// A node with two children takes the value of its in-order successor, which is
// then unlinked from the right subtree. Every node on the path is rebalanced, so
// the height stays O(log n) after removals.
// Time: O(D)
func (u *AVLTree[T]) remove(curPtr **node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	deleted := false
	if u.less(v, cur.v) {
		deleted = u.remove(&cur.l, v)
	} else if u.less(cur.v, v) {
		deleted = u.remove(&cur.r, v)
	} else {
		deleted = true
		if cur.l == nil {
			*curPtr = cur.r
			return true
		} else if cur.r == nil {
			*curPtr = cur.l
			return true
		}
		cur.v = removeMin(&cur.r)
	}
	if deleted {
		rebalance(curPtr)
	}
	return deleted
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *AVLTree[T]) Remove(v T) (bool, error) {
	if u.root == nil {
		return false, &EmptyTreeError{}
	}
	if u.remove(&u.root, v) {
		u.sz--
		return true, nil
	}
	return false, nil
}

// Height [Tree.Height]. It's stored at the root.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Height() int {
	return height(u.root)
}

// Corrupt [Tree.Corrupt]. Besides the ordering and Size, it checks that every
// stored height is correct. A rotation can lift a value above an equal one, so
// a left subtree may hold values equal to its parent. Recursive.
func (u *AVLTree[T]) Corrupt() bool {
	return u.corrupt(false) || !heightsCorrect(u.root)
}

// Balanced returns whether every node has subtrees whose heights differ by at most 1.
// The heights are computed, not read from the nodes. Recursive.
func (u *AVLTree[T]) Balanced() bool {
	return depth(u.root) != unbalanced
}

// String is the shape of the tree, one node per line with its height.
func (u *AVLTree[T]) String() string {
	return u.dump(true)
}

func heightsCorrect[T any](n *node[T]) bool {
	if n == nil {
		return true
	}
	return heightsCorrect(n.l) && heightsCorrect(n.r) && n.h == max(height(n.l), height(n.r))+1
}

const unbalanced = -2

// depth computes the height of the subtree rooting at n, or unbalanced if some
// node in it isn't AVL balanced. Recursive.
func depth[T any](n *node[T]) int {
	if n == nil {
		return EmptyHeight
	}
	l := depth(n.l)
	if l == unbalanced {
		return unbalanced
	}
	r := depth(n.r)
	if r == unbalanced || l-r > 1 || r-l > 1 {
		return unbalanced
	}
	return max(l, r) + 1
}
