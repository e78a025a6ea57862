package Trees

import (
	"github.com/g-m-twostay/go-trees/Seqs"
	"strconv"
)

// Tree is a binary search tree holding values of type T. Equal values are
// kept as separate nodes, so a Tree is a multiset; ties are placed in the
// right subtree. Receivers that has a bool as a second return value indicates
// whether the first return value is defined.
// Methods implemented recursively are noted, otherwise they are iterative.
// A Tree isn't safe for concurrent use.
type Tree[T any] interface {
	//Insert v to the Tree.
	Insert(v T)
	//Remove one occurrence of v from the Tree. Returns true if a node is
	//removed, false if v isn't in the Tree. Fails with EmptyTreeError when
	//the Tree is empty.
	Remove(v T) (bool, error)
	//Contains v.
	Contains(v T) bool
	//Empty returns whether Size()==0.
	Empty() bool
	//Size of the tree, counting duplicates.
	Size() uint
	//Height of the root, EmptyHeight if the tree is empty.
	Height() int
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//PreOrder returns all values in pre-order in a new slice.
	PreOrder() []T
	//InOrder returns all values in in-order in a new slice. It's non-decreasing.
	InOrder() []T
	//PostOrder returns all values in post-order in a new slice.
	PostOrder() []T
	//PreOrderTo appends all values in pre-order to c.
	PreOrderTo(c Seqs.Collector[T])
	//InOrderTo appends all values in in-order to c.
	InOrderTo(c Seqs.Collector[T])
	//PostOrderTo appends all values in post-order to c.
	PostOrderTo(c Seqs.Collector[T])
	//Clear the tree.
	Clear()
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

type EmptyTreeError struct {
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: cannot Remove."
}

// InvalidSliceError is the panic value of the Build functions when the given slice isn't strictly increasing.
type InvalidSliceError[T any] struct {
	Index  int
	Prev   T
	Actual T
}

func (e InvalidSliceError[T]) Error() string {
	return "Slice isn't strictly increasing at index " + strconv.Itoa(e.Index) + "."
}

var (
	_ Tree[int] = (*AVLTree[int])(nil)
	_ Tree[int] = (*BSTree[int])(nil)
)
