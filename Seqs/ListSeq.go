package Seqs

import "github.com/emirpasic/gods/lists/arraylist"

// ListSeq is a Seq backed by a gods arraylist. Values are boxed on Append and
// asserted back to T on the way out.
type ListSeq[T any] struct {
	l *arraylist.List
}

func NewListSeq[T any]() *ListSeq[T] {
	return &ListSeq[T]{arraylist.New()}
}

func (u *ListSeq[T]) Append(v T) {
	u.l.Add(v)
}

func (u *ListSeq[T]) Len() int {
	return u.l.Size()
}

func (u *ListSeq[T]) Get(i int) (T, error) {
	if v, ok := u.l.Get(i); ok {
		return v.(T), nil
	}
	return *new(T), &IndexOutOfRangeError{i, u.l.Size()}
}

func (u *ListSeq[T]) Values() []T {
	r := make([]T, 0, u.l.Size())
	for it := u.l.Iterator(); it.Next(); {
		r = append(r, it.Value().(T))
	}
	return r
}

func (u *ListSeq[T]) Clear() {
	u.l.Clear()
}

// List exposes the backing gods list, for use with the rest of gods.
func (u *ListSeq[T]) List() *arraylist.List {
	return u.l
}
