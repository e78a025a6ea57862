package Seqs

// ArraySeq is a Seq backed by a growable slice.
// The zero value is an empty ArraySeq ready to use.
type ArraySeq[T any] struct {
	content []T
}

// NewArraySeq with room for hint values before growing.
func NewArraySeq[T any](hint uint) *ArraySeq[T] {
	return &ArraySeq[T]{make([]T, 0, hint)}
}

func (u *ArraySeq[T]) Append(v T) {
	u.content = append(u.content, v)
}

func (u *ArraySeq[T]) Len() int {
	return len(u.content)
}

func (u *ArraySeq[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(u.content) {
		return *new(T), &IndexOutOfRangeError{i, len(u.content)}
	}
	return u.content[i], nil
}

// Values returns a copy of the content.
func (u *ArraySeq[T]) Values() []T {
	return append(make([]T, 0, len(u.content)), u.content...)
}

// Detach hands the underlying slice out without copying and leaves u empty.
func (u *ArraySeq[T]) Detach() []T {
	r := u.content
	u.content = nil
	return r
}

// Clear the content but keep the capacity.
func (u *ArraySeq[T]) Clear() {
	clear(u.content)
	u.content = u.content[:0]
}

// Shrink the capacity to fit the length.
func (u *ArraySeq[T]) Shrink() {
	u.content = append(make([]T, 0, len(u.content)), u.content...)
}
