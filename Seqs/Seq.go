package Seqs

import "strconv"

// Collector is anything values can be appended to in order.
type Collector[T any] interface {
	Append(v T)
}

// Seq is an append-only, order preserving sequence.
type Seq[T any] interface {
	Collector[T]
	//Len is the number of appended values.
	Len() int
	//Get the i-th appended value. Fails with IndexOutOfRangeError if i isn't in [0, Len()).
	Get(i int) (T, error)
	//Values in the order they were appended. The returned slice isn't shared with the Seq.
	Values() []T
	Clear()
}

type IndexOutOfRangeError struct {
	Index, Len int
}

func (e *IndexOutOfRangeError) Error() string {
	return "Index out of range: " + strconv.Itoa(e.Index) + " not in [0, " + strconv.Itoa(e.Len) + ")."
}
