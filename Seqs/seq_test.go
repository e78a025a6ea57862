package Seqs

import (
	"errors"
	"testing"
)

func testSeq(t *testing.T, s Seq[int]) {
	t.Helper()
	if s.Len() != 0 {
		t.Errorf("new seq has length %d", s.Len())
	}
	if _, e := s.Get(0); e == nil {
		t.Error("empty seq allows Get(0)")
	}
	for i := 0; i < 100; i++ {
		s.Append(i * 3)
	}
	if s.Len() != 100 {
		t.Errorf("seq length is %d, want 100", s.Len())
	}
	for i := 0; i < 100; i++ {
		if v, e := s.Get(i); e != nil || v != i*3 {
			t.Errorf("Get(%d)=(%d, %v), want %d", i, v, e, i*3)
		}
	}
	for _, i := range []int{-1, 100, 1 << 20} {
		_, e := s.Get(i)
		var ie *IndexOutOfRangeError
		if !errors.As(e, &ie) {
			t.Fatalf("Get(%d) gives %v, want IndexOutOfRangeError", i, e)
		}
		if ie.Index != i || ie.Len != 100 {
			t.Errorf("wrong error content %+v", *ie)
		}
	}
	vs := s.Values()
	for i, v := range vs {
		if v != i*3 {
			t.Errorf("Values()[%d]=%d, want %d", i, v, i*3)
		}
	}
	vs[0] = -1
	if v, _ := s.Get(0); v != 0 {
		t.Error("Values shares memory with the seq")
	}
	s.Clear()
	if s.Len() != 0 || len(s.Values()) != 0 {
		t.Error("seq not empty after Clear")
	}
	s.Append(7)
	if v, e := s.Get(0); e != nil || v != 7 {
		t.Errorf("Get(0) after Clear=(%d, %v)", v, e)
	}
}

func TestArraySeq(t *testing.T) {
	testSeq(t, NewArraySeq[int](4))
	testSeq(t, new(ArraySeq[int]))
}

func TestListSeq(t *testing.T) {
	testSeq(t, NewListSeq[int]())
}

func TestArraySeq_Detach(t *testing.T) {
	s := NewArraySeq[string](2)
	s.Append("a")
	s.Append("b")
	s.Append("c")
	d := s.Detach()
	if len(d) != 3 || d[0] != "a" || d[2] != "c" {
		t.Errorf("wrong detached content %v", d)
	}
	if s.Len() != 0 {
		t.Error("seq not empty after Detach")
	}
	s.Shrink()
	s.Append("d")
	if d[0] != "a" {
		t.Error("detached slice modified by later Append")
	}
}

func TestListSeq_List(t *testing.T) {
	s := NewListSeq[int]()
	s.Append(1)
	s.Append(2)
	if l := s.List(); l.Size() != 2 {
		t.Errorf("backing list size is %d, want 2", l.Size())
	}
}
