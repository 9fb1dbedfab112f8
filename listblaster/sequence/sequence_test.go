package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fill(s Sequence, n int) {
	for i := 0; i < n; i++ {
		s.Append(i)
	}
}

func drain(s Sequence) []int {
	out := make([]int, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		out = append(out, s.GetAt(i))
	}
	return out
}

func Test_append_count(t *testing.T) {
	const n = 1000
	for _, s := range []Sequence{NewArray(), NewLinked()} {
		fill(s, n)
		assert.Equal(t, n, s.Len(), "they should be equal")
		assert.Equal(t, 0, s.GetAt(0))
		assert.Equal(t, n-1, s.GetAt(n-1))
	}
}

func Test_implementations_agree(t *testing.T) {
	arr := NewArray()
	lnk := NewLinked()
	apply := func(op func(s Sequence)) {
		op(arr)
		op(lnk)
	}

	apply(func(s Sequence) { fill(s, 20) })
	apply(func(s Sequence) { s.InsertAt(0, 100) })
	apply(func(s Sequence) { s.InsertAt(s.Len()/2, 101) })
	apply(func(s Sequence) { s.InsertAt(s.Len(), 102) })
	apply(func(s Sequence) { s.RemoveAt(0) })
	apply(func(s Sequence) { s.RemoveAt(s.Len() - 1) })
	apply(func(s Sequence) { s.RemoveAt(s.Len() / 2) })

	assert.Equal(t, arr.Len(), lnk.Len())
	assert.Equal(t, drain(arr), drain(lnk), "they should be equal")
}

func Test_insert_at_front(t *testing.T) {
	for _, s := range []Sequence{NewArray(), NewLinked()} {
		fill(s, 3)
		s.InsertAt(0, 99)
		assert.Equal(t, []int{99, 0, 1, 2}, drain(s))
	}
}

func Test_insert_into_empty(t *testing.T) {
	for _, s := range []Sequence{NewArray(), NewLinked()} {
		s.InsertAt(0, 7)
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, 7, s.GetAt(0))
	}
}

func Test_remove_returns_value(t *testing.T) {
	for _, s := range []Sequence{NewArray(), NewLinked()} {
		fill(s, 5)
		assert.Equal(t, 0, s.RemoveAt(0))
		assert.Equal(t, 4, s.RemoveAt(s.Len()-1))
		assert.Equal(t, 2, s.RemoveAt(1))
		assert.Equal(t, []int{1, 3}, drain(s))
	}
}

func Test_linked_walks_from_nearer_end(t *testing.T) {
	s := NewLinked()
	fill(s, 101)
	// both halves reachable
	assert.Equal(t, 2, s.GetAt(2))
	assert.Equal(t, 98, s.GetAt(98))
	assert.Equal(t, 50, s.GetAt(50))
	assert.Equal(t, 100, s.GetAt(100))
}
