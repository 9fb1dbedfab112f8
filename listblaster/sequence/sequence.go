package sequence

import "container/list"

// Sequence is the minimal capability set the benchmark battery exercises.
// Both variants under comparison satisfy it, so every timed block runs
// through a single call site.
type Sequence interface {
	Append(v int)
	InsertAt(i int, v int)
	GetAt(i int) int
	RemoveAt(i int) int
	Len() int
}

// Factory hands out a fresh sequence for one timed block.
type Factory func() Sequence

// ArraySequence is the slice backed variant.
type ArraySequence struct {
	items []int
}

// NewArray : return new empty array sequence
func NewArray() *ArraySequence {
	return &ArraySequence{}
}

// Append : add value at the tail
func (s *ArraySequence) Append(v int) {
	s.items = append(s.items, v)
}

// InsertAt : shift the tail right and place value at index i
func (s *ArraySequence) InsertAt(i int, v int) {
	s.items = append(s.items, 0)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
}

// GetAt : read value at index i
func (s *ArraySequence) GetAt(i int) int {
	return s.items[i]
}

// RemoveAt : remove and return value at index i
func (s *ArraySequence) RemoveAt(i int) int {
	v := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return v
}

// Len : element count
func (s *ArraySequence) Len() int {
	return len(s.items)
}

// LinkedSequence is the node linked variant on top of container/list.
// Indexed access walks from the nearer end.
type LinkedSequence struct {
	l *list.List
}

// NewLinked : return new empty linked sequence
func NewLinked() *LinkedSequence {
	return &LinkedSequence{l: list.New()}
}

// Append : add value at the tail
func (s *LinkedSequence) Append(v int) {
	s.l.PushBack(v)
}

func (s *LinkedSequence) at(i int) *list.Element {
	if i < s.l.Len()/2 {
		e := s.l.Front()
		for ; i > 0; i-- {
			e = e.Next()
		}
		return e
	}
	e := s.l.Back()
	for i = s.l.Len() - 1 - i; i > 0; i-- {
		e = e.Prev()
	}
	return e
}

// InsertAt : place value before index i, appending when i is past the tail
func (s *LinkedSequence) InsertAt(i int, v int) {
	if i >= s.l.Len() {
		s.l.PushBack(v)
		return
	}
	s.l.InsertBefore(v, s.at(i))
}

// GetAt : read value at index i
func (s *LinkedSequence) GetAt(i int) int {
	return s.at(i).Value.(int)
}

// RemoveAt : remove and return value at index i
func (s *LinkedSequence) RemoveAt(i int) int {
	return s.l.Remove(s.at(i)).(int)
}

// Len : element count
func (s *LinkedSequence) Len() int {
	return s.l.Len()
}
