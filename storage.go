package roster

var (
	_ Storage[int] = &VecStorage[int]{}
	_ AnyStorage   = &VecStorage[int]{}
	_ Storage[int] = &MapStorage[int]{}
	_ AnyStorage   = &MapStorage[int]{}
)

// VecStorage is the baseline dense storage: values live in an index-addressed
// slice with explicit occupancy flags. Removal leaves a zeroed tombstone;
// slots are never compacted.
type VecStorage[T any] struct {
	values   []T
	occupied []bool
	count    int
}

func NewVecStorage[T any]() *VecStorage[T] {
	return &VecStorage[T]{
		values:   make([]T, 0, Config.initialEntityCapacity),
		occupied: make([]bool, 0, Config.initialEntityCapacity),
	}
}

// Insert sets or overwrites the value at idx, growing capacity to cover new
// indices. New slots between the old length and idx default to absent.
func (s *VecStorage[T]) Insert(idx uint32, value T) {
	s.grow(int(idx) + 1)
	if !s.occupied[idx] {
		s.occupied[idx] = true
		s.count++
	}
	s.values[idx] = value
}

func (s *VecStorage[T]) Get(idx uint32) (*T, bool) {
	if int(idx) >= len(s.values) || !s.occupied[idx] {
		return nil, false
	}
	return &s.values[idx], true
}

// Remove clears the slot to absent and returns the previous value if any.
func (s *VecStorage[T]) Remove(idx uint32) (T, bool) {
	var zero T
	if int(idx) >= len(s.values) || !s.occupied[idx] {
		return zero, false
	}
	prev := s.values[idx]
	s.values[idx] = zero
	s.occupied[idx] = false
	s.count--
	return prev, true
}

func (s *VecStorage[T]) Contains(idx uint32) bool {
	return int(idx) < len(s.values) && s.occupied[idx]
}

func (s *VecStorage[T]) Discard(idx uint32) bool {
	_, ok := s.Remove(idx)
	return ok
}

func (s *VecStorage[T]) Clear() {
	s.values = s.values[:0]
	s.occupied = s.occupied[:0]
	s.count = 0
}

// Len returns the number of present values, not the backing capacity.
func (s *VecStorage[T]) Len() int {
	return s.count
}

func (s *VecStorage[T]) grow(needed int) {
	if needed <= len(s.values) {
		return
	}
	if cap(s.values) < needed {
		// Grow by doubling or to needed, whichever is larger
		newCap := max(needed, 2*cap(s.values))
		newValues := make([]T, len(s.values), newCap)
		copy(newValues, s.values)
		s.values = newValues
		newOccupied := make([]bool, len(s.occupied), newCap)
		copy(newOccupied, s.occupied)
		s.occupied = newOccupied
	}
	s.values = s.values[:needed]
	s.occupied = s.occupied[:needed]
}

// MapStorage is the sparse alternative for rarely-present kinds: values live
// in a map keyed by entity index, so absent indices cost nothing. Values are
// boxed so Get hands out stable pointers for in-place mutation.
type MapStorage[T any] struct {
	values map[uint32]*T
}

func NewMapStorage[T any]() *MapStorage[T] {
	return &MapStorage[T]{values: make(map[uint32]*T)}
}

func (s *MapStorage[T]) Insert(idx uint32, value T) {
	s.values[idx] = &value
}

func (s *MapStorage[T]) Get(idx uint32) (*T, bool) {
	value, ok := s.values[idx]
	return value, ok
}

func (s *MapStorage[T]) Remove(idx uint32) (T, bool) {
	var zero T
	value, ok := s.values[idx]
	if !ok {
		return zero, false
	}
	delete(s.values, idx)
	return *value, true
}

func (s *MapStorage[T]) Contains(idx uint32) bool {
	_, ok := s.values[idx]
	return ok
}

func (s *MapStorage[T]) Discard(idx uint32) bool {
	_, ok := s.Remove(idx)
	return ok
}

func (s *MapStorage[T]) Clear() {
	s.values = make(map[uint32]*T)
}

func (s *MapStorage[T]) Len() int {
	return len(s.values)
}
