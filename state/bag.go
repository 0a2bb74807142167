package state

// BagState holds an append-only ordered collection.
type BagState[T any] struct {
	contents     []T
	serializer   Serializer[T]
	deserializer Deserializer[T]
}

func (s *BagState[T]) Add(value T) {
	s.contents = append(s.contents, value)
}

// Read returns every element added since the last Clear, in insertion order.
// The returned slice stays valid and unchanged however the cell is mutated
// afterwards, so a reader may keep it past the end of the scope that
// produced it.
func (s *BagState[T]) Read() []T {
	return s.contents
}

func (s *BagState[T]) Clear() {
	// Swap in a fresh backing slice instead of truncating the current one:
	// a reader may still hold a slice from Read whose window was already
	// cleared while the bundle that read it is in flight.
	s.contents = nil
}

func (s *BagState[T]) Empty() bool {
	return len(s.contents) == 0
}
