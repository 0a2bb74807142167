package state

// ValueState holds a single overwritable value.
type ValueState[T any] struct {
	v            T
	cleared      bool
	serializer   Serializer[T]
	deserializer Deserializer[T]
}

// Value returns the stored value, or false if nothing was stored since
// creation or the last Clear. The value is returned live, not copied;
// treat it as read-only unless it is written back with Update.
func (s *ValueState[T]) Value() (T, bool) {
	return s.v, !s.cleared
}

func (s *ValueState[T]) Update(value T) {
	s.v = value
	s.cleared = false
}

func (s *ValueState[T]) Clear() {
	var ni T
	s.v = ni
	s.cleared = true
}

func (s *ValueState[T]) Empty() bool {
	return s.cleared
}
