// Package state holds the intermediate computation state a windowed
// stream/batch job keeps between invocations of user logic, scoped to a
// single processing key. Four cell kinds are supported: a single value, an
// append-only bag, a combining accumulator and a watermark hold. Cells are
// addressed by an opaque (namespace, key) pair and bound lazily on first
// access.
//
// All state lives in memory only. Descriptors carry a serializer pair so
// they keep the same shape durable backends need, but nothing here encodes
// or persists anything.
package state

type Kind uint8

const (
	ValueKind Kind = iota
	BagKind
	CombiningKind
	WatermarkKind
)

func (k Kind) String() string {
	switch k {
	case ValueKind:
		return "value"
	case BagKind:
		return "bag"
	case CombiningKind:
		return "combining"
	case WatermarkKind:
		return "watermark"
	default:
		return "unknown"
	}
}

// State is implemented by every cell held in a state table.
//
// Clear resets a cell to its initial empty form but never removes it from
// its table: other users may already have a handle on the cell, so the
// instance stays registered and usable until the whole table is dropped.
type State interface {
	Clear()
	// Empty reports whether the cell holds nothing since its creation or
	// last Clear. Diagnostic only, meant for test assertions that verify
	// complete cleanup.
	Empty() bool
}

type Serializer[T any] func(T) ([]byte, error)

type Deserializer[T any] func([]byte) (T, error)
