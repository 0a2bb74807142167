package state

// Descriptors name one piece of state within a namespace and carry whatever
// the cell needs at bind time. The serializer pair mirrors what durable
// backends take and is ignored by this in-memory implementation.
//
// The descriptor Key identifies the state: binding two descriptors with the
// same Key under the same namespace yields the same cell, and their declared
// kinds and types must agree.

type ValueDescriptor[T any] struct {
	Key          string
	Serializer   Serializer[T]
	Deserializer Deserializer[T]
}

type BagDescriptor[T any] struct {
	Key          string
	Serializer   Serializer[T]
	Deserializer Deserializer[T]
}

type CombiningDescriptor[K, I, A, O any] struct {
	Key string
	//accumulator codec
	Serializer   Serializer[A]
	Deserializer Deserializer[A]
	Fn           CombineFn[K, I, A, O]
}

type WatermarkDescriptor struct {
	Key          string
	OutputTimeFn OutputTimeFn
}
