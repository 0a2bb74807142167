package state

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrStateTypeMismatch = fmt.Errorf("state type error")
)

// The accessors below are the binder: one per cell kind, resolved at the
// call site by the descriptor's static type. On first access for a
// (namespace, descriptor key) pair the matching cell is constructed and
// cached; later accesses return the identical instance. A cached cell of
// another kind or element type yields ErrStateTypeMismatch.

func Value[K, T any](in *Internals[K], namespace Namespace, descriptor ValueDescriptor[T]) (*ValueState[T], error) {
	key := cellKey{namespace: namespace, tag: descriptor.Key}
	if load, ok := in.table.Load(key); ok {
		if value, ok := load.(*ValueState[T]); ok {
			return value, nil
		}
		return nil, mismatch(key, ValueKind, load)
	}
	value := &ValueState[T]{
		cleared:      true,
		serializer:   descriptor.Serializer,
		deserializer: descriptor.Deserializer,
	}
	in.bind(key, ValueKind, value)
	return value, nil
}

func Bag[K, T any](in *Internals[K], namespace Namespace, descriptor BagDescriptor[T]) (*BagState[T], error) {
	key := cellKey{namespace: namespace, tag: descriptor.Key}
	if load, ok := in.table.Load(key); ok {
		if bag, ok := load.(*BagState[T]); ok {
			return bag, nil
		}
		return nil, mismatch(key, BagKind, load)
	}
	bag := &BagState[T]{
		serializer:   descriptor.Serializer,
		deserializer: descriptor.Deserializer,
	}
	in.bind(key, BagKind, bag)
	return bag, nil
}

func Combining[K, I, A, O any](in *Internals[K], namespace Namespace, descriptor CombiningDescriptor[K, I, A, O]) (*CombiningState[K, I, A, O], error) {
	if descriptor.Fn == nil {
		return nil, errors.Errorf("combining state %s requires a combine fn", descriptor.Key)
	}
	key := cellKey{namespace: namespace, tag: descriptor.Key}
	if load, ok := in.table.Load(key); ok {
		if combining, ok := load.(*CombiningState[K, I, A, O]); ok {
			return combining, nil
		}
		return nil, mismatch(key, CombiningKind, load)
	}
	combining := &CombiningState[K, I, A, O]{
		key:          in.key,
		fn:           descriptor.Fn,
		accumulator:  descriptor.Fn.CreateAccumulator(in.key),
		cleared:      true,
		serializer:   descriptor.Serializer,
		deserializer: descriptor.Deserializer,
	}
	in.bind(key, CombiningKind, combining)
	return combining, nil
}

func Watermark[K any](in *Internals[K], namespace Namespace, descriptor WatermarkDescriptor) (*WatermarkState, error) {
	if descriptor.OutputTimeFn == nil {
		return nil, errors.Errorf("watermark state %s requires an output time fn", descriptor.Key)
	}
	key := cellKey{namespace: namespace, tag: descriptor.Key}
	if load, ok := in.table.Load(key); ok {
		if watermark, ok := load.(*WatermarkState); ok {
			return watermark, nil
		}
		return nil, mismatch(key, WatermarkKind, load)
	}
	watermark := &WatermarkState{outputTimeFn: descriptor.OutputTimeFn}
	in.bind(key, WatermarkKind, watermark)
	return watermark, nil
}

func mismatch(key cellKey, kind Kind, cell State) error {
	return errors.WithMessagef(ErrStateTypeMismatch,
		"%s state %s in namespace %s already bound as %T", kind, key.tag, key.namespace.Scope(), cell)
}
