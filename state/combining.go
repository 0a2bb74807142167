package state

// CombineFn folds inputs of type I into accumulators of type A and extracts
// outputs of type O, aware of the processing key K that owns the state.
//
// MergeAccumulators must be commutative and associative: partial aggregates
// may be built in any grouping and folded together in any order (parallel
// shards, merged windows) without changing the result. The contract is not
// checked here; a violating fn silently produces order-dependent output.
type CombineFn[K, I, A, O any] interface {
	CreateAccumulator(key K) A
	AddInput(key K, accumulator A, input I) A
	MergeAccumulators(key K, accumulators []A) A
	ExtractOutput(key K, accumulator A) O
}

// CombineFuncs adapts plain functions to a CombineFn.
type CombineFuncs[K, I, A, O any] struct {
	Create  func(key K) A
	Add     func(key K, accumulator A, input I) A
	Merge   func(key K, accumulators []A) A
	Extract func(key K, accumulator A) O
}

func (fns CombineFuncs[K, I, A, O]) CreateAccumulator(key K) A {
	return fns.Create(key)
}

func (fns CombineFuncs[K, I, A, O]) AddInput(key K, accumulator A, input I) A {
	return fns.Add(key, accumulator, input)
}

func (fns CombineFuncs[K, I, A, O]) MergeAccumulators(key K, accumulators []A) A {
	return fns.Merge(key, accumulators)
}

func (fns CombineFuncs[K, I, A, O]) ExtractOutput(key K, accumulator A) O {
	return fns.Extract(key, accumulator)
}

// SimpleCombineFuncs adapts a key-unaware combine strategy to a CombineFn.
func SimpleCombineFuncs[K, I, A, O any](
	create func() A,
	add func(accumulator A, input I) A,
	merge func(accumulators []A) A,
	extract func(accumulator A) O,
) CombineFn[K, I, A, O] {
	return CombineFuncs[K, I, A, O]{
		Create:  func(K) A { return create() },
		Add:     func(_ K, accumulator A, input I) A { return add(accumulator, input) },
		Merge:   func(_ K, accumulators []A) A { return merge(accumulators) },
		Extract: func(_ K, accumulator A) O { return extract(accumulator) },
	}
}

// CombiningState folds inputs into a single accumulator with a CombineFn.
type CombiningState[K, I, A, O any] struct {
	key          K
	fn           CombineFn[K, I, A, O]
	accumulator  A
	cleared      bool
	serializer   Serializer[A]
	deserializer Deserializer[A]
}

func (s *CombiningState[K, I, A, O]) Add(input I) {
	s.cleared = false
	s.accumulator = s.fn.AddInput(s.key, s.accumulator, input)
}

// AddAccum folds an externally produced partial accumulator, e.g. one built
// by a parallel shard, into this cell.
func (s *CombiningState[K, I, A, O]) AddAccum(accumulator A) {
	s.cleared = false
	s.accumulator = s.fn.MergeAccumulators(s.key, []A{s.accumulator, accumulator})
}

// MergeAccumulators combines an arbitrary list of accumulators with this
// cell's key. It neither reads nor changes the cell's own accumulator; feed
// the result back through AddAccum if it belongs here.
func (s *CombiningState[K, I, A, O]) MergeAccumulators(accumulators []A) A {
	return s.fn.MergeAccumulators(s.key, accumulators)
}

// Accum returns the raw accumulator, for snapshotting or external merging.
func (s *CombiningState[K, I, A, O]) Accum() A {
	return s.accumulator
}

// Value extracts the current output. ExtractOutput runs on every call, so it
// must be side-effect free and cheap.
func (s *CombiningState[K, I, A, O]) Value() O {
	return s.fn.ExtractOutput(s.key, s.accumulator)
}

func (s *CombiningState[K, I, A, O]) Clear() {
	s.accumulator = s.fn.CreateAccumulator(s.key)
	s.cleared = true
}

func (s *CombiningState[K, I, A, O]) Empty() bool {
	return s.cleared
}
