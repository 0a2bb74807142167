package state

import (
	"github.com/RuiFG/streaming/streaming-state/log"
	"github.com/uber-go/tally/v4"
)

type options struct {
	logger log.Logger
	scope  tally.Scope
}

type WithOptions func(*options)

func WithLogger(logger log.Logger) WithOptions {
	return func(o *options) {
		o.logger = logger
	}
}

func WithScope(scope tally.Scope) WithOptions {
	return func(o *options) {
		o.scope = scope
	}
}

// Internals is the state entry point for one processing key. It owns every
// cell bound under the key and hands back the same cell for every access
// with an equal (namespace, descriptor key) pair.
//
// An Internals is exclusively owned by its key's processing context and is
// not safe for concurrent use; the host executor must guarantee at most one
// active invocation per key at a time.
type Internals[K any] struct {
	key    K
	table  *table
	logger log.Logger
	binds  map[Kind]tally.Counter
	drops  tally.Counter
}

// ForKey creates the state internals owning all state of key.
func ForKey[K any](key K, withOptionsFns ...WithOptions) *Internals[K] {
	o := &options{logger: log.Nop(), scope: tally.NoopScope}
	for _, withOptionsFn := range withOptionsFns {
		withOptionsFn(o)
	}
	binds := map[Kind]tally.Counter{}
	for _, kind := range []Kind{ValueKind, BagKind, CombiningKind, WatermarkKind} {
		binds[kind] = o.scope.Tagged(map[string]string{"kind": kind.String()}).Counter("state_binds")
	}
	return &Internals[K]{
		key:    key,
		table:  newTable(),
		logger: o.logger.Named("state"),
		binds:  binds,
		drops:  o.scope.Counter("state_table_drops"),
	}
}

func (in *Internals[K]) Key() K {
	return in.key
}

// Clear drops the whole table. Meant for full teardown at the end of the
// key's processing context or for test reset; afterwards every binding
// starts from a fresh cell.
func (in *Internals[K]) Clear() {
	in.table.Drop()
	in.drops.Inc(1)
	in.logger.Debugw("dropped state table", "key", in.key)
}

// Range calls fn for every bound cell until fn returns false. Diagnostic,
// e.g. for sweeping all cells with Empty after cleanup.
func (in *Internals[K]) Range(fn func(namespace Namespace, tag string, cell State) bool) {
	in.table.Range(func(key cellKey, cell State) bool {
		return fn(key.namespace, key.tag, cell)
	})
}

func (in *Internals[K]) bind(key cellKey, kind Kind, cell State) {
	in.table.Store(key, cell)
	in.binds[kind].Inc(1)
	in.logger.Debugw("bound state cell",
		"key", in.key, "namespace", key.namespace.Scope(), "tag", key.tag, "kind", kind.String())
}
