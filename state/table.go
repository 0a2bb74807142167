package state

type cellKey struct {
	namespace Namespace
	tag       string
}

// table maps (namespace, descriptor key) to the cell bound for it. Cells are
// created on first access and live until the whole table is dropped; Clear
// on a cell resets it in place, it never leaves the table. The table does no
// locking: the owning key's processing context serializes all access.
type table struct {
	cells map[cellKey]State
}

func newTable() *table {
	return &table{cells: map[cellKey]State{}}
}

func (t *table) Load(key cellKey) (State, bool) {
	if load, ok := t.cells[key]; !ok {
		return nil, ok
	} else {
		return load, ok
	}
}

func (t *table) Store(key cellKey, cell State) {
	t.cells[key] = cell
}

func (t *table) Range(fn func(key cellKey, cell State) bool) {
	for key, cell := range t.cells {
		if !fn(key, cell) {
			return
		}
	}
}

func (t *table) Drop() {
	t.cells = map[cellKey]State{}
}
