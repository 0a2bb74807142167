package state

import "strconv"

// Namespace groups the state of one key into scopes, typically one per
// window. Implementations must be comparable value types: two namespaces
// address the same state iff they are equal, regardless of how many times
// they were constructed.
type Namespace interface {
	Scope() string
}

type globalNamespace struct{}

func (globalNamespace) Scope() string { return "global" }

// GlobalNamespace returns the namespace for state not scoped to any window.
func GlobalNamespace() Namespace {
	return globalNamespace{}
}

type windowNamespace struct {
	startTimestamp int64
	endTimestamp   int64
}

func (n windowNamespace) Scope() string {
	return "window/" + strconv.FormatInt(n.startTimestamp, 10) +
		"-" + strconv.FormatInt(n.endTimestamp, 10)
}

// WindowNamespace returns the namespace for state scoped to the window
// [startTimestamp, endTimestamp).
func WindowNamespace(startTimestamp int64, endTimestamp int64) Namespace {
	return windowNamespace{startTimestamp: startTimestamp, endTimestamp: endTimestamp}
}
