// Package grid binds long-lived flip states to a bounded pool of hosts.
package grid

import (
	"fmt"

	"github.com/five82/flipgrid/internal/flip"
)

// PrepareFunc paints the content of the item at position onto h before the
// state is bound to it.
type PrepareFunc func(position int, h flip.Host)

// Adapter is the recycling adapter between a list of states and the hosts a
// container hands it. Bind and unbind calls may arrive in any order; the
// adapter keeps at most one host per state and one state per host.
type Adapter struct {
	states  []*flip.State
	owners  map[flip.Host]int
	prepare PrepareFunc
}

// NewAdapter returns an adapter over states.
func NewAdapter(states []*flip.State, prepare PrepareFunc) *Adapter {
	a := &Adapter{owners: make(map[flip.Host]int), prepare: prepare}
	a.states = append(a.states, states...)
	return a
}

// Len returns the number of items.
func (a *Adapter) Len() int {
	return len(a.states)
}

// State returns the state at position. It panics when position is out of
// range; callers own the bounds.
func (a *Adapter) State(position int) *flip.State {
	a.mustPosition(position)
	return a.states[position]
}

// SetStates replaces the item list, detaching every host first.
func (a *Adapter) SetStates(states []*flip.State) {
	for h := range a.owners {
		a.Recycle(h)
	}
	a.states = append(a.states[:0:0], states...)
}

// Owner returns the position h is bound to.
func (a *Adapter) Owner(h flip.Host) (int, bool) {
	pos, ok := a.owners[h]
	return pos, ok
}

// Prepare binds h to the item at position. A repeated request for a pair
// that is already bound is a layout probe: it is answered without touching
// any state and reports false.
func (a *Adapter) Prepare(position int, h flip.Host) bool {
	a.mustPosition(position)
	st := a.states[position]
	if owner, ok := a.owners[h]; ok && owner == position && st.Host() == h {
		return false
	}

	a.Recycle(h)
	if prev := st.Host(); prev != nil {
		delete(a.owners, prev)
		st.Unbind()
	}
	if a.prepare != nil {
		a.prepare(position, h)
	}
	st.Bind(h)
	a.owners[h] = position
	return true
}

// Recycle detaches h from its item, as when the container moves it to the
// scrap heap. Unknown hosts are ignored.
func (a *Adapter) Recycle(h flip.Host) {
	pos, ok := a.owners[h]
	if !ok {
		return
	}
	delete(a.owners, h)
	if pos < len(a.states) && a.states[pos].Host() == h {
		a.states[pos].Unbind()
	}
}

func (a *Adapter) mustPosition(position int) {
	if position < 0 || position >= len(a.states) {
		panic(fmt.Sprintf("grid: position %d out of range [0,%d)", position, len(a.states)))
	}
}
