package option

import "github.com/sasha-s/go-deadlock"

// Shadow is a mutex-guarded parallel copy of every shadowed option's
// current value (§3 "Shadow", §4.4). It exists so Cache.Refresh can
// give worker goroutines a consistent snapshot without taking any lock
// on the controller's own live storage (there isn't one — the
// controller is the sole writer of live Cells per §5).
//
// The mutex is github.com/sasha-s/go-deadlock rather than sync.Mutex:
// this core's locking discipline (§5 "the setter pipeline holds the
// shadow lock only for the slot-copy phase") is a documented invariant
// worth catching a violation of under test, not just in production.
type Shadow struct {
	mu    deadlock.Mutex
	root  *Root
	cells []Cell
}

// CreateShadow allocates the shared buffer and assigns a shadow slot,
// in declaration order, to every storage-bearing entry; it then seeds
// each slot from the corresponding live value (§4.4). Calling it twice
// is a no-op beyond reassigning the back-pointer.
func (r *Root) CreateShadow() *Shadow {
	s := &Shadow{root: r}
	for _, e := range r.entries {
		if !e.HasStorage() {
			continue
		}
		e.shadowIdx = len(s.cells)
		s.cells = append(s.cells, Cell{})
	}
	for _, e := range r.entries {
		if e.shadowIdx < 0 {
			continue
		}
		e.Def.Type.Copy(&s.cells[e.shadowIdx], e.live)
	}
	r.shadow = s
	return s
}

// Shadow returns the root's shadow, or nil if CreateShadow was never
// called. SPEC_FULL models the original's process-wide shadow handle
// as explicit dependency injection: a host that wants process-wide
// discovery stores this pointer itself (§9 "Global state").
func (r *Root) Shadow() *Shadow { return r.shadow }

// store copies src into the shadow slot idx under the shadow lock
// (§4.3.2 step a).
func (s *Shadow) store(idx int, typ Type, src *Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	typ.Copy(&s.cells[idx], src)
}
