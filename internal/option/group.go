package option

import "sync/atomic"

// groupIndex identifies a Group within a Root's group array. Index 0 is
// the synthetic top-level group; -1 denotes "no parent" (the root's own
// parent slot).
type groupIndex int

const noGroup groupIndex = -1

// Group is a runtime node owning one sub-group's worth of live storage
// and one monotonic version counter (§3 "Group", I3). The version
// counter is bumped by the controller alone (fetch-add) and read by
// observers via atomic loads — see propagate.go and cache.go.
type Group struct {
	parent groupIndex
	name   string // fully qualified name of the entry that owns this group; "" for group 0

	version atomic.Int64

	// entries lists the indices, into Root.entries, of every
	// config-option whose GroupIndex() == this group's index. Populated by
	// the schema builder in declaration order.
	entries []int
}

// Version returns the group's current version counter via a relaxed
// atomic load. This is the unlocked fast path referenced in §4.4/§5: it
// is safe to read concurrently with the controller's fetch-add, but a
// reader needing the data behind the version (not just the number) must
// still go through Cache.Refresh, which re-reads under the shadow lock.
func (g *Group) Version() int64 { return g.version.Load() }

func (g *Group) bump() int64 { return g.version.Add(1) }
