package option

// Cache is a per-observer snapshot bound to one group (§3 "Cache",
// §4.4). It owns a freshly built duplicate schema restricted to the
// chosen group and its descendants — rather than building the full
// schema and pruning afterward, CacheAlloc re-runs the schema builder
// directly over the chosen subtree's Defs, which is equivalent (same
// registry shape, same declaration order) and avoids ever allocating
// storage this observer will throw away.
type Cache struct {
	sub         *Root
	source      *Root
	sourceGroup groupIndex
	lastVersion int64

	// mapping[i] is the index, into source.entries, of the entry that
	// cache.sub.entries[i] mirrors. Built once at allocation time.
	mapping []int
}

// CacheAlloc binds a new Cache to groupName's sub-group ("" selects the
// top-level group, i.e. the whole schema). groupName must name an
// entry whose type carries FlagHasChild (or be "").
func (r *Root) CacheAlloc(groupName string) (*Cache, error) {
	var sourceGroup groupIndex
	var defs []Def
	if groupName == "" {
		sourceGroup = 0
		defs = r.schema
	} else {
		e := r.lookupExact(groupName)
		if e == nil || !e.Def.Type.Flags().Has(FlagHasChild) {
			return nil, newErr(CodeInvalid, groupName, nil)
		}
		sourceGroup = e.childGroup
		if e.Def.Children != nil {
			defs = e.Def.Children.Definitions
		}
	}

	sub, err := newBare(defs)
	if err != nil {
		return nil, err
	}

	descendants := r.descendantGroups(sourceGroup)
	var srcEntries []int
	for i, se := range r.entries {
		if descendants[se.group] {
			srcEntries = append(srcEntries, i)
		}
	}
	if len(srcEntries) != len(sub.entries) {
		return nil, newErr(CodeInvalid, groupName, nil)
	}
	// The sub-schema was built without the group's own prefix; give each
	// mirrored entry the fully qualified name it has in the source.
	for i, srcIdx := range srcEntries {
		sub.entries[i].Name = r.entries[srcIdx].Name
	}

	return &Cache{
		sub:         sub,
		source:      r,
		sourceGroup: sourceGroup,
		lastVersion: -1,
		mapping:     srcEntries,
	}, nil
}

// descendantGroups returns the set of group indices reachable from
// root by walking child->parent links, including root itself.
func (r *Root) descendantGroups(root groupIndex) map[groupIndex]bool {
	set := map[groupIndex]bool{root: true}
	changed := true
	for changed {
		changed = false
		for gi, g := range r.groups {
			if set[groupIndex(gi)] {
				continue
			}
			if set[g.parent] {
				set[groupIndex(gi)] = true
				changed = true
			}
		}
	}
	return set
}

// Opts returns the cache's duplicated sub-root; a caller reads its
// current snapshot through its entries (EntryAt/GetEntry), never
// through the source Root (§5: observers never read live storage of
// the root, only of their own cache).
func (c *Cache) Opts() *Root { return c.sub }

// Refresh re-copies from the source's shadow if the owning group's
// version has advanced since the last refresh (§4.4). The unlocked
// pre-check is an optimization only; correctness comes from the locked
// re-read inside the loop below.
func (c *Cache) Refresh() bool {
	if c.source.shadow == nil {
		return false
	}
	v := c.source.groups[c.sourceGroup].Version()
	if v <= c.lastVersion {
		return false
	}

	c.source.shadow.mu.Lock()
	defer c.source.shadow.mu.Unlock()

	c.lastVersion = c.source.groups[c.sourceGroup].Version()
	for i, srcIdx := range c.mapping {
		srcEntry := c.source.entries[srcIdx]
		dstEntry := c.sub.entries[i]
		if srcEntry.shadowIdx < 0 || !dstEntry.HasStorage() {
			continue
		}
		dstEntry.Def.Type.Copy(dstEntry.live, &c.source.shadow.cells[srcEntry.shadowIdx])
	}
	return true
}
