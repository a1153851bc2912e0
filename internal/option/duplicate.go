package option

// Duplicate builds an independent Root with the same schema and
// current values as r (§4.8 "m_config_dup"/"copy-sub-options"): a deep
// snapshot a caller can mutate without affecting r, useful for a
// preview/what-if pass over a config before committing it for real.
// The duplicate has no shadow, no backups, and its own empty profile
// store — those are per-lifetime state, not schema.
func (r *Root) Duplicate() (*Root, error) {
	dup, err := newBare(r.schema)
	if err != nil {
		return nil, err
	}

	// Mirror only r's user schema, the same scoping CacheAlloc("") uses:
	// the four built-in meta-options live in their own disconnected
	// group and are never part of what gets duplicated.
	descendants := r.descendantGroups(0)
	var srcEntries []*Entry
	for _, se := range r.entries {
		if descendants[se.group] {
			srcEntries = append(srcEntries, se)
		}
	}
	if len(srcEntries) != len(dup.entries) {
		return nil, newErr(CodeInvalid, "", nil)
	}

	for i, src := range srcEntries {
		dst := dup.entries[i]
		if !src.HasStorage() || !dst.HasStorage() {
			continue
		}
		dst.Def.Type.Copy(dst.live, src.live)
		dst.isSetFromCmdline = src.isSetFromCmdline
		dst.isSetLocally = src.isSetLocally
	}
	return dup, nil
}

// DuplicateSubOptions is the scoped form of Duplicate (§4.8
// "copy-sub-options"): it returns an independent Root rooted at
// groupName's own sub-schema, seeded from r's current values, the way
// CacheAlloc scopes a Cache to one group's descendants.
func (r *Root) DuplicateSubOptions(groupName string) (*Root, error) {
	e := r.lookupExact(groupName)
	if e == nil || !e.Def.Type.Flags().Has(FlagHasChild) {
		return nil, newErr(CodeInvalid, groupName, nil)
	}

	var defs []Def
	if e.Def.Children != nil {
		defs = e.Def.Children.Definitions
	}
	dup, err := newBare(defs)
	if err != nil {
		return nil, err
	}
	// A sub-options duplicate is rooted below the toplevel config, so
	// its option names print bare rather than "--"-prefixed (§4
	// "is_toplevel display prefix").
	dup.isToplevel = false

	descendants := r.descendantGroups(e.childGroup)
	var srcEntries []*Entry
	for _, se := range r.entries {
		if descendants[se.group] {
			srcEntries = append(srcEntries, se)
		}
	}
	if len(srcEntries) != len(dup.entries) {
		return nil, newErr(CodeInvalid, groupName, nil)
	}

	for i, src := range srcEntries {
		dst := dup.entries[i]
		if !src.HasStorage() || !dst.HasStorage() {
			continue
		}
		dst.Def.Type.Copy(dst.live, src.live)
		dst.isSetFromCmdline = src.isSetFromCmdline
		dst.isSetLocally = src.isSetLocally
	}
	return dup, nil
}
