package option

// afterCommit implements §4.3.2: on commit of an option with storage,
// copy the new live value into the shadow slot under the shadow mutex,
// then bump the version counter of the owning group and every ancestor
// up to the root, then — outside the lock — invoke the message hook if
// the option is terminal-affecting and a hook is wired.
//
// The copy-then-bump ordering (not a single atomic transaction) is the
// documented eventual-consistency contract (§9 "Atomicity of
// propagation"): an observer may observe a bumped version before the
// shadow copy lands, but Cache.Refresh always re-reads under the shadow
// lock, so it only ever sees shadow state for *some* committed version
// >= what it last observed.
func (r *Root) afterCommit(entry *Entry, flags SetFlags) error {
	if r.shadow != nil && entry.shadowIdx >= 0 {
		r.shadow.store(entry.shadowIdx, entry.Def.Type, entry.live)
	}

	for g := entry.group; g != noGroup; g = r.groups[g].parent {
		r.groups[g].bump()
	}

	if entry.Def.Flags.Has(FlagTerminalAffecting) && r.hook != nil {
		r.hook(entry)
	}
	return nil
}
