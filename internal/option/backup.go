package option

// backupEntry is a saved pre-override copy of one entry's live value
// (§3 "Backup entry").
type backupEntry struct {
	entry *Entry
	saved Cell
}

// ensureBackup implements §4.5: refuses for has-child types, global-only
// options, and storage-less entries; dedups by live-Cell pointer
// identity (I4), which also suppresses aliases pointing at the same
// slot. On success it marks the entry IsSetLocally.
func (r *Root) ensureBackup(entry *Entry) {
	if entry.Def.Type.Flags().Has(FlagHasChild) {
		return
	}
	if entry.Def.Flags.Has(FlagGlobalOnly) {
		return
	}
	if !entry.HasStorage() {
		return
	}
	for _, b := range r.backups {
		if b.entry.live == entry.live {
			return
		}
	}

	saved := Cell{}
	entry.Def.Type.Copy(&saved, entry.live)
	r.backups = append(r.backups, &backupEntry{entry: entry, saved: saved})
	entry.isSetLocally = true
}

// BackupOpt snapshots name's current value if it is not already backed
// up (§6 "backup_opt").
func (r *Root) BackupOpt(name string) error {
	e, code := r.resolve(name)
	if code != CodeOK {
		return newErr(CodeUnknown, name, nil)
	}
	r.ensureBackup(e)
	return nil
}

// BackupAll snapshots every storage-bearing, non-global-only option
// (§6 "backup_all").
func (r *Root) BackupAll() {
	for _, e := range r.entries {
		r.ensureBackup(e)
	}
}

// RestoreBackups rolls back every backup entry in LIFO order, clearing
// IsSetLocally as it goes, and is infallible (§4.5, §7). It only runs
// when called: the core has no Close/Drop hook, so backups left on a
// Root that is no longer in use are never rolled back.
func (r *Root) RestoreBackups() {
	for i := len(r.backups) - 1; i >= 0; i-- {
		b := r.backups[i]
		b.entry.Def.Type.Copy(b.entry.live, &b.saved)
		b.entry.Def.Type.Free(&b.saved)
		b.entry.isSetLocally = false
		_ = r.afterCommit(b.entry, 0)
	}
	r.backups = nil
}
