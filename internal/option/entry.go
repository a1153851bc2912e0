package option

// Entry is one addressable option in the registry: its final fully
// qualified name, its schema definition, the live Cell holding its
// current value, and the index of the group that owns it (§3
// "Config-option entry").
type Entry struct {
	Name string
	Def  *Def

	group groupIndex

	// childGroup is the index of the group this entry introduces, for
	// a FlagHasChild entry; noGroup otherwise. Used by Cache allocation
	// to scope a duplicate schema to one group's descendants.
	childGroup groupIndex

	// live is nil for storage-less definitions (e.g. a definition that
	// only contributes children and carries no value of its own).
	live *Cell

	// shadowIdx is the index into Root.shadow.cells, or -1 if this
	// entry is not shadowed. This is the Go-idiomatic stand-in for the
	// spec's "byte offset into the shadow buffer": a slot index rather
	// than a byte offset, since storage is a Cell, not a byte buffer.
	shadowIdx int

	isSetFromCmdline bool
	isSetLocally     bool
	warningPrinted   bool
	isHidden         bool
}

// GroupIndex exposes the owning group's index for diagnostics/tests.
func (e *Entry) GroupIndex() int { return int(e.group) }

// IsSetFromCmdline reports whether a commit of this entry carried
// SetFromCmdline (§4.3 step 6).
func (e *Entry) IsSetFromCmdline() bool { return e.isSetFromCmdline }

// IsSetLocally reports whether ensure-backup has snapshotted this
// entry's pre-override value (§4.5).
func (e *Entry) IsSetLocally() bool { return e.isSetLocally }

// IsHidden reports whether the entry is suppressed from list-options
// output (deprecated-without-alias, or removed). See §4 of
// SPEC_FULL for the "is_hidden suppression" supplemented feature.
func (e *Entry) IsHidden() bool { return e.isHidden }

// HasStorage reports whether the entry owns a live value slot. Entries
// without storage (has-child entries, which only contribute children)
// always resolve SetRaw to CodeUnknown (§8 boundary behavior).
func (e *Entry) HasStorage() bool { return e.live != nil }

// Value renders the entry's current live value as text via its type
// handler's Print, or "" for a storage-less entry.
func (e *Entry) Value() string {
	if e.live == nil {
		return ""
	}
	return e.Def.Type.Print(e.live)
}
