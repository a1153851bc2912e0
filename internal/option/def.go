package option

// Def is an immutable schema entry, supplied by the caller who builds a
// Root. Name may be empty to indicate the definition contributes only
// children to the enclosing namespace (§4.1 step 1), and may end in "*"
// if Type.Flags() carries FlagAllowWildcard.
type Def struct {
	Name string
	Type Type

	// Default is the value Parse-equivalent used to seed storage when
	// no explicit default is supplied by the caller (§4.1 step 5).
	// Nil means "the type's zero value".
	Default any

	Flags Flag

	// Priv is the type-specific private blob: alias target name for an
	// alias type, the removed-option explanation, etc.
	Priv any

	// Deprecated, if non-empty, causes a one-shot warning on resolution
	// (§4.2) and marks the option hidden unless its type is an alias.
	Deprecated string

	// Children holds the nested definitions for a FlagHasChild entry
	// (§4.1 step 4). Ignored otherwise.
	Children *SubOptions
}

// SubOptions is the descriptor for a nested option group: an ordered
// list of definitions plus the defaults to seed a freshly allocated
// sub-group with when no definition-level default is supplied.
type SubOptions struct {
	Defaults    any
	Definitions []Def
}
