// Package option implements the hierarchical, typed options core: a
// registry of nested config-options, a setter pipeline, per-group shadow
// snapshots for lock-free cross-goroutine reads, scoped backups, and
// named profiles.
//
// The individual scalar/list/choice type handlers are external
// collaborators; this package only defines the capability contract
// (Type) that the core consumes. See internal/opttype for concrete
// implementations.
package option

// Flag is a bitmask of capability markers a Type or OptionDef carries.
type Flag uint32

const (
	// FlagHasChild marks a type whose storage is a pointer to a nested
	// option-struct (a sub-group), e.g. a compound "audio" option that
	// expands into "audio-device", "audio-channels", etc.
	FlagHasChild Flag = 1 << iota
	// FlagAllowWildcard marks a type that may be matched by a schema
	// entry whose name ends in "*" (a prefix match).
	FlagAllowWildcard
	// FlagIsAlias marks a type whose private blob names another option;
	// resolving it recurses onto that name (§4.2).
	FlagIsAlias
	// FlagIsRemoved marks a type that always fails resolution with a
	// one-shot fatal message.
	FlagIsRemoved
	// FlagFixed marks an option that is rejected when set with
	// SetNoFixed.
	FlagFixed
	// FlagNotInConfig marks an option that cannot be set from a config
	// file (rejected under SetFromConfigFile).
	FlagNotInConfig
	// FlagGlobalOnly marks an option that cannot be backed up: backup
	// requests skip it and SetBackup rejects it.
	FlagGlobalOnly
	// FlagPreParse marks an option that is safe to apply before the
	// rest of the config has been parsed (e.g. a config-file path).
	FlagPreParse
	// FlagNegatable marks a type that accepts the "no-" prefix form
	// (§4.2 negation-resolve): flag, choice, and aspect-like types.
	FlagNegatable
	// FlagTerminalAffecting marks an option whose commit should invoke
	// the root's MessageHook outside the shadow lock (§4.3.2 step c).
	FlagTerminalAffecting
)

// Has reports whether f contains every bit in mask.
func (f Flag) Has(mask Flag) bool { return f&mask == mask }

// Cell is a single erased option slot. Rather than model C's
// offset-into-a-byte-buffer storage, each config-option owns one Cell: a
// tagged-union value kept alongside the entry (the alternative the
// design notes explicitly call out). This sidesteps the alignment
// question the original source leaves unsound (it used a type's size as
// an alignment proxy): a Cell is a Go interface value, so there is no
// alignment to compute, and Copy/Free/Print dispatch on the concrete
// type a handler stored there.
type Cell struct{ V any }

// Type is the capability contract the core requires from an option's
// scalar/list/choice implementation. Concrete implementations live
// outside this package (see internal/opttype); the shape mirrors
// m_config.c's per-option "m_option" vtable (parse/copy/free/print).
type Type interface {
	// Name identifies the type for diagnostics and list-options output
	// (e.g. "Flag", "Integer", "String", "Choice").
	Name() string

	// Size reports the nominal byte width of the type. The core does
	// not read it: storage is a Cell, not a byte offset.
	Size() int

	// Flags reports the capability bits this type carries (HasChild,
	// AllowWildcard, IsAlias, IsRemoved are all type-level).
	Flags() Flag

	// Parse converts text into the typed value and stores it in dst.
	// priv is the schema definition's type-specific private blob
	// (Def.Priv), passed through unchanged.
	Parse(dst *Cell, text string, priv any) error

	// ParseNode converts an already-typed dynamic-value tree node into
	// the typed value and stores it in dst (§6 "set_node"). The node
	// format itself is an external collaborator (§1); see Node for the
	// default yaml.v3-backed implementation.
	ParseNode(dst *Cell, node *Node, priv any) error

	// Copy copies the typed value from src to dst.
	Copy(dst, src *Cell)

	// Free releases any resources owned by the value in c (a no-op for
	// value types; clears backing arrays for list-typed options) and
	// resets c to the type's zero value.
	Free(c *Cell)

	// Print renders the typed value in c back to text, e.g. for
	// list-options or for constructing a default-value string.
	Print(c *Cell) string

	// RequiredParams reports how many textual parameters Parse expects.
	// 0 means the option can be set bare (e.g. a "-clr" sentinel, or a
	// flag set via its negated "no-" form).
	RequiredParams() int
}
