package option

// MessageHook is invoked outside the shadow lock when a terminal-
// affecting option commits (§4.3.2 step c). The log/terminal subsystem
// itself is an external collaborator; this is the seam a host wires it
// through.
type MessageHook func(entry *Entry)

// IncludeFunc is the injected callback that resolves an `include`
// meta-option's filename parameter into further name=value assignments
// applied through the same Root (§4.7). See internal/optfile for a
// reference implementation backed by BurntSushi/toml.
type IncludeFunc func(root *Root, filename string, flags SetFlags) error

const (
	// MaxRecursionDepth bounds include-file recursion (I6).
	MaxRecursionDepth = 8
	// MaxProfileDepth bounds profile-application recursion (I6).
	MaxProfileDepth = 20
	// maxSubOptChildName bounds a flattened sub-option child name's
	// length (§4.7): "<parent>-<child>" must be <= 100 bytes.
	maxSubOptChildName = 100
)

// Root is the config controller: the registry of config-options, the
// forest of groups, the optional shadow, the backup stack, and the
// profile store, all scoped to one lifetime (§3 "Config root"). All
// mutating methods are controller-only (§5): a single goroutine must
// own a Root's mutations, though any number of Cache readers may call
// Refresh concurrently with it and with each other.
type Root struct {
	schema []Def // retained for Duplicate/CacheAlloc, which re-run the builder

	entries []*Entry
	groups  []*Group

	shadow *Shadow

	includeFn    IncludeFunc
	includeDepth int

	profiles     *profileStore
	profileDepth int

	backups []*backupEntry

	logger Logger
	hook   MessageHook

	useProfiles bool
	isToplevel  bool

	// subOptDeprecationWarned tracks, per has-child entry name, whether
	// the one-shot sub-option deprecation notice already fired.
	subOptDeprecationWarned map[string]bool
}

// New builds a Root from a static option-definition tree (§4.1). The
// returned Root has no shadow until CreateShadow is called, is a
// top-level config (IsToplevel), has profiles enabled, and carries the
// four built-in meta-options (§4.3 step 3).
func New(defs []Def) (*Root, error) {
	r, err := newBare(defs)
	if err != nil {
		return nil, err
	}

	// The four meta-options live in their own disconnected group (parent
	// noGroup, same as group 0 itself) so they never show up as
	// descendants of group 0: CacheAlloc("") and Duplicate must mirror
	// exactly r.schema, not r.schema-plus-builtins.
	builtinGroup := groupIndex(len(r.groups))
	r.groups = append(r.groups, &Group{parent: noGroup, name: "<builtin>"})
	if err := buildSchema(r, builtinGroup, -1, builtinDefs()); err != nil {
		return nil, err
	}
	return r, nil
}

// newBare builds a Root from defs with no built-in meta-options. It
// backs CacheAlloc/Duplicate/DuplicateSubOptions, which construct
// internal read-scoped mirrors of a subtree of an existing Root's
// schema — those mirrors have nothing to include/profile-apply
// themselves, so injecting the four meta-options into them would only
// make their entry count diverge from the source subtree's.
func newBare(defs []Def) (*Root, error) {
	r := &Root{
		logger:                  NopLogger{},
		useProfiles:             true,
		isToplevel:              true,
		subOptDeprecationWarned: make(map[string]bool),
	}
	r.groups = append(r.groups, &Group{parent: noGroup, name: ""})
	r.schema = defs
	if err := buildSchema(r, 0, -1, defs); err != nil {
		return nil, err
	}
	r.profiles = newProfileStore()
	return r, nil
}

// SetLogger installs the diagnostic sink used for one-shot
// deprecation/removed-option warnings and profile-apply failures.
func (r *Root) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	r.logger = l
}

// SetIncludeCallback wires the collaborator that resolves `include`
// (§4.7). Passing nil disables `include` (it fails with CodeInvalid).
func (r *Root) SetIncludeCallback(fn IncludeFunc) { r.includeFn = fn }

// SetMessageHook wires the collaborator invoked on commit of a
// terminal-affecting option (§4.3.2 step c).
func (r *Root) SetMessageHook(hook MessageHook) { r.hook = hook }

// SetUseProfiles toggles whether the `profile`/`show-profile` built-ins
// are active (§4.3 step 3); disabled configs treat those names as
// unknown.
func (r *Root) SetUseProfiles(v bool) { r.useProfiles = v }

// SetToplevel toggles IsToplevel (§3 "Config root"). It has no effect
// on what Set accepts: per the original (m_config.c:627,978) it only
// decides whether ListOptions prints each name with a "--" prefix, the
// way a toplevel config's options are runtime flags while a duplicated
// sub-config's are not (SPEC_FULL §4 "is_toplevel display prefix").
func (r *Root) SetToplevel(v bool) { r.isToplevel = v }

// IsToplevel reports the toggle set by SetToplevel/New.
func (r *Root) IsToplevel() bool { return r.isToplevel }

// Count returns the number of addressable config-options (I7: entries
// with an empty local name are never registered, so this is not
// necessarily the number of schema Defs walked).
func (r *Root) Count() int { return len(r.entries) }

// EntryAt returns the i'th registered entry in declaration order, or
// nil if i is out of range.
func (r *Root) EntryAt(i int) *Entry {
	if i < 0 || i >= len(r.entries) {
		return nil
	}
	return r.entries[i]
}

// GroupVersion returns the version counter of the group owning name, or
// (0, false) if name is not a registered entry name. This is the
// SPEC_FULL-added cheap diagnostic surface (§4 "Per-group change
// counters surfaced to callers"); it reads the same counter that
// Cache.Refresh checks.
func (r *Root) GroupVersion(name string) (int64, bool) {
	e := r.lookupExact(name)
	if e == nil {
		return 0, false
	}
	return r.groups[e.group].Version(), true
}
