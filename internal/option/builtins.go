package option

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// builtinType is the Type implementation behind the four synthetic
// meta-options every Root auto-registers (§4.3 step 3): include,
// profile, show-profile, list-options. dispatchBuiltin intercepts them
// before the normal storage path, so Parse/Copy/Print only need to
// keep a Cell in a self-consistent state for diagnostics.
type builtinType struct {
	name   string
	params int
}

func (b builtinType) Name() string  { return b.name }
func (b builtinType) Size() int     { return 0 }
func (b builtinType) Flags() Flag   { return 0 }
func (b builtinType) RequiredParams() int { return b.params }

func (b builtinType) Parse(dst *Cell, text string, _ any) error {
	dst.V = text
	return nil
}

func (b builtinType) ParseNode(dst *Cell, node *Node, _ any) error {
	dst.V = node.String()
	return nil
}

func (b builtinType) Copy(dst, src *Cell) { dst.V = src.V }
func (b builtinType) Free(c *Cell)        { c.V = nil }

func (b builtinType) Print(c *Cell) string {
	s, _ := c.V.(string)
	return s
}

// builtinDefs returns the schema fragment for the four meta-options,
// built into their own isolated group (§4.3 step 3) so they never
// appear in a Cache's duplicated subtree or in Duplicate's output.
func builtinDefs() []Def {
	return []Def{
		{Name: "include", Type: builtinType{name: "Include", params: 1}, Flags: FlagPreParse},
		{Name: "profile", Type: builtinType{name: "Profile", params: 1}},
		{Name: "show-profile", Type: builtinType{name: "Profile", params: 1}},
		{Name: "list-options", Type: builtinType{name: "Flag", params: 0}},
	}
}

// dispatchBuiltin handles the four meta-options before the normal
// storage/sub-option path ever sees them (§4.3 step 3). handled is
// false for anything else, letting set() fall through to its usual
// pipeline.
func (r *Root) dispatchBuiltin(entry *Entry, rv rawValue, flags SetFlags, checkOnly bool) (bool, error) {
	switch entry.Name {
	case "include":
		if checkOnly {
			return true, nil
		}
		return true, r.includeFile(textOf(rv), flags)

	case "profile":
		if !r.useProfiles {
			return true, newErr(CodeUnknown, entry.Name, nil)
		}
		if checkOnly {
			return true, nil
		}
		text := textOf(rv)
		if text == "help" {
			r.logger.Infof("available profiles: %s", strings.Join(r.profiles.order, ", "))
			return true, newErr(CodeExitInfo, entry.Name, nil)
		}
		names := splitCommaList(text)
		if len(names) == 0 {
			return true, newErr(CodeInvalid, entry.Name, nil)
		}
		for _, name := range names {
			if err := r.SetProfile(name, flags); err != nil {
				return true, err
			}
		}
		return true, nil

	case "show-profile":
		if !r.useProfiles {
			return true, newErr(CodeUnknown, entry.Name, nil)
		}
		if checkOnly {
			return true, nil
		}
		text := textOf(rv)
		if text == "" {
			return true, newErr(CodeMissingParam, entry.Name, nil)
		}
		if _, ok := r.GetProfile(text); !ok {
			r.logger.Warnf("Unknown profile %q.", text)
			return true, newErr(CodeExitInfo, entry.Name, nil)
		}
		var sb strings.Builder
		r.renderProfile(text, 0, &sb)
		r.logger.Infof("%s", sb.String())
		return true, newErr(CodeExitInfo, entry.Name, nil)

	case "list-options":
		if checkOnly {
			return true, nil
		}
		r.logger.Infof("%s", r.listOptions())
		return true, newErr(CodeExit, entry.Name, nil)
	}
	return false, nil
}

// ListOptionNames returns every non-hidden option's fully qualified
// name, sorted (§6 "list_option_names"), the way lazydocker filters a
// panel's items before mapping them down to display strings.
func (r *Root) ListOptionNames() []string {
	visible := lo.Filter(r.entries, func(e *Entry, _ int) bool { return !e.IsHidden() })
	names := lo.Map(visible, func(e *Entry, _ int) string { return e.Name })
	sort.Strings(names)
	return names
}

// ListOptions renders the sorted option catalog as one line per entry:
// name, type name, default value, and current value when it differs
// from the default (§6 "list_options"; SPEC_FULL §4 "list-options
// verbosity" — the original's m_config_print_option_list). Names print
// "--"-prefixed for a toplevel config and bare otherwise (§4
// "is_toplevel display prefix"), matching m_config.c:978.
func (r *Root) ListOptions() string {
	byName := make(map[string]*Entry, len(r.entries))
	for _, e := range r.entries {
		if !e.IsHidden() {
			byName[e.Name] = e
		}
	}

	prefix := ""
	if r.isToplevel {
		prefix = "--"
	}

	var sb strings.Builder
	for _, name := range r.ListOptionNames() {
		e := byName[name]
		sb.WriteString(prefix)
		sb.WriteString(e.Name)
		sb.WriteString(" (")
		sb.WriteString(e.Def.Type.Name())
		sb.WriteString(")")
		if e.HasStorage() {
			def := &Cell{}
			seedDefault(e.Def, def)
			defStr := e.Def.Type.Print(def)
			curStr := e.Def.Type.Print(e.live)
			sb.WriteString(" default=")
			sb.WriteString(defStr)
			if curStr != defStr {
				sb.WriteString(" current=")
				sb.WriteString(curStr)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// listOptions is the text the "list-options" meta-option prints.
func (r *Root) listOptions() string { return r.ListOptions() }

func textOf(rv rawValue) string {
	if rv.text != nil {
		return *rv.text
	}
	if rv.node != nil {
		return rv.node.String()
	}
	return ""
}
