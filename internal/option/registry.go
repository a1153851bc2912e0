package option

import "strings"

// resolve implements §4.2: exact match, then wildcard-prefix match,
// then alias/removed/deprecated post-processing. It returns the entry
// that should actually be read from/written to (alias chasing is
// transparent to the caller) or nil with CodeUnknown.
func (r *Root) resolve(name string) (*Entry, Code) {
	e := r.lookupExact(name)
	if e == nil {
		e = r.lookupWildcard(name)
	}
	if e == nil {
		return nil, CodeUnknown
	}
	return r.postProcess(e)
}

func (r *Root) lookupExact(name string) *Entry {
	for _, e := range r.entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (r *Root) lookupWildcard(name string) *Entry {
	for _, e := range r.entries {
		if !e.Def.Type.Flags().Has(FlagAllowWildcard) {
			continue
		}
		if !strings.HasSuffix(e.Name, "*") {
			continue
		}
		prefix := strings.TrimSuffix(e.Name, "*")
		if strings.HasPrefix(name, prefix) {
			return e
		}
	}
	return nil
}

func (r *Root) postProcess(e *Entry) (*Entry, Code) {
	flags := e.Def.Type.Flags()

	switch {
	case flags.Has(FlagIsRemoved):
		if !e.warningPrinted {
			e.warningPrinted = true
			reason, _ := e.Def.Priv.(string)
			if reason != "" {
				r.logger.Warnf("option %q was removed: %s", e.Name, reason)
			} else {
				r.logger.Warnf("option %q was removed", e.Name)
			}
		}
		return nil, CodeUnknown

	case flags.Has(FlagIsAlias):
		target, _ := e.Def.Priv.(string)
		if e.Def.Deprecated != "" && !e.warningPrinted {
			e.warningPrinted = true
			r.logger.Warnf("option %q was replaced with %q", e.Name, target)
		}
		return r.resolve(target)

	case e.Def.Deprecated != "":
		if !e.warningPrinted {
			e.warningPrinted = true
			r.logger.Warnf("option %q is deprecated: %s", e.Name, e.Def.Deprecated)
		}
		return e, CodeOK

	default:
		return e, CodeOK
	}
}

// negationResolve implements the "no-" shorthand (§4.2, §6): it is
// accepted only for types that opt into FlagNegatable, and a successful
// negation resolve implies the caller must treat the value as the
// literal "no" and reject any supplied parameter.
func (r *Root) negationResolve(name string) (*Entry, bool) {
	if !strings.HasPrefix(name, "no-") {
		return nil, false
	}
	base := strings.TrimPrefix(name, "no-")
	e, code := r.resolve(base)
	if code != CodeOK || e == nil {
		return nil, false
	}
	if !e.Def.Type.Flags().Has(FlagNegatable) {
		return nil, false
	}
	return e, true
}
