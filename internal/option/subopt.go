package option

import "strings"

// setSubOptions expands a has-child entry's flattened "a=x,b=y,c" text
// form into individual r.set calls on "<parent>-<child>" names (§4.7).
// A one-shot deprecation notice fires the first time any given
// has-child entry is assigned this way, never more than once per entry.
func (r *Root) setSubOptions(entry *Entry, text string, flags SetFlags) error {
	if !r.subOptDeprecationWarned[entry.Name] {
		r.subOptDeprecationWarned[entry.Name] = true
		r.logger.Warnf("option %q: the flattened sub-option syntax a=x,b=y is deprecated, use %s-<name>=<value> instead", entry.Name, entry.Name)
	}

	for _, p := range splitSubOptions(text) {
		childName := entry.Name + "-" + p.Name
		if len(childName) > maxSubOptChildName {
			return newErr(CodeInvalid, childName, nil)
		}
		if err := r.set(childName, rawValue{text: strPtr(p.Value)}, flags); err != nil {
			return err
		}
	}
	return nil
}

// splitSubOptions tokenizes a comma-separated a=x,b=y,c list, honoring
// quoted values ('...' or "...") and backslash-escaped characters
// inside them so a quoted value may itself contain a comma. A bare
// name with no "=" is shorthand for "<name>=yes" (the flag-suboption
// convention).
func splitSubOptions(text string) []NamedValue {
	var out []NamedValue
	var tok strings.Builder
	var quote rune
	escaped := false

	flush := func() {
		raw := tok.String()
		tok.Reset()
		if raw == "" {
			return
		}
		if name, value, ok := strings.Cut(raw, "="); ok {
			out = append(out, NamedValue{Name: strings.TrimSpace(name), Value: value})
		} else {
			out = append(out, NamedValue{Name: strings.TrimSpace(raw), Value: "yes"})
		}
	}

	for _, ch := range text {
		switch {
		case escaped:
			tok.WriteRune(ch)
			escaped = false
		case ch == '\\' && quote != 0:
			escaped = true
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				tok.WriteRune(ch)
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == ',':
			flush()
		default:
			tok.WriteRune(ch)
		}
	}
	flush()
	return out
}
