package option

import "strings"

// Profile is a named ordered sequence of (option-name, value-text)
// pairs (§3 "Profile"). Duplicates are allowed; order is the
// application order.
type Profile struct {
	Name        string
	Description string
	Pairs       []NamedValue
}

// profileStore holds every profile a Root has ever created, in
// insertion order: an ordered name list alongside a lookup map.
type profileStore struct {
	order  []string
	byName map[string]*Profile
}

func newProfileStore() *profileStore {
	return &profileStore{byName: make(map[string]*Profile)}
}

func (s *profileStore) get(name string) (*Profile, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// AddProfile returns the existing profile named name if present,
// otherwise creates and registers an empty one (§4.6). "" and "default"
// are reserved and never created.
func (r *Root) AddProfile(name string) (*Profile, error) {
	if name == "" || name == "default" {
		return nil, newErr(CodeInvalid, name, nil)
	}
	if p, ok := r.profiles.get(name); ok {
		return p, nil
	}
	p := &Profile{Name: name}
	r.profiles.byName[name] = p
	r.profiles.order = append(r.profiles.order, name)
	return p, nil
}

// GetProfile looks up a previously created profile by name.
func (r *Root) GetProfile(name string) (*Profile, bool) {
	return r.profiles.get(name)
}

// GetProfiles returns every profile's name as a dynamic-value tree
// node (§6 "get_profiles"), in creation order.
func (r *Root) GetProfiles() *Node {
	pairs := make([]NamedValue, 0, len(r.profiles.order))
	for _, name := range r.profiles.order {
		p := r.profiles.byName[name]
		pairs = append(pairs, NamedValue{Name: p.Name, Value: p.Description})
	}
	return NewListNode(pairs)
}

// SetProfileOption validates name=value via the setter pipeline in
// check-only + from-config-file mode, then appends the pair to p
// regardless of whether it duplicates an earlier pair — order matters
// (§4.6 "append").
func (r *Root) SetProfileOption(p *Profile, name, value string) error {
	if err := r.Set(name, value, SetCheckOnly|SetFromConfigFile); err != nil {
		return err
	}
	p.Pairs = append(p.Pairs, NamedValue{Name: name, Value: value})
	return nil
}

// SetProfile applies every pair of the named profile in order (§4.6
// "apply"), OR-ing SetFromConfigFile into flags. Per-pair failures are
// logged and skipped; the call itself only fails for an unknown profile
// or a depth-exceeded guard (I6, §9 Open Question: "preserve current
// behavior (log-and-continue)").
func (r *Root) SetProfile(name string, flags SetFlags) error {
	return r.applyProfile(name, flags)
}

func (r *Root) applyProfile(name string, flags SetFlags) error {
	r.profileDepth++
	defer func() { r.profileDepth-- }()

	if r.profileDepth > MaxProfileDepth {
		r.logger.Warnf("Profile inclusion too deep")
		return newErr(CodeInvalid, name, nil)
	}

	p, ok := r.profiles.get(name)
	if !ok {
		return newErr(CodeUnknown, name, nil)
	}

	applyFlags := flags | SetFromConfigFile
	for _, pair := range p.Pairs {
		if pair.Name == "profile" {
			for _, sub := range splitCommaList(pair.Value) {
				if err := r.applyProfile(sub, flags); err != nil {
					r.logger.Warnf("profile %q: nested profile %q failed: %v", name, sub, err)
				}
			}
			continue
		}
		if err := r.Set(pair.Name, pair.Value, applyFlags); err != nil {
			r.logger.Warnf("profile %q: %s=%q failed: %v", name, pair.Name, pair.Value, err)
		}
	}
	return nil
}

// renderProfile implements show-profile's recursive rendering (§4.3
// step 3): child entries literally named "profile" expand as
// comma-separated profile names, depth-limited the same as apply.
func (r *Root) renderProfile(name string, depth int, out *strings.Builder) {
	if depth >= MaxProfileDepth {
		out.WriteString("  <profile inclusion too deep>\n")
		return
	}
	p, ok := r.profiles.get(name)
	if !ok {
		out.WriteString("  <unknown profile>\n")
		return
	}
	indent := strings.Repeat("  ", depth)
	for _, pair := range p.Pairs {
		if pair.Name == "profile" {
			for _, sub := range splitCommaList(pair.Value) {
				out.WriteString(indent + "profile=" + sub + "\n")
				r.renderProfile(sub, depth+1, out)
			}
			continue
		}
		out.WriteString(indent + pair.Name + "=" + pair.Value + "\n")
	}
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
