package option

import (
	"strings"
)

// rawValue is the union of the two forms Set/SetNode accept (§6
// "set(name, value, flags)" / "set_node(name, typed-node, flags)").
type rawValue struct {
	text *string
	node *Node
}

// Set parses value as text and commits it to name, subject to flags
// (§4.3). This is the primary Controller API entry point.
func (r *Root) Set(name, value string, flags SetFlags) error {
	return r.set(name, rawValue{text: &value}, flags)
}

// SetNode commits an already-typed dynamic-value node to name (§6
// "set_node").
func (r *Root) SetNode(name string, node *Node, flags SetFlags) error {
	return r.set(name, rawValue{node: node}, flags)
}

// SetRaw commits a pre-built Cell value directly to a resolved entry,
// bypassing text/node parsing (§6 "set_raw"). Storage-less entries
// (has-child containers, or any entry whose Def never allocated a live
// Cell) always report CodeUnknown — this is the boundary behavior
// called out in §8.
func (r *Root) SetRaw(entry *Entry, value any, flags SetFlags) error {
	if entry == nil || !entry.HasStorage() {
		return newErr(CodeUnknown, entryNameOrEmpty(entry), nil)
	}
	outcome, err := r.gate(entry, flags)
	if err != nil {
		return err
	}
	switch outcome {
	case gateSkip:
		return nil
	case gateCheckOnly:
		return nil
	}
	if flags.has(SetBackup) {
		r.ensureBackup(entry)
	}
	entry.live.V = value
	return r.afterCommit(entry, flags)
}

func entryNameOrEmpty(e *Entry) string {
	if e == nil {
		return ""
	}
	return e.Name
}

func (r *Root) set(name string, rv rawValue, flags SetFlags) error {
	if base, ok := strings.CutSuffix(name, "-clr"); ok {
		if e, code := r.resolve(base); code == CodeOK && e.HasStorage() {
			return r.clear(e, flags)
		}
	}

	entry, code := r.resolve(name)
	negated := false
	if code != CodeOK {
		if e, ok := r.negationResolve(name); ok {
			entry = e
			negated = true
		} else {
			return newErr(CodeUnknown, name, nil)
		}
	}

	if negated {
		if (rv.text != nil && *rv.text != "") || rv.node != nil {
			return newErr(CodeDisallowParam, name, nil)
		}
		rv = rawValue{text: strPtr("no")}
	}

	outcome, err := r.gate(entry, flags)
	if err != nil {
		return err
	}
	if outcome == gateSkip {
		return nil
	}
	checkOnly := outcome == gateCheckOnly

	if handled, err := r.dispatchBuiltin(entry, rv, flags, checkOnly); handled {
		return err
	}

	if entry.Def.Type.Flags().Has(FlagHasChild) {
		text := ""
		if rv.text != nil {
			text = *rv.text
		}
		return r.setSubOptions(entry, text, flags)
	}

	if !entry.HasStorage() {
		return newErr(CodeUnknown, entry.Name, nil)
	}

	if flags.has(SetBackup) && !checkOnly {
		r.ensureBackup(entry)
	}

	target := entry.live
	var scratch Cell
	if checkOnly {
		target = &scratch
		target.V = entry.live.V
	}

	if rv.node != nil {
		if err := entry.Def.Type.ParseNode(target, rv.node, entry.Def.Priv); err != nil {
			return newErr(CodeInvalid, entry.Name, err)
		}
	} else {
		text := ""
		if rv.text != nil {
			text = *rv.text
		}
		if err := entry.Def.Type.Parse(target, text, entry.Def.Priv); err != nil {
			return newErr(CodeInvalid, entry.Name, err)
		}
	}

	if checkOnly {
		return nil
	}

	if flags.has(SetFromCmdline) {
		entry.isSetFromCmdline = true
	}
	return r.afterCommit(entry, flags)
}

func (r *Root) clear(entry *Entry, flags SetFlags) error {
	outcome, err := r.gate(entry, flags)
	if err != nil {
		return err
	}
	if outcome == gateSkip {
		return nil
	}
	if outcome == gateCheckOnly {
		return nil
	}
	if flags.has(SetBackup) {
		r.ensureBackup(entry)
	}
	entry.Def.Type.Free(entry.live)
	return r.afterCommit(entry, flags)
}

// OptionRequiresParam reports how many textual parameters name expects
// (§6 "option_requires_param"), honoring the "-clr" and "no-" shorthand
// sentinels (both require zero).
func (r *Root) OptionRequiresParam(name string) (int, error) {
	if base, ok := strings.CutSuffix(name, "-clr"); ok {
		if e, code := r.resolve(base); code == CodeOK && e.HasStorage() {
			return 0, nil
		}
	}
	if _, ok := r.negationResolve(name); ok {
		return 0, nil
	}
	e, code := r.resolve(name)
	if code != CodeOK {
		return 0, newErr(CodeUnknown, name, nil)
	}
	if e.Def.Type.Flags().Has(FlagHasChild) {
		return 1, nil
	}
	return e.Def.Type.RequiredParams(), nil
}

// GetEntry resolves name without side effects beyond the usual one-shot
// warning bookkeeping (§6 "get_entry").
func (r *Root) GetEntry(name string) (*Entry, error) {
	e, code := r.resolve(name)
	if code != CodeOK {
		return nil, newErr(CodeUnknown, name, nil)
	}
	return e, nil
}

func strPtr(s string) *string { return &s }
