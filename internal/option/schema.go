package option

import "fmt"

// buildSchema walks a static option-definition tree and materializes
// entries/groups onto r (§4.1). parentGroup is the enclosing group's
// index; parentName is "" at the top level, otherwise the fully
// qualified name of the entry that owns the enclosing namespace (a
// has-child def whose own name was non-empty contributes its name here
// so its children are prefixed by it; an anonymous has-child def
// reuses the parent's own namespace, per step 1).
//
// Schema errors are programming errors: the caller-supplied schema is
// trusted, so buildSchema returns an error only for definitions that
// are internally inconsistent (e.g. a nil Type), never for anything a
// runtime value could trigger.
func buildSchema(r *Root, parentGroup groupIndex, parentEntry int, defs []Def) error {
	parentName := ""
	if parentEntry >= 0 {
		parentName = r.entries[parentEntry].Name
	}
	for i := range defs {
		def := &defs[i]
		if def.Type == nil {
			return fmt.Errorf("option schema: definition %d under %q has no type", i, parentName)
		}

		fqName := def.Name
		if fqName == "" {
			fqName = parentName
		} else if parentName != "" {
			fqName = parentName + "-" + fqName
		}

		entry := &Entry{
			Name:       fqName,
			Def:        def,
			group:      parentGroup,
			childGroup: noGroup,
			shadowIdx:  -1,
		}
		// Hidden from list-options: a plain deprecated option with no
		// replacement, or a removed one. An alias carrying a deprecation
		// message still resolves to something real, so it stays visible
		// (SPEC_FULL §4 "is_hidden suppression").
		typeFlags := def.Type.Flags()
		if (def.Deprecated != "" && !typeFlags.Has(FlagIsAlias)) || typeFlags.Has(FlagIsRemoved) {
			entry.isHidden = true
		}

		switch {
		case def.Type.Flags().Has(FlagHasChild):
			childGroup := groupIndex(len(r.groups))
			entry.childGroup = childGroup
			r.groups = append(r.groups, &Group{parent: parentGroup, name: fqName})

			parentIdx := -1
			if def.Name != "" {
				parentIdx = len(r.entries)
				r.entries = append(r.entries, entry)
				r.groups[parentGroup].entries = append(r.groups[parentGroup].entries, parentIdx)
			}

			var children []Def
			if def.Children != nil {
				children = def.Children.Definitions
			}
			if err := buildSchema(r, childGroup, parentIdx, children); err != nil {
				return err
			}
			continue

		default:
			cell := &Cell{}
			seedDefault(def, cell)
			entry.live = cell
			// shadowIdx stays -1 until CreateShadow assigns slots, in
			// declaration order, over every storage-bearing entry.
		}

		if def.Name != "" {
			r.entries = append(r.entries, entry)
			r.groups[parentGroup].entries = append(r.groups[parentGroup].entries, len(r.entries)-1)
		}
	}
	return nil
}

// seedDefault initializes a freshly allocated cell from the
// definition's default (§4.1 step 5): zero it (Go's zero value for
// Cell.V, i.e. nil), then apply the effective default via the type
// handler's Copy, using a throwaway cell wrapping def.Default so every
// type goes through the same Copy path regardless of whether its
// default is a value literal or something requiring deep-copy (a
// slice-typed default, for instance).
func seedDefault(def *Def, cell *Cell) {
	if def.Default == nil {
		return
	}
	src := &Cell{V: def.Default}
	def.Type.Copy(cell, src)
}
