package opttype

import "optcore/internal/option"

// Removed marks an option that once existed and no longer does.
// registry.go's resolve step reports CodeUnknown for it after a
// one-shot warning built from the Def's Priv field (a plain string
// explaining the removal), so Removed itself carries no state.
type Removed struct{}

func (Removed) Name() string       { return "Removed" }
func (Removed) Size() int          { return 0 }
func (Removed) Flags() option.Flag { return option.FlagIsRemoved }

func (Removed) Parse(*option.Cell, string, any) error           { return nil }
func (Removed) ParseNode(*option.Cell, *option.Node, any) error { return nil }
func (Removed) Copy(*option.Cell, *option.Cell)                 {}
func (Removed) Free(*option.Cell)                               {}
func (Removed) Print(*option.Cell) string                       { return "" }
func (Removed) RequiredParams() int                             { return 0 }
