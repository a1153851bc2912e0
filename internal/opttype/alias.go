package opttype

import "optcore/internal/option"

// Alias marks an option that has been renamed: registry.go's resolve
// step reads the replacement name out of the Def's Priv field (a
// plain string) and redirects there before any Type method is ever
// invoked, so Alias itself carries no state and its methods are
// unreachable in normal operation.
type Alias struct{}

func (Alias) Name() string       { return "Alias" }
func (Alias) Size() int          { return 0 }
func (Alias) Flags() option.Flag { return option.FlagIsAlias }

func (Alias) Parse(*option.Cell, string, any) error           { return nil }
func (Alias) ParseNode(*option.Cell, *option.Node, any) error { return nil }
func (Alias) Copy(*option.Cell, *option.Cell)                 {}
func (Alias) Free(*option.Cell)                               {}
func (Alias) Print(*option.Cell) string                       { return "" }
func (Alias) RequiredParams() int                             { return 0 }
