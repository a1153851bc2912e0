package opttype

import "optcore/internal/option"

// Group marks a has-child option: its own text form is a flattened
// sub-option blob ("a=x,b=y"), handled entirely by the core's
// setSubOptions, so Group's own Parse/ParseNode/Copy/Free/Print are
// never reached in practice — they exist only to satisfy Type.
type Group struct{}

func (Group) Name() string       { return "Group" }
func (Group) Size() int          { return 0 }
func (Group) Flags() option.Flag { return option.FlagHasChild }

func (Group) Parse(*option.Cell, string, any) error           { return nil }
func (Group) ParseNode(*option.Cell, *option.Node, any) error { return nil }
func (Group) Copy(*option.Cell, *option.Cell)                 {}
func (Group) Free(*option.Cell)                               {}
func (Group) Print(*option.Cell) string                       { return "" }
func (Group) RequiredParams() int                             { return 1 }
