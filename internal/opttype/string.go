package opttype

import "optcore/internal/option"

// String is a plain text option; it performs no validation beyond
// accepting any text.
type String struct{}

func (String) Name() string       { return "String" }
func (String) Size() int          { return 16 }
func (String) Flags() option.Flag { return 0 }

func (String) Parse(dst *option.Cell, text string, _ any) error {
	dst.V = text
	return nil
}

func (String) ParseNode(dst *option.Cell, node *option.Node, _ any) error {
	dst.V = node.String()
	return nil
}

func (String) Copy(dst, src *option.Cell) { dst.V = src.V }
func (String) Free(c *option.Cell)        { c.V = "" }

func (String) Print(c *option.Cell) string {
	s, _ := c.V.(string)
	return s
}

func (String) RequiredParams() int { return 1 }

// WildcardString is String plus FlagAllowWildcard, for schema entries
// whose name ends in "*" and should match any name sharing the prefix
// (§4.2), e.g. a catch-all "vf-opt-*" passthrough.
type WildcardString struct{ String }

func (WildcardString) Flags() option.Flag { return option.FlagAllowWildcard }
