// Package opttype provides concrete Option Type Interface
// implementations: the scalar/list/choice/group handlers that
// internal/option's core treats as an external collaborator.
package opttype

import (
	"strings"

	"optcore/internal/option"
)

// Flag is a boolean option. It accepts the bare (zero-parameter) form
// — an empty text means "yes" — and negates via the registry's
// standard "no-" rewriting.
type Flag struct{}

func (Flag) Name() string       { return "Flag" }
func (Flag) Size() int          { return 1 }
func (Flag) Flags() option.Flag { return option.FlagNegatable }

func (Flag) Parse(dst *option.Cell, text string, _ any) error {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "yes", "true", "1":
		dst.V = true
	case "no", "false", "0":
		dst.V = false
	default:
		return &strconvLikeError{kind: "Flag", text: text}
	}
	return nil
}

func (f Flag) ParseNode(dst *option.Cell, node *option.Node, priv any) error {
	return f.Parse(dst, node.String(), priv)
}

func (Flag) Copy(dst, src *option.Cell) { dst.V = src.V }
func (Flag) Free(c *option.Cell)        { c.V = false }

func (Flag) Print(c *option.Cell) string {
	if v, _ := c.V.(bool); v {
		return "yes"
	}
	return "no"
}

func (Flag) RequiredParams() int { return 0 }

type strconvLikeError struct {
	kind string
	text string
}

func (e *strconvLikeError) Error() string {
	return e.kind + ": invalid value " + "\"" + e.text + "\""
}
