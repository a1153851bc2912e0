package opttype

import (
	"fmt"
	"strconv"
	"strings"

	"optcore/internal/option"
)

// Int is a bounded integer option. Min/Max are inclusive and optional
// (nil means unbounded on that side); they are baked into the type
// instance per-definition, the way a schema hands each integer option
// its own Int{Min, Max} rather than threading bounds through Priv.
type Int struct {
	Min, Max *int64
}

func (Int) Name() string       { return "Integer" }
func (Int) Size() int          { return 8 }
func (Int) Flags() option.Flag { return 0 }

func (t Int) Parse(dst *option.Cell, text string, _ any) error {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return fmt.Errorf("Integer: %w", err)
	}
	if t.Min != nil && v < *t.Min {
		return fmt.Errorf("Integer: %d is below the minimum of %d", v, *t.Min)
	}
	if t.Max != nil && v > *t.Max {
		return fmt.Errorf("Integer: %d is above the maximum of %d", v, *t.Max)
	}
	dst.V = v
	return nil
}

func (t Int) ParseNode(dst *option.Cell, node *option.Node, priv any) error {
	return t.Parse(dst, node.String(), priv)
}

func (Int) Copy(dst, src *option.Cell) { dst.V = src.V }
func (Int) Free(c *option.Cell)        { c.V = int64(0) }

func (Int) Print(c *option.Cell) string {
	v, _ := c.V.(int64)
	return strconv.FormatInt(v, 10)
}

func (Int) RequiredParams() int { return 1 }
