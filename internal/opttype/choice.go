package opttype

import (
	"fmt"
	"strings"

	"optcore/internal/option"
)

// Choice is an enumerated-string option: exactly one of Values, case-
// insensitively matched. Like Flag it participates in "no-" negation,
// the way m_config treats a choice with "yes"/"no" members as
// negatable (§4.2).
type Choice struct {
	Values []string
}

func (Choice) Name() string       { return "Choice" }
func (Choice) Size() int          { return 16 }
func (Choice) Flags() option.Flag { return option.FlagNegatable }

func (t Choice) Parse(dst *option.Cell, text string, _ any) error {
	text = strings.TrimSpace(text)
	for _, v := range t.Values {
		if strings.EqualFold(v, text) {
			dst.V = v
			return nil
		}
	}
	return fmt.Errorf("Choice: %q is not one of %s", text, strings.Join(t.Values, ", "))
}

func (t Choice) ParseNode(dst *option.Cell, node *option.Node, priv any) error {
	return t.Parse(dst, node.String(), priv)
}

func (Choice) Copy(dst, src *option.Cell) { dst.V = src.V }
func (Choice) Free(c *option.Cell)        { c.V = "" }

func (Choice) Print(c *option.Cell) string {
	s, _ := c.V.(string)
	return s
}

func (Choice) RequiredParams() int { return 1 }
