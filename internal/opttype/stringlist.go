package opttype

import (
	"strings"

	"optcore/internal/option"
)

// StringList is a comma-separated list option. Setting it appends to
// whatever the Cell already holds (mpv's aggregate-option convention:
// repeated assignment accumulates); the resolver-level "<name>-clr"
// alias (§4.2/SPEC_FULL §4) is what actually empties it via Free.
type StringList struct{}

func (StringList) Name() string       { return "StringList" }
func (StringList) Size() int          { return 24 }
func (StringList) Flags() option.Flag { return 0 }

func (StringList) Parse(dst *option.Cell, text string, _ any) error {
	existing, _ := dst.V.([]string)
	merged := append([]string{}, existing...)
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			merged = append(merged, part)
		}
	}
	dst.V = merged
	return nil
}

func (t StringList) ParseNode(dst *option.Cell, node *option.Node, priv any) error {
	return t.Parse(dst, node.String(), priv)
}

func (StringList) Copy(dst, src *option.Cell) {
	v, _ := src.V.([]string)
	dst.V = append([]string{}, v...)
}

func (StringList) Free(c *option.Cell) { c.V = []string{} }

func (StringList) Print(c *option.Cell) string {
	v, _ := c.V.([]string)
	return strings.Join(v, ",")
}

func (StringList) RequiredParams() int { return 1 }
