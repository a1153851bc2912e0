package option

import "gopkg.in/yaml.v3"

// Node is the default implementation of the tree-structured dynamic-
// value interchange format that §1 and the Controller API's
// GetProfiles/SetNode treat as an external collaborator. It is a thin
// wrapper around yaml.Node: a host that already has its own node format
// can adapt to/from Node without this package depending on a bespoke
// tree type.
type Node struct {
	inner *yaml.Node
}

// NewScalarNode wraps a plain scalar (string, bool, int, float) as a Node.
func NewScalarNode(v any) *Node {
	n := &yaml.Node{}
	_ = n.Encode(v)
	return &Node{inner: n}
}

// NewListNode wraps an ordered list of (name, value) pairs as a node,
// the shape GetProfiles uses for its (profile name, description) list
// (§6).
func NewListNode(pairs []NamedValue) *Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, p := range pairs {
		entry := &yaml.Node{Kind: yaml.MappingNode}
		keyNode := &yaml.Node{}
		_ = keyNode.Encode(p.Name)
		valNode := &yaml.Node{}
		_ = valNode.Encode(p.Value)
		entry.Content = append(entry.Content, keyNode, valNode)
		n.Content = append(n.Content, entry)
	}
	return &Node{inner: n}
}

// NamedValue is one (name, value-text) pair, the unit Profile pairs and
// the suboption expander both operate on.
type NamedValue struct {
	Name  string
	Value string
}

// String renders the node back to text (Decode into a string works for
// scalar nodes; composite nodes fall back to a YAML dump).
func (n *Node) String() string {
	if n == nil || n.inner == nil {
		return ""
	}
	if n.inner.Kind == yaml.ScalarNode {
		var s string
		if err := n.inner.Decode(&s); err == nil {
			return s
		}
	}
	out, err := yaml.Marshal(n.inner)
	if err != nil {
		return ""
	}
	return string(out)
}

// MarshalYAML lets Node participate directly in a larger yaml.Marshal
// call (e.g. a host embedding GetProfiles' output into its own document).
func (n *Node) MarshalYAML() (any, error) {
	if n == nil {
		return nil, nil
	}
	return n.inner, nil
}
