package document

import (
	"gopkg.in/yaml.v3"

	"yaml-include/directive"
)

// Short tags of the YAML core schema.
const (
	NullTag = "!!null"
	StrTag  = "!!str"
	MapTag  = "!!map"
	SeqTag  = "!!seq"
)

// Null returns a null scalar.
func Null() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: NullTag, Value: "null"}
}

// String returns a string scalar.
func String(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: StrTag, Value: s}
}

// Mapping returns a mapping of string keys to values, in argument order.
// kv alternates keys and values.
func Mapping(kv ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: MapTag}

	for i := 0; i+1 < len(kv); i += 2 {
		n.Content = append(n.Content, String(kv[i].(string)), kv[i+1].(*yaml.Node))
	}

	return n
}

// IsString reports whether n would load as a string if its tag were removed.
func IsString(n *yaml.Node) bool {
	if n.Kind != yaml.ScalarNode {
		return false
	}

	probe := *n
	probe.Tag = ""
	probe.Style &^= yaml.TaggedStyle

	return probe.ShortTag() == StrTag
}

// StripTags returns a copy of n with every application tag removed, leaving
// plain YAML data.
func StripTags(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}

	out := *n
	if directive.IsLocal(out.Tag) {
		out.Tag = ""
		out.Style &^= yaml.TaggedStyle
	}

	if n.Content != nil {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = StripTags(c)
		}
	}

	return &out
}
