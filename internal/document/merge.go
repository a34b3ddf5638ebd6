package document

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"yaml-include/directive"
)

// ErrIncompatible is returned by Merge when two values cannot be combined.
var ErrIncompatible = errors.New("incompatible values")

// Merge deep-merges src into dst in place:
//   - mapping into mapping: keys missing from dst are appended in src order,
//     shared keys are merged recursively;
//   - sequence into sequence: src elements are appended.
//
// Any other pairing, including values carrying an application tag, fails
// with ErrIncompatible. dst may be partially modified on failure.
func Merge(dst, src *yaml.Node) error {
	if directive.IsLocal(dst.Tag) || directive.IsLocal(src.Tag) {
		return fmt.Errorf("%w: cannot merge %s into %s", ErrIncompatible, describe(src), describe(dst))
	}

	switch {
	case dst.Kind == yaml.MappingNode && src.Kind == yaml.MappingNode:
		index := make(map[string]int, len(dst.Content)/2)
		for i := 0; i+1 < len(dst.Content); i += 2 {
			index[keyOf(dst.Content[i])] = i + 1
		}

		for i := 0; i+1 < len(src.Content); i += 2 {
			k, v := src.Content[i], src.Content[i+1]

			at, ok := index[keyOf(k)]
			if !ok {
				dst.Content = append(dst.Content, k, v)
				index[keyOf(k)] = len(dst.Content) - 1

				continue
			}

			if err := Merge(dst.Content[at], v); err != nil {
				return fmt.Errorf("key %q: %w", k.Value, err)
			}
		}

		return nil
	case dst.Kind == yaml.SequenceNode && src.Kind == yaml.SequenceNode:
		dst.Content = append(dst.Content, src.Content...)

		return nil
	default:
		return fmt.Errorf("%w: cannot merge %s into %s", ErrIncompatible, describe(src), describe(dst))
	}
}

// keyOf returns the identity of a mapping key: two keys are the same when they
// load as equal values.
func keyOf(k *yaml.Node) string {
	if k.Kind == yaml.ScalarNode {
		return k.ShortTag() + "\x00" + k.Value
	}

	data, err := yaml.Marshal(k)
	if err != nil {
		return fmt.Sprintf("%p", k)
	}

	return string(data)
}

func describe(n *yaml.Node) string {
	if directive.IsLocal(n.Tag) {
		return n.Tag + " value"
	}

	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	default:
		return n.ShortTag() + " scalar"
	}
}
