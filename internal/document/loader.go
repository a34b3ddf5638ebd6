package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMultipleDocuments is returned by Parse for a stream with more than
	// one document.
	ErrMultipleDocuments = errors.New("expected a single YAML document")
	// ErrRecursiveAlias is returned by Parse for an alias that refers to a
	// node containing it.
	ErrRecursiveAlias = errors.New("recursive alias")
)

// Parse parses YAML (or JSON) data into a single alias-free node.
// Empty input yields a null scalar.
func Parse(data []byte) (*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node

	err := dec.Decode(&doc)
	if errors.Is(err, io.EOF) {
		return Null(), nil
	}

	if err != nil {
		return nil, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}

		return nil, ErrMultipleDocuments
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return Null(), nil
		}

		root = doc.Content[0]
	}

	return expand(root, map[*yaml.Node]bool{})
}

// expand copies n with aliases replaced by copies of their targets and
// anchors removed. active holds the nodes currently being expanded.
func expand(n *yaml.Node, active map[*yaml.Node]bool) (*yaml.Node, error) {
	if n.Kind == yaml.AliasNode {
		if n.Alias == nil {
			return nil, fmt.Errorf("alias *%s has no target", n.Value)
		}

		if active[n.Alias] {
			return nil, fmt.Errorf("%w *%s at line %d", ErrRecursiveAlias, n.Value, n.Line)
		}

		out, err := expand(n.Alias, active)
		if err != nil {
			return nil, err
		}

		out.Line, out.Column = n.Line, n.Column

		return out, nil
	}

	out := *n
	out.Anchor = ""

	if len(n.Content) == 0 {
		return &out, nil
	}

	active[n] = true
	defer delete(active, n)

	out.Content = make([]*yaml.Node, len(n.Content))
	for i, c := range n.Content {
		ec, err := expand(c, active)
		if err != nil {
			return nil, err
		}

		out.Content[i] = ec
	}

	return &out, nil
}

// Marshal serializes n as a YAML document with two-space indentation.
func Marshal(n *yaml.Node) ([]byte, error) {
	if n == nil {
		n = Null()
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(n); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	return buf.Bytes(), nil
}
