package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// Value decodes n into plain Go values (maps, slices, strings, numbers,
// booleans, nil), ignoring application tags.
func Value(n *yaml.Node) (any, error) {
	var v any
	if n == nil {
		return v, nil
	}

	if err := StripTags(n).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return v, nil
}

// MarshalJSON renders n as indented JSON, ignoring application tags.
func MarshalJSON(n *yaml.Node) ([]byte, error) {
	if n == nil {
		n = Null()
	}

	data, err := yaml.Marshal(StripTags(n))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	raw, err := sigsyaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert document to JSON: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}

	out.WriteByte('\n')

	return out.Bytes(), nil
}

// MarshalCBOR renders n as CBOR using the core deterministic encoding, so
// equal documents always produce equal bytes.
func MarshalCBOR(n *yaml.Node) ([]byte, error) {
	v, err := Value(n)
	if err != nil {
		return nil, err
	}

	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to build CBOR encoder: %w", err)
	}

	data, err := em.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal CBOR: %w", err)
	}

	return data, nil
}
