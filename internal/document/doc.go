// Package document parses and serializes the YAML trees the resolver works
// on.
//
// Trees are *yaml.Node values. Parsing expands aliases into copies and drops
// anchors, so every node in a parsed tree is owned by exactly one parent and
// may be replaced in place. Scalars carry their resolved short tag ("!!str",
// "!!int", ...); application tags such as "!include" are kept verbatim.
//
// Key capabilities:
//   - Parse / Marshal over gopkg.in/yaml.v3
//   - Deep merge of mappings and sequences
//   - Plain Go, JSON and CBOR renderings with application tags removed
package document
