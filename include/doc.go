// Package include resolves a YAML document annotated with include and
// environment directives into one fully expanded document.
//
// Resolution pipeline:
//  1. Canonicalize the root path and parse it
//  2. Walk the tree depth-first; mappings and sequences are rebuilt, scalars
//     are kept
//  3. Each tagged node is dispatched on its tag:
//     - !env NAME substitutes the variable, or null when unset
//     - !include PATH substitutes the file, parsed, as text, or as a
//     !binary record depending on its extension
//     - !include_yaml, !include_text and !include_bin force the content kind
//     - any other tag is kept as written
//  4. A target with glob meta characters merges every match into one mapping
//     keyed by file stem
//  5. Parsed fragments are resolved recursively against their own directory
//
// An include of a document that is already being resolved further up the
// chain is circular. It is replaced by a !circular placeholder, or fails with
// CircularReferenceError when Config.Strict is set.
package include
