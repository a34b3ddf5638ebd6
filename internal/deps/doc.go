// Package deps records the files read while resolving one document and the
// include edges between them.
//
// Key capabilities:
//   - Content digest per file, taken from the on-disk bytes
//   - Include edges from the including document to each fragment it read
//   - Deterministic dependency order (fragments before the documents that
//     include them, ties broken by first read)
package deps
