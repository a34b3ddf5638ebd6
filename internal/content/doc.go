// Package content reads include targets from disk and turns their bytes into
// the form the resolver substitutes: a YAML/JSON document, UTF-8 text, or a
// base64 record.
//
// Key capabilities:
//   - Classification by extension, case-insensitive, after any compression
//     suffix (.gz, .zst, .lz4) is removed
//   - Transparent decompression for document and text loads
//   - JSONC comment and trailing comma stripping for .json and .jsonc
//   - BLAKE3-256 digests of on-disk bytes
package content
