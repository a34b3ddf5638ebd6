// Package diagnostic collects the non-fatal findings of an include
// resolution.
//
// Key capabilities:
//   - Circular include placeholders substituted in graceful mode
//   - Unknown tags passed through, with a suggestion when one looks like a
//     misspelled directive
//   - Environment variables that were not set
//   - Source positions (file, line, column) for every finding
package diagnostic
