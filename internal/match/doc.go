// Package match scores tag names against the directive vocabulary so that a
// misspelled tag such as "!inlcude" can be reported with a suggestion.
//
// Key functions:
//   - NormalizeTag: folds case and strips the "!" marker and separators
//   - Levenshtein: computes edit distance between strings
//   - Rank: ranks known tags by similarity to an unknown one
package match
