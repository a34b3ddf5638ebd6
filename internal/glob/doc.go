// Package glob matches include targets against the file system.
//
// Patterns use the doublestar syntax: "*", "**", "?", "[...]", "{a,b}" and
// "\" escapes, with "/" as the separator. A pattern without unescaped meta
// characters is fixed and names exactly one path.
//
// Matching walks only the directory named by the static prefix of the
// pattern, so "conf/*.yaml" never visits anything outside "conf".
package glob
