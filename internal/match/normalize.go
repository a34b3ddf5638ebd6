package match

import (
	"strings"
	"unicode"
)

// NormalizeTag folds a tag name for fuzzy comparison:
// the leading "!" markers are dropped, case is folded and the separators
// "_", "-" and whitespace are removed.
//
//	"!Include_YAML" -> "includeyaml"
//	"!include-txt"  -> "includetxt"
func NormalizeTag(s string) string {
	s = strings.TrimLeft(s, "!")

	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}
