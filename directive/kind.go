package directive

import "slices"

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies a document tag.
type Kind int

const (
	KindUnknown Kind = iota // any tag outside the directive vocabulary, passed through unchanged

	KindEnv           // !env
	KindInclude       // !include: content kind chosen by file extension
	KindIncludeYAML   // !include_yaml, !include_yml
	KindIncludeText   // !include_text, !include_txt, !file
	KindIncludeBinary // !include_bin
)

// Tags produced by resolution.
const (
	TagCircular = "!circular"
	TagBinary   = "!binary"
)

var tags = map[string]Kind{
	"!env":          KindEnv,
	"!include":      KindInclude,
	"!include_yaml": KindIncludeYAML,
	"!include_yml":  KindIncludeYAML,
	"!include_text": KindIncludeText,
	"!include_txt":  KindIncludeText,
	"!file":         KindIncludeText,
	"!include_bin":  KindIncludeBinary,
}

// Parse maps a tag name to its Kind. Matching is case-sensitive.
func Parse(tag string) Kind {
	if k, ok := tags[tag]; ok {
		return k
	}

	return KindUnknown
}

// IsInclude reports whether the kind reads a file.
func (k Kind) IsInclude() bool {
	switch k {
	default:
		return false
	case KindInclude, KindIncludeYAML, KindIncludeText, KindIncludeBinary:
		return true
	}
}

// Tags returns every recognized tag name in sorted order.
func Tags() []string {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// IsLocal reports whether tag is a local (application) tag such as "!include",
// as opposed to a core schema tag such as "!!str".
func IsLocal(tag string) bool {
	return len(tag) > 1 && tag[0] == '!' && tag[1] != '!'
}

// Directive is the parsed form of a tagged node.
type Directive struct {
	Kind Kind
	// Tag is the tag as written in the document.
	Tag string
	// Target is a path, a glob pattern or an environment variable name.
	Target string
}
