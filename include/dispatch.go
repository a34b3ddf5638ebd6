package include

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"yaml-include/directive"
	"yaml-include/internal/content"
	"yaml-include/internal/diagnostic"
	"yaml-include/internal/document"
	"yaml-include/internal/glob"
	"yaml-include/internal/match"
)

// dispatch resolves a node carrying an application tag.
func (n *node) dispatch(v *yaml.Node) (*yaml.Node, error) {
	d := directive.Directive{Kind: directive.Parse(v.Tag), Tag: v.Tag, Target: v.Value}

	if d.Kind != directive.KindUnknown && !document.IsString(v) {
		return nil, &InvalidStringValueError{Tag: v.Tag, Value: describe(v), Path: n.path, Line: v.Line}
	}

	switch {
	case d.Kind == directive.KindEnv:
		return n.env(d, v), nil
	case d.Kind.IsInclude():
		return n.include(d, v, formatOf(d.Kind))
	default:
		n.unknown(v)

		return v, nil
	}
}

// formatOf returns how an include directive of kind k loads each file.
func formatOf(k directive.Kind) func(string) content.Format {
	switch k {
	case directive.KindIncludeYAML:
		return forced(content.FormatDocument)
	case directive.KindIncludeText:
		return forced(content.FormatText)
	case directive.KindIncludeBinary:
		return forced(content.FormatBinary)
	default:
		return content.Classify
	}
}

func forced(f content.Format) func(string) content.Format {
	return func(string) content.Format { return f }
}

func describe(v *yaml.Node) string {
	switch v.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	}

	if v.Value == "" {
		return "an empty value"
	}

	probe := *v
	probe.Tag = ""
	probe.Style &^= yaml.TaggedStyle

	return fmt.Sprintf("%s %q", probe.ShortTag(), v.Value)
}

// env substitutes an environment variable. Unset variables and values that
// are not valid UTF-8 become null.
func (n *node) env(d directive.Directive, v *yaml.Node) *yaml.Node {
	val, ok := os.LookupEnv(d.Target)

	switch {
	case !ok:
		n.s.diagnostics.AddInfo(diagnostic.CodeEnvUnset,
			fmt.Sprintf("environment variable %s is not set", d.Target), n.position(v))

		return document.Null()
	case !utf8.ValidString(val):
		n.s.diagnostics.AddInfo(diagnostic.CodeEnvUnset,
			fmt.Sprintf("environment variable %s is not valid UTF-8", d.Target), n.position(v))

		return document.Null()
	default:
		return document.String(val)
	}
}

// include resolves an include directive. format picks how each file is
// loaded.
func (n *node) include(d directive.Directive, v *yaml.Node, format func(string) content.Format) (*yaml.Node, error) {
	m, err := glob.Compile(d.Target)
	if err != nil {
		return nil, &IncludeError{Path: d.Target, Reason: "invalid pattern", Err: err}
	}

	if !m.IsFixed() {
		return n.includeGlob(d, v, m, format)
	}

	path, err := n.resolvePath(m.Literal())
	if err != nil {
		return nil, err
	}

	return n.load(d, v, path, format(path))
}

// load substitutes one file.
func (n *node) load(d directive.Directive, v *yaml.Node, path string, format content.Format) (*yaml.Node, error) {
	n.s.logger.Debug("including file", "from", n.path, "path", path, "format", format)

	switch format {
	case content.FormatDocument:
		return n.loadDocument(d, v, path)
	case content.FormatText:
		return n.loadText(path)
	case content.FormatBinary:
		return n.loadBinary(path)
	default:
		return nil, &IncludeError{Path: path, Reason: "unknown content format " + format.String()}
	}
}

// loadDocument resolves a YAML or JSON file in its own context. Only a
// circular include of the file itself is recovered from; failures deeper in
// the file are returned as they are.
func (n *node) loadDocument(d directive.Directive, v *yaml.Node, path string) (*yaml.Node, error) {
	child, err := n.s.newNode(path, n.seen)
	if err != nil {
		var circular *CircularReferenceError
		if n.s.strict || !errors.As(err, &circular) {
			return nil, err
		}

		n.s.logger.Debug("circular include replaced", "from", n.path, "path", path)
		n.s.diagnostics.AddWarning(diagnostic.CodeCircularReference,
			fmt.Sprintf("circular include of %s replaced by %s", path, directive.TagCircular), n.position(v))

		return &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   directive.TagCircular,
			Value: d.Target,
			Style: yaml.DoubleQuotedStyle,
		}, nil
	}

	n.s.graph.Link(n.path, path)

	return child.resolve()
}

func (n *node) loadText(path string) (*yaml.Node, error) {
	n.s.graph.Link(n.path, path)

	f, err := n.read(path)
	if err != nil {
		return nil, err
	}

	text, err := f.Text()
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	return document.String(text), nil
}

func (n *node) loadBinary(path string) (*yaml.Node, error) {
	n.s.graph.Link(n.path, path)

	f, err := n.read(path)
	if err != nil {
		return nil, err
	}

	rec := document.Mapping(
		"filename", document.String(f.Name()),
		"base64", document.String(f.Base64()),
	)
	rec.Tag = directive.TagBinary

	return rec, nil
}

// unknown records a tag outside the directive vocabulary. Tags produced by
// resolution are expected and not reported.
func (n *node) unknown(v *yaml.Node) {
	if v.Tag == directive.TagCircular || v.Tag == directive.TagBinary {
		return
	}

	pos := n.position(v)

	n.s.diagnostics.AddInfo(diagnostic.CodeUnknownTag, fmt.Sprintf("unknown tag %s left unchanged", v.Tag), pos)

	if suggestions := match.Suggest(v.Tag, directive.Tags()); len(suggestions) > 0 {
		n.s.diagnostics.AddWarning(diagnostic.CodePossibleTypo,
			fmt.Sprintf("tag %s is not a directive", v.Tag), pos, suggestions...)
	}
}
