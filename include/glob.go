package include

import (
	"slices"

	"gopkg.in/yaml.v3"

	"yaml-include/directive"
	"yaml-include/internal/content"
	"yaml-include/internal/document"
	"yaml-include/internal/glob"
)

// includeGlob loads every file matching m and merges them into one mapping,
// each under its file stem. Matches are taken in canonical path order; the
// including document never matches itself.
func (n *node) includeGlob(
	d directive.Directive,
	v *yaml.Node,
	m *glob.Matcher,
	format func(string) content.Format,
) (*yaml.Node, error) {
	seen := make(map[string]bool)

	var matches []string

	for entry, err := range m.Iterate(n.dir) {
		if err != nil {
			return nil, &IOError{Path: d.Target, Err: err}
		}

		if seen[entry.Path] {
			continue
		}

		seen[entry.Path] = true
		matches = append(matches, entry.Path)
	}

	slices.Sort(matches)

	n.s.logger.Debug("glob matched", "from", n.path, "pattern", d.Target, "matches", len(matches))

	merged := &yaml.Node{Kind: yaml.MappingNode, Tag: document.MapTag}

	for _, path := range matches {
		if path == n.path {
			continue
		}

		frag, err := n.load(d, v, path, format(path))
		if err != nil {
			return nil, err
		}

		stem := content.Stem(path)
		if stem == "" {
			return nil, &IncludeError{Path: path, Reason: "bad file name"}
		}

		if err := document.Merge(merged, document.Mapping(stem, frag)); err != nil {
			return nil, &MergeError{Path: path, Err: err}
		}
	}

	return merged, nil
}
