package deps

import (
	"fmt"
	"slices"
	"strings"
)

// File is one file read during resolution.
type File struct {
	// Path is the canonical path.
	Path string
	// Digest is the hex BLAKE3-256 digest of the on-disk bytes.
	Digest string
}

// Graph is the set of files read during one resolution plus the include
// edges between them. The zero value is not usable; call New.
type Graph struct {
	files []File
	index map[string]int
	// children[i] holds the indices read by file i, without duplicates.
	children [][]int
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// Add records a file read. The first digest recorded for a path wins.
func (g *Graph) Add(path, digest string) {
	g.indexOf(path, digest)
}

// Link records that parent included child. Both are added if unseen.
func (g *Graph) Link(parent, child string) {
	p := g.indexOf(parent, "")
	c := g.indexOf(child, "")

	if !slices.Contains(g.children[p], c) {
		g.children[p] = append(g.children[p], c)
	}
}

func (g *Graph) indexOf(path, digest string) int {
	if i, ok := g.index[path]; ok {
		if g.files[i].Digest == "" {
			g.files[i].Digest = digest
		}

		return i
	}

	i := len(g.files)
	g.index[path] = i
	g.files = append(g.files, File{Path: path, Digest: digest})
	g.children = append(g.children, nil)

	return i
}

// Len returns the number of files recorded.
func (g *Graph) Len() int {
	return len(g.files)
}

// Files returns every file in first-read order.
func (g *Graph) Files() []File {
	return slices.Clone(g.files)
}

// Lookup returns the file recorded for path.
func (g *Graph) Lookup(path string) (File, bool) {
	i, ok := g.index[path]
	if !ok {
		return File{}, false
	}

	return g.files[i], true
}

// Dependencies returns the paths directly included by path, in include order.
func (g *Graph) Dependencies(path string) []string {
	i, ok := g.index[path]
	if !ok {
		return nil
	}

	out := make([]string, 0, len(g.children[i]))
	for _, c := range g.children[i] {
		out = append(out, g.files[c].Path)
	}

	return out
}

// Order returns every file with fragments before the documents that include
// them. Files that become available together keep first-read order.
// A cycle, which graceful resolution can record across sibling branches, is
// reported as an error wrapping ErrCycle.
func (g *Graph) Order() ([]File, error) {
	order, stuck := topoSort(g.children)
	if len(stuck) > 0 {
		paths := make([]string, len(stuck))
		for k, i := range stuck {
			paths[k] = g.files[i].Path
		}

		return nil, fmt.Errorf("%w between %s", ErrCycle, strings.Join(paths, ", "))
	}

	out := make([]File, len(order))
	for k, i := range order {
		out[k] = g.files[i]
	}

	return out, nil
}
