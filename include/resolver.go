package include

import (
	"log/slog"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"yaml-include/directive"
	"yaml-include/internal/content"
	"yaml-include/internal/deps"
	"yaml-include/internal/diagnostic"
	"yaml-include/internal/document"
)

// Config holds configuration for the resolution process.
type Config struct {
	// Strict fails on circular includes instead of substituting a !circular
	// placeholder.
	Strict bool
	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the default resolution configuration: graceful
// circular handling, no logging.
func DefaultConfig() Config {
	return Config{
		Strict: false,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// Resolver resolves documents. A Resolver holds no state between calls and
// may be reused.
type Resolver struct {
	config Config
	logger *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(config Config) *Resolver {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Resolver{config: config, logger: logger}
}

// Resolve reads the document at path and resolves every directive in it.
func (r *Resolver) Resolve(path string) (*Result, error) {
	root, err := canonicalize(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	s := &session{
		strict: r.config.Strict,
		logger: r.logger,
		graph:  deps.New(),
	}

	n, err := s.newNode(root, nil)
	if err != nil {
		return nil, err
	}

	doc, err := n.resolve()
	if err != nil {
		return nil, err
	}

	return &Result{
		Root:         root,
		Document:     doc,
		Diagnostics:  s.diagnostics,
		Dependencies: s.graph,
	}, nil
}

// session is the state of one Resolve call.
// diagnostics and graph are only written to.
type session struct {
	strict      bool
	logger      *slog.Logger
	diagnostics diagnostic.Diagnostics
	graph       *deps.Graph
}

// node is the resolution context of one document.
type node struct {
	s    *session
	path string
	dir  string
	seen *ancestry
}

// newNode creates the context for the document at the canonical path, or
// fails with CircularReferenceError if the document is one of its ancestors.
func (s *session) newNode(path string, seen *ancestry) (*node, error) {
	if seen.contains(path) {
		return nil, &CircularReferenceError{Path: path, Chain: append(seen.paths(), path)}
	}

	dir := filepath.Dir(path)
	if dir == path {
		return nil, &NoParentError{Path: path}
	}

	return &node{s: s, path: path, dir: dir, seen: seen.push(path)}, nil
}

// resolve loads the document and resolves it.
func (n *node) resolve() (*yaml.Node, error) {
	n.s.logger.Debug("resolving document", "path", n.path)

	f, err := n.read(n.path)
	if err != nil {
		return nil, err
	}

	data, err := f.Document()
	if err != nil {
		return nil, &IOError{Path: n.path, Err: err}
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, &ParsingError{Path: n.path, Err: err}
	}

	return n.transform(doc)
}

// read reads a file and records it in the dependency graph.
func (n *node) read(path string) (*content.File, error) {
	f, err := content.Read(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	n.s.graph.Add(path, f.Digest())

	return f, nil
}

// transform returns v with every directive resolved. Mapping keys are never
// transformed and key order is kept.
func (n *node) transform(v *yaml.Node) (*yaml.Node, error) {
	if directive.IsLocal(v.Tag) {
		return n.dispatch(v)
	}

	switch v.Kind {
	case yaml.SequenceNode:
		out := *v
		out.Content = make([]*yaml.Node, len(v.Content))

		for i, c := range v.Content {
			tc, err := n.transform(c)
			if err != nil {
				return nil, err
			}

			out.Content[i] = tc
		}

		return &out, nil
	case yaml.MappingNode:
		out := *v
		out.Content = make([]*yaml.Node, len(v.Content))

		for i := 0; i+1 < len(v.Content); i += 2 {
			tv, err := n.transform(v.Content[i+1])
			if err != nil {
				return nil, err
			}

			out.Content[i], out.Content[i+1] = v.Content[i], tv
		}

		return &out, nil
	default:
		return v, nil
	}
}

func (n *node) position(v *yaml.Node) diagnostic.Position {
	return diagnostic.Position{File: n.path, Line: v.Line, Column: v.Column}
}
