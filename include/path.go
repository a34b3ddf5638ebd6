package include

import (
	"errors"
	"os"
	"path/filepath"
)

var errNotRegular = errors.New("not a regular file")

// canonicalize returns the absolute, symlink-free form of path.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

// resolvePath turns a fixed directive target into the canonical path of an
// existing regular file. Relative targets are taken from the directory of the
// document being resolved.
func (n *node) resolvePath(target string) (string, error) {
	p := filepath.FromSlash(target)
	if !filepath.IsAbs(p) {
		p = filepath.Join(n.dir, p)
	}

	info, err := os.Stat(p)
	if err != nil {
		return "", &IncludeError{Path: p, Reason: "not a file", Err: err}
	}

	if !info.Mode().IsRegular() {
		return "", &IncludeError{Path: p, Reason: "not a file", Err: errNotRegular}
	}

	canonical, err := canonicalize(p)
	if err != nil {
		return "", &IOError{Path: p, Err: err}
	}

	return canonical, nil
}
