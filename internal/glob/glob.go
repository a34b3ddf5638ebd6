package glob

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadPattern is wrapped by Compile for malformed patterns.
var ErrBadPattern = errors.New("invalid glob pattern")

var errStop = errors.New("stop")

// Matcher is a compiled include pattern.
type Matcher struct {
	pattern string
	fixed   bool
}

// Entry is one file matched by a pattern.
type Entry struct {
	// Path is the canonical (absolute, symlink-free) path.
	Path string
	// Relative is the path relative to the directory the pattern was
	// iterated from.
	Relative string
}

// Compile validates pattern and returns its Matcher.
func Compile(pattern string) (*Matcher, error) {
	if pattern == "" || !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}

	return &Matcher{pattern: pattern, fixed: isFixed(pattern)}, nil
}

// IsFixed reports whether the pattern contains no unescaped meta characters.
func (m *Matcher) IsFixed() bool {
	return m.fixed
}

// Literal returns the pattern with its escapes removed. For a fixed pattern
// this is the path it names.
func (m *Matcher) Literal() string {
	return unescape(m.pattern)
}

// Iterate lazily yields the regular files under baseDir matching the pattern.
// Relative patterns are anchored at baseDir; absolute patterns ignore it.
// A static prefix that does not exist yields nothing. Each file is yielded
// once per path under which the walk reaches it; callers dedupe by Entry.Path.
func (m *Matcher) Iterate(baseDir string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		prefix, rest := doublestar.SplitPattern(m.pattern)
		prefix = filepath.FromSlash(unescape(prefix))

		root := prefix
		if !filepath.IsAbs(root) {
			root = filepath.Join(baseDir, prefix)
		}

		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return
		}

		err = doublestar.GlobWalk(os.DirFS(root), rest, func(p string, d fs.DirEntry) error {
			full := filepath.Join(root, filepath.FromSlash(p))

			canonical, err := filepath.EvalSymlinks(full)
			if err != nil {
				if !yield(Entry{}, fmt.Errorf("resolving %s: %w", full, err)) {
					return errStop
				}

				return nil
			}

			if st, err := os.Stat(canonical); err != nil || !st.Mode().IsRegular() {
				return nil
			}

			canonical, err = filepath.Abs(canonical)
			if err != nil {
				return err
			}

			entry := Entry{Path: canonical, Relative: filepath.Join(prefix, filepath.FromSlash(p))}
			if !yield(entry, nil) {
				return errStop
			}

			return nil
		}, doublestar.WithFilesOnly(), doublestar.WithNoFollow())
		if err != nil && !errors.Is(err, errStop) {
			yield(Entry{}, fmt.Errorf("matching %q under %s: %w", m.pattern, root, err))
		}
	}
}

// isFixed reports whether pattern has no unescaped glob meta character.
func isFixed(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '*', '?', '[', ']', '{', '}':
			return false
		}
	}

	return true
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}

		b.WriteByte(s[i])
	}

	return b.String()
}
