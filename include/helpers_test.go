package include

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"yaml-include/directive"
	"yaml-include/internal/document"
)

// canonical turns a tree into comparable Go values. A node with an
// application tag becomes a single-key map from the tag to its content, so
// tags take part in the comparison.
func canonical(t *testing.T, n *yaml.Node) any {
	t.Helper()

	if directive.IsLocal(n.Tag) {
		inner := *n
		inner.Tag = ""
		inner.Style &^= yaml.TaggedStyle

		return map[string]any{n.Tag: canonical(t, &inner)}
	}

	switch n.Kind {
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			out[n.Content[i].Value] = canonical(t, n.Content[i+1])
		}

		return out
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			out = append(out, canonical(t, c))
		}

		return out
	default:
		var v any
		require.NoError(t, n.Decode(&v))

		return v
	}
}

func requireSameTree(t *testing.T, want, got *yaml.Node) {
	t.Helper()

	if diff := cmp.Diff(canonical(t, want), canonical(t, got)); diff != "" {
		t.Fatalf("resolved tree mismatch (-want +got):\n%s", diff)
	}
}

func parseFile(t *testing.T, path string) *yaml.Node {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	n, err := document.Parse(data)
	require.NoError(t, err)

	return n
}

// writeTree creates files under a fresh canonical temp dir and returns it.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	for name, data := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	}

	return dir
}

func resolve(t *testing.T, path string, strict bool) *Result {
	t.Helper()

	res, err := NewResolver(Config{Strict: strict}).Resolve(path)
	require.NoError(t, err)

	return res
}
