package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse_Scalars(t *testing.T) {
	n, err := Parse([]byte("a: 1\nb: \"1\"\nc: true\nd: ~\ne: x\n"))
	require.NoError(t, err)
	require.Equal(t, yaml.MappingNode, n.Kind)
	require.Len(t, n.Content, 10)

	tags := []string{}
	for i := 1; i < len(n.Content); i += 2 {
		tags = append(tags, n.Content[i].ShortTag())
	}

	assert.Equal(t, []string{"!!int", "!!str", "!!bool", "!!null", "!!str"}, tags)
}

func TestParse_LocalTagKept(t *testing.T) {
	n, err := Parse([]byte("a: !include sub.yaml\n"))
	require.NoError(t, err)

	v := n.Content[1]
	assert.Equal(t, "!include", v.Tag)
	assert.Equal(t, "sub.yaml", v.Value)
	assert.Equal(t, 1, v.Line)
	assert.Equal(t, 4, v.Column)
}

func TestParse_Empty(t *testing.T) {
	for _, src := range []string{"", "\n", "# only a comment\n"} {
		n, err := Parse([]byte(src))
		require.NoError(t, err)
		assert.Equal(t, NullTag, n.ShortTag(), "%q", src)
	}
}

func TestParse_JSON(t *testing.T) {
	n, err := Parse([]byte(`{"a": [1, "two", null]}`))
	require.NoError(t, err)

	v, err := Value(n)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": []any{1, "two", nil}}, v)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		is   error
	}{
		{name: "syntax", src: "a: [1, 2\n"},
		{name: "unknown anchor", src: "a: *nope\n"},
		{name: "multiple documents", src: "a: 1\n---\nb: 2\n", is: ErrMultipleDocuments},
		{name: "recursive alias", src: "a: &x [1, *x]\n", is: ErrRecursiveAlias},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)

			if tt.is != nil {
				require.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestParse_AliasesExpanded(t *testing.T) {
	n, err := Parse([]byte("base: &b {x: 1}\none: *b\ntwo: *b\n"))
	require.NoError(t, err)

	one, two := n.Content[3], n.Content[5]
	assert.Equal(t, yaml.MappingNode, one.Kind)
	assert.Equal(t, yaml.MappingNode, two.Kind)
	assert.NotSame(t, one, two)
	assert.Empty(t, n.Content[1].Anchor)

	out, err := Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, "base: {x: 1}\none: {x: 1}\ntwo: {x: 1}\n", string(out))

	// Copies are independent.
	one.Content[1].Value = "changed"
	assert.Equal(t, "1", two.Content[1].Value)
	assert.Equal(t, "1", n.Content[1].Content[1].Value)
}

func TestMarshal(t *testing.T) {
	n, err := Parse([]byte("a:\n    - 1\n    - {b: c}\n"))
	require.NoError(t, err)

	out, err := Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, "a:\n  - 1\n  - {b: c}\n", string(out))

	out, err = Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "null\n", string(out))
}

func TestMarshal_ProducedTags(t *testing.T) {
	placeholder := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!circular", Value: "a.yaml", Style: yaml.DoubleQuotedStyle}
	n := Mapping("loop", placeholder, "quoted", String("42"))

	out, err := Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, "loop: !circular \"a.yaml\"\nquoted: \"42\"\n", string(out))
}
