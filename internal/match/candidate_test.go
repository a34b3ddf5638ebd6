package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownTags = []string{
	"!env", "!file", "!include", "!include_bin", "!include_text",
	"!include_txt", "!include_yaml", "!include_yml",
}

func TestRank(t *testing.T) {
	list := Rank("!include_yam", knownTags)

	require.Len(t, list, len(knownTags))
	assert.Equal(t, "!include_yaml", list[0].Name)

	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Score, list[i].Score)
	}
}

func TestRank_Determinism(t *testing.T) {
	first := Rank("!inc", knownTags)
	for range 10 {
		assert.Equal(t, first, Rank("!inc", knownTags))
	}
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	list := CandidateList{
		{Name: "a", Score: 0.9},
		{Name: "b", Score: 0.7},
		{Name: "c", Score: 0.2},
	}

	assert.Equal(t, []string{"a", "b"}, list.AboveThreshold(0.7).Names())
	assert.Empty(t, list.AboveThreshold(0.95))
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		first string
	}{
		{name: "transposed letters", tag: "!inlcude", first: "!include"},
		{name: "wrong case", tag: "!Include", first: "!include"},
		{name: "missing letter", tag: "!include_yam", first: "!include_yaml"},
		{name: "dash instead of underscore", tag: "!include-bin", first: "!include_bin"},
		{name: "upper env", tag: "!ENV", first: "!env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.tag, knownTags)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.first, got[0])
		})
	}
}

func TestSuggest_NothingClose(t *testing.T) {
	assert.Empty(t, Suggest("!secret", knownTags))
	assert.Empty(t, Suggest("!ref", knownTags))
}
