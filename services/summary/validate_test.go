package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSummary_ValidShape(t *testing.T) {
	raw := `{
		"title": "Biscuit — health summary",
		"meta": "Last 30 days",
		"highlights": ["Itching reported twice"],
		"sections": [
			{"title": "Recent entries", "items": ["Skin check — mild irritation"]},
			{"title": "Upcoming", "items": []}
		]
	}`

	result, err := parseSummary(raw)
	require.NoError(t, err)
	assert.Equal(t, "Biscuit — health summary", result.Title)
	assert.Equal(t, []string{"Itching reported twice"}, result.Highlights)
	require.Len(t, result.Sections, 2)
	assert.Equal(t, "Recent entries", result.Sections[0].Title)
	assert.Empty(t, result.Sections[1].Items)
}

func TestParseSummary_StripsCodeFences(t *testing.T) {
	raw := "```json\n{\"title\":\"T\",\"highlights\":[],\"sections\":[]}\n```"

	result, err := parseSummary(raw)
	require.NoError(t, err)
	assert.Equal(t, "T", result.Title)
}

func TestParseSummary_RejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty response", ""},
		{"not JSON", "Here is your summary!"},
		{"missing title", `{"highlights":[],"sections":[]}`},
		{"numeric title", `{"title":42,"highlights":[],"sections":[]}`},
		{"missing highlights", `{"title":"T","sections":[]}`},
		{"highlights of wrong type", `{"title":"T","highlights":"none","sections":[]}`},
		{"missing sections", `{"title":"T","highlights":[]}`},
		{"section without title", `{"title":"T","highlights":[],"sections":[{"items":[]}]}`},
		{"section without items", `{"title":"T","highlights":[],"sections":[{"title":"S"}]}`},
		{"section items of wrong type", `{"title":"T","highlights":[],"sections":[{"title":"S","items":[1,2]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSummary(tt.raw)
			assert.Error(t, err)
		})
	}
}
