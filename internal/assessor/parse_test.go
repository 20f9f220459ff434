package assessor

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborwatch/route-risk/internal/model"
)

const validJSON = `{
	"risk_score": 6,
	"risk_description": "Route crosses the Strait of Hormuz during elevated tensions.",
	"geopolitical_summary": "High-risk chokepoint exposure with active sanctions nearby."
}`

func TestParseResult(t *testing.T) {
	res, err := ParseResult(validJSON)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Score)
	assert.Contains(t, res.Description, "Hormuz")
}

func TestParseResultSurroundingProse(t *testing.T) {
	text := "Here is my assessment:\n" + validJSON + "\nLet me know if you need more detail."
	res, err := ParseResult(text)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Score)
}

func TestParseResultFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no json", "the risk is moderate"},
		{"unbalanced", "{ \"risk_score\": 5"},
		{"malformed", "{ not json }"},
		{"missing score", `{"risk_description": "long enough text here", "geopolitical_summary": "long enough text here"}`},
		{"missing summary", `{"risk_score": 5, "risk_description": "long enough text here"}`},
		{"fractional score", `{"risk_score": 5.5, "risk_description": "long enough text here", "geopolitical_summary": "long enough text here"}`},
		{"string score", `{"risk_score": "5", "risk_description": "long enough text here", "geopolitical_summary": "long enough text here"}`},
		{"quoted numeric score", `{"risk_score": "7", "risk_description": "long enough text here", "geopolitical_summary": "long enough text here"}`},
		{"null score", `{"risk_score": null, "risk_description": "long enough text here", "geopolitical_summary": "long enough text here"}`},
		{"boolean score", `{"risk_score": true, "risk_description": "long enough text here", "geopolitical_summary": "long enough text here"}`},
		{"score zero", `{"risk_score": 0, "risk_description": "long enough text here", "geopolitical_summary": "long enough text here"}`},
		{"score eleven", `{"risk_score": 11, "risk_description": "long enough text here", "geopolitical_summary": "long enough text here"}`},
		{"short description", `{"risk_score": 5, "risk_description": "short", "geopolitical_summary": "long enough text here"}`},
		{"whitespace summary", `{"risk_score": 5, "risk_description": "long enough text here", "geopolitical_summary": "         x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResult(tt.text)
			require.Error(t, err)
			assert.True(t, eris.Is(err, model.ErrAssessorUnavailable))
		})
	}
}

func TestParseResultBoundaryScores(t *testing.T) {
	for _, score := range []string{"1", "10"} {
		text := `{"risk_score": ` + score + `, "risk_description": "long enough text here", "geopolitical_summary": "long enough text here"}`
		res, err := ParseResult(text)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Score, 1)
		assert.LessOrEqual(t, res.Score, 10)
	}
}
