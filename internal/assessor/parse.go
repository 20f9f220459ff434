package assessor

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/harborwatch/route-risk/internal/model"
)

// minTextLen is the minimum trimmed length for the description and summary
// fields. Anything shorter is treated as a degenerate answer.
const minTextLen = 10

// wireResult decodes the provider's JSON with the score kept raw. A
// json.Number field would silently accept quoted scores like "7", so the
// token type is checked before parsing.
type wireResult struct {
	Score       json.RawMessage `json:"risk_score"`
	Description *string         `json:"risk_description"`
	Summary     *string         `json:"geopolitical_summary"`
}

// ParseResult extracts and validates the structured assessment from raw
// completion text. Providers often wrap the JSON in prose, so the parser
// takes the span from the first '{' to the last '}'. All failures wrap
// model.ErrAssessorUnavailable.
func ParseResult(text string) (*Result, error) {
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, eris.Wrap(model.ErrAssessorUnavailable, "no JSON object in response")
	}

	dec := json.NewDecoder(strings.NewReader(text[start : end+1]))
	dec.UseNumber()
	var wire wireResult
	if err := dec.Decode(&wire); err != nil {
		return nil, eris.Wrapf(model.ErrAssessorUnavailable, "decode response: %v", err)
	}

	if wire.Score == nil || wire.Description == nil || wire.Summary == nil {
		return nil, eris.Wrap(model.ErrAssessorUnavailable, "missing required fields")
	}

	raw := bytes.TrimSpace(wire.Score)
	if len(raw) == 0 || raw[0] == '"' {
		return nil, eris.Wrapf(model.ErrAssessorUnavailable, "risk_score is not a number: %s", raw)
	}
	score, err := json.Number(raw).Int64()
	if err != nil {
		return nil, eris.Wrapf(model.ErrAssessorUnavailable, "risk_score not an integer: %s", raw)
	}
	if score < 1 || score > 10 {
		return nil, eris.Wrapf(model.ErrAssessorUnavailable, "risk_score out of range: %d", score)
	}

	desc := strings.TrimSpace(*wire.Description)
	summary := strings.TrimSpace(*wire.Summary)
	if len(desc) < minTextLen || len(summary) < minTextLen {
		return nil, eris.Wrap(model.ErrAssessorUnavailable, "text fields too short")
	}

	return &Result{
		Score:       int(score),
		Description: desc,
		Summary:     summary,
	}, nil
}
