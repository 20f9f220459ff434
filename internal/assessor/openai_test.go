package assessor

import (
	"context"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborwatch/route-risk/internal/model"
	"github.com/harborwatch/route-risk/pkg/openai"
)

type fakeChatClient struct {
	content string
	err     error
	lastReq openai.ChatCompletionRequest
}

func (f *fakeChatClient) ChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &openai.ChatCompletionResponse{
		ID: "chatcmpl-1",
		Choices: []openai.Choice{
			{Message: openai.Message{Role: "assistant", Content: f.content}},
		},
	}, nil
}

func testBundle() Bundle {
	return Bundle{
		DeparturePort:   "Port of Los Angeles",
		DestinationPort: "Port of Shanghai",
		DepartureDate:   "2026-09-15",
		CarrierName:     "Evergreen",
		GoodsType:       "electronics",
		Departure:       model.NeutralCountryProfile("United States"),
		Destination:     model.NeutralCountryProfile("China"),
		Hazards:         model.RouteHazards{Chokepoints: []string{"South China Sea"}},
		DistanceKm:      10460,
		TransitDays:     23,
	}
}

func TestOpenAIAssess(t *testing.T) {
	fake := &fakeChatClient{content: validJSON}
	a := NewOpenAI(fake, "openai")

	res, err := a.Assess(context.Background(), testBundle())
	require.NoError(t, err)
	assert.Equal(t, 6, res.Score)
	assert.Equal(t, "openai", a.Name())

	// System prompt plus rendered bundle.
	require.Len(t, fake.lastReq.Messages, 2)
	assert.Equal(t, "system", fake.lastReq.Messages[0].Role)
	assert.Contains(t, fake.lastReq.Messages[1].Content, "Port of Shanghai")
	assert.Contains(t, fake.lastReq.Messages[1].Content, "South China Sea")
	assert.Contains(t, fake.lastReq.Messages[1].Content, "23 days")
}

func TestOpenAIAssessTransportError(t *testing.T) {
	fake := &fakeChatClient{err: eris.New("connection refused")}
	a := NewOpenAI(fake, "grok")

	_, err := a.Assess(context.Background(), testBundle())
	require.Error(t, err)
	assert.True(t, eris.Is(err, model.ErrAssessorUnavailable))
}

func TestOpenAIAssessBadPayload(t *testing.T) {
	fake := &fakeChatClient{content: "I cannot provide a JSON assessment."}
	a := NewOpenAI(fake, "openai")

	_, err := a.Assess(context.Background(), testBundle())
	require.Error(t, err)
	assert.True(t, eris.Is(err, model.ErrAssessorUnavailable))
}

func TestBuildPromptEventLimit(t *testing.T) {
	b := testBundle()
	for i := 0; i < 8; i++ {
		b.Intel.Events = append(b.Intel.Events, model.Event{
			Title: "Event", RelevanceScore: i,
		})
	}
	b.Intel.Sentiment = model.SentimentNegative
	b.Intel.Confidence = "High"

	prompt := BuildPrompt(b)
	assert.Contains(t, prompt, "Overall News Sentiment")
	// Only the first five events are rendered.
	assert.Equal(t, 5, strings.Count(prompt, "* Event (relevance"))
}
