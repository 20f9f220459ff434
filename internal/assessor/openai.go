package assessor

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/harborwatch/route-risk/internal/model"
	"github.com/harborwatch/route-risk/pkg/openai"
)

const completionMaxTokens = 1024

// OpenAIAssessor runs assessments through any OpenAI-compatible chat API,
// including x.ai's Grok endpoint.
type OpenAIAssessor struct {
	client openai.Client
	name   string
	logger *zap.Logger
}

// NewOpenAI wraps a chat client as an Assessor. name identifies the provider
// in logs and metrics (e.g. "openai", "grok").
func NewOpenAI(client openai.Client, name string) *OpenAIAssessor {
	return &OpenAIAssessor{
		client: client,
		name:   name,
		logger: zap.L().With(zap.String("component", "assessor"), zap.String("provider", name)),
	}
}

func (a *OpenAIAssessor) Name() string { return a.name }

func (a *OpenAIAssessor) Assess(ctx context.Context, b Bundle) (*Result, error) {
	temp := 0.2
	resp, err := a.client.ChatCompletion(ctx, openai.ChatCompletionRequest{
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(b)},
		},
		Temperature: &temp,
		MaxTokens:   intPtr(completionMaxTokens),
	})
	if err != nil {
		a.logger.Warn("completion failed", zap.Error(err))
		return nil, eris.Wrapf(model.ErrAssessorUnavailable, "%s: %v", a.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, eris.Wrapf(model.ErrAssessorUnavailable, "%s: empty choices", a.name)
	}

	result, err := ParseResult(resp.Choices[0].Message.Content)
	if err != nil {
		a.logger.Warn("unparseable assessment", zap.Error(err))
		return nil, err
	}
	a.logger.Debug("assessment parsed",
		zap.Int("score", result.Score),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens))
	return result, nil
}

func intPtr(v int) *int { return &v }
