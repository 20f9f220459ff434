package assessor

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/harborwatch/route-risk/internal/model"
	"github.com/harborwatch/route-risk/pkg/anthropic"
)

// AnthropicAssessor runs assessments through the Anthropic messages API.
type AnthropicAssessor struct {
	client anthropic.Client
	logger *zap.Logger
}

// NewAnthropic wraps an Anthropic client as an Assessor.
func NewAnthropic(client anthropic.Client) *AnthropicAssessor {
	return &AnthropicAssessor{
		client: client,
		logger: zap.L().With(zap.String("component", "assessor"), zap.String("provider", "anthropic")),
	}
}

func (a *AnthropicAssessor) Name() string { return "anthropic" }

func (a *AnthropicAssessor) Assess(ctx context.Context, b Bundle) (*Result, error) {
	temp := 0.2
	resp, err := a.client.CreateMessage(ctx, anthropic.MessageRequest{
		MaxTokens:   completionMaxTokens,
		System:      systemPrompt,
		Messages:    []anthropic.Message{{Role: "user", Content: BuildPrompt(b)}},
		Temperature: &temp,
	})
	if err != nil {
		a.logger.Warn("message failed", zap.Error(err))
		return nil, eris.Wrapf(model.ErrAssessorUnavailable, "anthropic: %v", err)
	}

	result, err := ParseResult(resp.Text())
	if err != nil {
		a.logger.Warn("unparseable assessment", zap.Error(err))
		return nil, err
	}
	a.logger.Debug("assessment parsed",
		zap.Int("score", result.Score),
		zap.Int64("output_tokens", resp.Usage.OutputTokens))
	return result, nil
}
