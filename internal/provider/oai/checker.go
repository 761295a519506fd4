// Package oai provides a grammar-analysis backend on the official OpenAI
// SDK (chat completions with a JSON-only correction prompt).
package oai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/prosefix/prosefix/internal/model"
	"github.com/prosefix/prosefix/internal/provider"
)

const DefaultModel = "gpt-4o-mini"

// Checker sends correction requests to an OpenAI-compatible chat API.
type Checker struct {
	model string
	opts  []option.RequestOption
}

// New creates a Checker. Unset model falls back to DefaultModel; unset
// baseURL keeps the SDK default.
func New(apiKey, model, baseURL string) *Checker {
	if model == "" {
		model = DefaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Checker{model: model, opts: opts}
}

func (c *Checker) Name() string { return "openai" }

func (c *Checker) Analyze(ctx context.Context, text string) ([]model.RawMatch, error) {
	client := openai.NewClient(c.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(provider.EditsPrompt),
			openai.UserMessage("Input:\n" + text),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("oai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("oai: empty choices")
	}
	return provider.DecodeEdits(resp.Choices[0].Message.Content)
}
