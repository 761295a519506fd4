// Package claude provides a grammar-analysis backend on the Anthropic SDK.
package claude

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/prosefix/prosefix/internal/model"
	"github.com/prosefix/prosefix/internal/provider"
)

const DefaultModel = "claude-sonnet-4-5-20250929"

const maxTokens = 4096

// Checker sends correction requests to the Anthropic Messages API.
type Checker struct {
	model string
	opts  []option.RequestOption
}

// New creates a Checker. Unset model falls back to DefaultModel.
func New(apiKey, model string) *Checker {
	if model == "" {
		model = DefaultModel
	}
	return &Checker{
		model: model,
		opts:  []option.RequestOption{option.WithAPIKey(apiKey)},
	}
}

func (c *Checker) Name() string { return "anthropic" }

func (c *Checker) Analyze(ctx context.Context, text string) ([]model.RawMatch, error) {
	client := anthropic.NewClient(c.opts...)

	msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: provider.EditsPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("Input:\n" + text)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("claude: messages: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return provider.DecodeEdits(block.Text)
		}
	}
	return nil, errors.New("claude: no text content in response")
}
