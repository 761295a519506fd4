package main

import (
	"fmt"

	"github.com/prosefix/prosefix/internal/config"
	"github.com/prosefix/prosefix/internal/provider"
	"github.com/prosefix/prosefix/internal/provider/claude"
	"github.com/prosefix/prosefix/internal/provider/ltapi"
	"github.com/prosefix/prosefix/internal/provider/oai"
)

// newBackend builds the analysis backend selected by cfg.Mode.
func newBackend(cfg config.Config) (provider.Provider, error) {
	switch cfg.Mode {
	case "languagetool":
		return ltapi.New(cfg.LanguageToolURL, cfg.LanguageToolLang), nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai mode requires OPENAI_API_KEY or openai_api_key in config")
		}
		return oai.New(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMBaseURL), nil
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("anthropic mode requires ANTHROPIC_API_KEY or anthropic_api_key in config")
		}
		return claude.New(cfg.AnthropicAPIKey, cfg.LLMModel), nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want languagetool, openai, or anthropic)", cfg.Mode)
	}
}
