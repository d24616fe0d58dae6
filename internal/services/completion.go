package services

import (
	"context"
	"fmt"

	"alfredoptarigan/interview-iq/internal/config"
)

// CompletionClient sends one system/user message pair to a chat-completion
// endpoint and returns the raw reply text. Implementations make a single
// attempt and report every failure as *UpstreamError.
type CompletionClient interface {
	Complete(ctx context.Context, systemMessage, userMessage string) (string, error)
}

// NewCompletionClient builds the client selected by cfg.LLM.Provider.
func NewCompletionClient(ctx context.Context, cfg *config.Config) (CompletionClient, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenRouter:
		return NewOpenRouterClient(OpenRouterConfig{
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
			Model:    cfg.LLM.Model,
			SiteURL:  cfg.LLM.SiteURL,
			SiteName: cfg.LLM.SiteName,
			Timeout:  cfg.LLM.Timeout,
		})
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}
