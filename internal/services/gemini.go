package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiProvider = "gemini"

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient serves completions from the Gemini API. The system message is
// sent as the system instruction.
type GeminiClient struct {
	models    contentGenerator
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiClient{models: client.Models, modelName: model}, nil
}

// Complete implements CompletionClient.
func (g *GeminiClient) Complete(ctx context.Context, systemMessage, userMessage string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemMessage, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(userMessage), config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{Provider: geminiProvider, StatusCode: apiErr.Code, Err: err}
		}
		return "", &UpstreamError{Provider: geminiProvider, Err: err}
	}
	if resp == nil {
		return "", &UpstreamError{Provider: geminiProvider, Err: errors.New("nil response")}
	}

	text := resp.Text()
	if text == "" {
		return "", &UpstreamError{Provider: geminiProvider, Err: errors.New("no text content in response")}
	}

	return text, nil
}

func (g *GeminiClient) Model() string {
	return g.modelName
}
