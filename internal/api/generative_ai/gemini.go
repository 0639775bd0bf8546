package generativeAI

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiClient is the alternate backend, kept for deployments with a Google
// AI key instead of a Zhipu one.
type GeminiClient struct {
	client *genai.Client
	model  string
	apiKey string
}

func NewGeminiClient(ctx context.Context, model string) (*GeminiClient, error) {
	apiKey := os.Getenv("GOOGLE_GEMINI_API_KEY")
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" || model == defaultZhipuModel {
		model = defaultGeminiModel
	}
	return &GeminiClient{client: client, model: model, apiKey: apiKey}, nil
}

func (g *GeminiClient) Configured() bool {
	return g.apiKey != ""
}

func (g *GeminiClient) GenerateCompletion(ctx context.Context, system, user string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), config)
	if err != nil {
		return "", fmt.Errorf("gemini content generation failed: %w", err)
	}
	return result.Text(), nil
}
